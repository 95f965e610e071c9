// Command meshctl reports stats for YAML mesh descriptions and for seed
// meshes, optionally transformed by a Conway-notation operator chain,
// as a cobra subcommand tree.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "meshctl",
		Short: "Inspect and transform non-manifold polygon meshes",
	}
	root.AddCommand(newStatsCmd())
	root.AddCommand(newApplyCmd())
	root.AddCommand(newSeedCmd())
	return root
}
