package main

import (
	"fmt"
	"os"

	"github.com/sksmith/brep/meshfile"
	"github.com/sksmith/brep/operators"
	"github.com/spf13/cobra"
)

func newApplyCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "apply <notation> [--out mesh.yaml]",
		Short: "Apply a Conway-notation operator chain to a seed mesh (e.g. \"tC\", \"daI\")",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := operators.Parse(args[0])
			if err != nil {
				return err
			}
			if out == "" {
				printStats(cmd, m)
				return nil
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer f.Close()
			return meshfile.SaveMesh(f, m)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write the resulting mesh to this YAML file instead of printing stats")
	return cmd
}
