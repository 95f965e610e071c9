package main

import (
	"fmt"
	"os"

	"github.com/sksmith/brep/brep"
	"github.com/sksmith/brep/meshfile"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "seed <T|C|O|D|I>",
		Short: "Print stats for one of the five Platonic seed meshes, or write it to a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := brep.GetSeed(args[0])
			if m == nil {
				return fmt.Errorf("unknown seed symbol %q (expected one of T, C, O, D, I)", args[0])
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
	cmd.Flags().StringVar(&out, "out", "", "write the seed mesh to this YAML file instead of printing stats")
	return cmd
}
