package main

import (
	"fmt"
	"os"

	"github.com/sksmith/brep/brep"
	"github.com/sksmith/brep/meshfile"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <mesh.yaml>",
		Short: "Print vertex/edge/loop/face counts and invariant check results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			m, err := meshfile.LoadMesh(f)
			if err != nil {
				return err
			}
			printStats(cmd, m)
			return nil
		},
	}
	return cmd
}

func printStats(cmd *cobra.Command, m *brep.Mesh) {
	fmt.Fprintf(cmd.OutOrStdout(), "vertices: %d\nedges: %d\nloops: %d\nfaces: %d\n",
		m.VertexCount(), m.EdgeCount(), m.LoopCount(), m.FaceCount())
	if errs := brep.CheckInvariants(m); len(errs) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "invariant violations: %d\n", len(errs))
		for _, e := range errs {
			fmt.Fprintln(cmd.OutOrStdout(), "  "+e.Error())
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "invariants: ok")
	}
}
