package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	dwg "github.com/cadkit/dwgread"
)

func inspectCmd(readOpts func() []dwg.ReadOption) *cobra.Command {
	var layoutFlag string
	cmd := &cobra.Command{
		Use:   "inspect <path>",
		Short: "Decode a DWG file and print a per-type entity census",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := dwg.Read(args[0], readOpts()...)
			if err != nil {
				return &decodeError{err}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", doc.Version)
			fmt.Fprintf(out, "fingerprint: %016x\n", doc.Fingerprint())

			layout := doc.Modelspace()
			if layoutFlag != "" {
				l, ok := doc.Layouts()[layoutFlag]
				if !ok {
					return fmt.Errorf("no such layout: %s", layoutFlag)
				}
				layout = l
			}

			counts := map[string]int{}
			for _, e := range layout.Query("*") {
				counts[e.DxfType()]++
			}
			types := make([]string, 0, len(counts))
			for t := range counts {
				types = append(types, t)
			}
			sort.Strings(types)

			fmt.Fprintf(out, "layout: %s\n", layout.Name)
			for _, t := range types {
				fmt.Fprintf(out, "  %-12s %d\n", t, counts[t])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&layoutFlag, "layout", "", "inspect a named layout instead of model space")
	return cmd
}
