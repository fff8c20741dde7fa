package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	dwg "github.com/cadkit/dwgread"
	"github.com/cadkit/dwgread/compress"
	"github.com/cadkit/dwgread/format"
)

// snapshot is the JSON shape export writes: one record per entity, in
// layout order, with a flattened Dxf() field map.
type snapshot struct {
	Version     string           `json:"version"`
	Fingerprint string           `json:"fingerprint"`
	Layout      string           `json:"layout"`
	Entities    []map[string]any `json:"entities"`
}

func exportCmd(readOpts func() []dwg.ReadOption) *cobra.Command {
	var outPath, compressName, layoutFlag string
	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Decode a DWG file and write a JSON snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			compType, err := format.ParseCompressionType(compressName)
			if err != nil {
				return err
			}

			doc, err := dwg.Read(args[0], readOpts()...)
			if err != nil {
				return &decodeError{err}
			}

			layout := doc.Modelspace()
			if layoutFlag != "" {
				l, ok := doc.Layouts()[layoutFlag]
				if !ok {
					return fmt.Errorf("no such layout: %s", layoutFlag)
				}
				layout = l
			}

			snap := snapshot{
				Version:     doc.Version.String(),
				Fingerprint: fmt.Sprintf("%016x", doc.Fingerprint()),
				Layout:      layout.Name,
			}
			for _, e := range layout.Query("*") {
				snap.Entities = append(snap.Entities, e.Dxf())
			}

			raw, err := json.Marshal(snap)
			if err != nil {
				return err
			}

			codec, err := compress.CreateCodec(compType, "--compress")
			if err != nil {
				return err
			}
			out, err := codec.Compress(raw)
			if err != nil {
				return fmt.Errorf("compressing snapshot: %w", err)
			}

			if outPath == "" {
				outPath = args[0] + ".json"
				if compType != format.CompressionNone {
					outPath += "." + compType.String()
				}
			}
			if err := os.WriteFile(outPath, out, 0o644); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes, %d entities, %s)\n",
				outPath, len(out), len(snap.Entities), compType)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output path (default <path>.json[.<codec>])")
	cmd.Flags().StringVar(&compressName, "compress", "none", "snapshot compression: none, zstd, s2, lz4")
	cmd.Flags().StringVar(&layoutFlag, "layout", "", "export a named layout instead of model space")
	return cmd
}
