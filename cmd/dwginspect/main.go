// Command dwginspect decodes a DWG file and reports or exports what it
// found. It is a diagnostic front end over the dwgread decoder, not a CAD
// viewer: inspect prints a per-type entity census, export writes a
// (optionally compressed) JSON snapshot for golden-file comparisons.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	dwg "github.com/cadkit/dwgread"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps a command error to a process exit code: 2 for a decode
// failure (malformed or unsupported file), 1 for anything else (bad flags,
// I/O setup failures).
func exitCodeFor(err error) int {
	if _, ok := err.(*decodeError); ok {
		return 2
	}
	return 1
}

// decodeError wraps a dwg.Read failure so exitCodeFor can distinguish it
// from a usage error.
type decodeError struct{ err error }

func (e *decodeError) Error() string { return e.err.Error() }
func (e *decodeError) Unwrap() error { return e.err }

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dwginspect",
		Short:         "Inspect and export decoded DWG drawings",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	var converterPath string
	var strictCRC bool
	var maxObjectSize uint32

	cmd.PersistentFlags().StringVar(&converterPath, "converter", "", "path to an AC1027-to-AC1018 downgrade executable (overrides DWGREAD_CONVERTER)")
	cmd.PersistentFlags().BoolVar(&strictCRC, "strict-crc", true, "fail on a CRC-16 mismatch instead of tolerating it")
	cmd.PersistentFlags().Uint32Var(&maxObjectSize, "max-object-size", 0, "cap an object's declared byte size before failing (0 = decoder default)")

	readOpts := func() []dwg.ReadOption {
		var opts []dwg.ReadOption
		if converterPath != "" {
			opts = append(opts, dwg.WithConverterPath(converterPath))
		}
		opts = append(opts, dwg.WithStrictCRC(strictCRC))
		if maxObjectSize != 0 {
			opts = append(opts, dwg.WithMaxObjectSize(maxObjectSize))
		}
		return opts
	}

	cmd.AddCommand(inspectCmd(readOpts), exportCmd(readOpts), versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the supported DWG version codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "AC1015 AC1018 AC1021 AC1024 AC1027")
			return nil
		},
	}
}
