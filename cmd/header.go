package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"firestige.xyz/evdump/internal/capture"
	"firestige.xyz/evdump/internal/codec"
	"firestige.xyz/evdump/internal/source/file"
)

func newHeaderCmd() *cobra.Command {
	var output string

	headerCmd := &cobra.Command{
		Use:   "header <file>",
		Short: "Print the global header of a capture file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeader(args[0], output, cmd.OutOrStdout())
		},
	}
	headerCmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text/yaml)")
	return headerCmd
}

// runHeader decodes only the file header; magic and link type are shown, not checked.
func runHeader(path, output string, out io.Writer) error {
	src, err := file.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	h, err := codec.ReadFileHeader(src)
	if err != nil {
		return fmt.Errorf("read header of %s: %w", path, err)
	}

	switch output {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(h); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		fmt.Fprintf(out, "magic number : 0x%08x\n", h.Magic)
		fmt.Fprintf(out, "major version : %d\n", h.VersionMajor)
		fmt.Fprintf(out, "minor version : %d\n", h.VersionMinor)
		fmt.Fprintf(out, "timezone offset : %d\n", h.ThisZone)
		fmt.Fprintf(out, "timestamp accuracy : %d\n", h.SigFigs)
		fmt.Fprintf(out, "snapshot length : %d\n", h.SnapLen)
		fmt.Fprintf(out, "link-layer header type : %d (%s)\n", h.LinkType, capture.LinkTypeName(h.LinkType))
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (must be text/yaml)", output)
	}
}
