package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"firestige.xyz/evdump/internal/config"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration and print the effective settings",
		Long: `Validate the configuration assembled from --config, EVDUMP_* environment
variables and flags, then print it as YAML.

Examples:
  evdump validate -c evdump.yml
  EVDUMP_DECODE_FORMAT=detail evdump validate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cfg, cmd.OutOrStdout())
		},
	}
}

func runValidate(c *config.Config, out io.Writer) error {
	fmt.Fprintln(out, "VALID")
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(effective(c)); err != nil {
		return err
	}
	return enc.Close()
}

// effective flattens the config into YAML-friendly keys.
func effective(c *config.Config) map[string]interface{} {
	appenders := make([]string, 0, len(c.Log.Appenders))
	for _, a := range c.Log.Appenders {
		appenders = append(appenders, a.Type)
	}
	return map[string]interface{}{
		"log": map[string]interface{}{
			"level":     c.Log.Level,
			"appenders": appenders,
		},
		"decode": map[string]interface{}{
			"max_records":        c.Decode.MaxRecords,
			"format":             c.Decode.Format,
			"strict_length":      c.Decode.StrictLength,
			"skip_magic_check":   c.Decode.SkipMagicCheck,
			"link_type_override": c.Decode.LinkTypeOverride,
		},
		"metrics": map[string]interface{}{
			"textfile": c.Metrics.Textfile,
		},
	}
}
