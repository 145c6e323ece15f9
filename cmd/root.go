// Package cmd implements CLI commands using cobra framework.
package cmd

import (
	"github.com/spf13/cobra"

	"firestige.xyz/evdump/internal/config"
	"firestige.xyz/evdump/internal/log"
)

var (
	// Global flags
	configFile string

	cfg *config.Config
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "evdump",
		Short: "evdump - decode Linux evdev pcap captures",
		Long: `evdump reads pcap capture files recorded with LINKTYPE_LINUX_EVDEV and prints
every input event (EV_SYN, EV_KEY, ...) as one line of text.

Configuration is read from --config (YAML), EVDUMP_* environment variables
and command line flags, in increasing precedence.`,
		Version:           "0.1.0",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug/info/warn/error)")

	rootCmd.AddCommand(newDumpCmd())
	rootCmd.AddCommand(newHeaderCmd())
	rootCmd.AddCommand(newValidateCmd())
	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return newRootCmd().Execute()
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}
	if err := log.Init(c.Log); err != nil {
		return err
	}
	cfg = c
	return nil
}
