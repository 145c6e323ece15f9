package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"firestige.xyz/evdump/internal/capture"
	"firestige.xyz/evdump/internal/config"
	"firestige.xyz/evdump/internal/log"
	"firestige.xyz/evdump/internal/metrics"
	"firestige.xyz/evdump/internal/sink/console"
	"firestige.xyz/evdump/internal/source/file"
)

func newDumpCmd() *cobra.Command {
	var all bool

	dumpCmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the events of a capture file",
		Long: `Print one line per record of an evdev capture file.

By default at most one batch of records is printed (--count, 500 when unset).
Use --all to keep reading batches until the end of the file. "-" reads stdin.

Examples:
  evdump dump kbd.pcap
  evdump dump -n 20 --format detail kbd.pcap
  cat kbd.pcap | evdump dump --all -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runDump(ctx, cfg, args[0], all, cmd.OutOrStdout())
		},
	}

	flags := dumpCmd.Flags()
	flags.IntP("count", "n", 0, "maximum records per batch (0 = 500)")
	flags.String("format", config.FormatLine, "output format (line/detail)")
	flags.Bool("strict-length", false, "abort when a record is longer than its payload")
	flags.Bool("skip-magic-check", false, "accept files with an unknown magic number")
	flags.Uint32("link-type", 0, "decode payloads as this link type instead of the file header's")
	flags.String("metrics-textfile", "", "write Prometheus metrics to this file on exit")
	flags.BoolVar(&all, "all", false, "decode the whole file")
	return dumpCmd
}

func runDump(ctx context.Context, c *config.Config, path string, all bool, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := log.GetLogger().WithField("file", path)

	format, err := capture.ParseFormat(c.Decode.Format)
	if err != nil {
		return err
	}

	src, err := file.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	session, err := capture.Open(src, capture.Options{
		StrictLength:     c.Decode.StrictLength,
		SkipMagicCheck:   c.Decode.SkipMagicCheck,
		LinkTypeOverride: c.Decode.LinkTypeOverride,
		Logger:           logger,
	})
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	sink := console.NewSink(out)

	var total capture.Stats
	for {
		st, err := session.Decode(ctx, c.Decode.MaxRecords, format, sink)
		total.Records += st.Records
		total.Recovered += st.Recovered
		total.Outcome = st.Outcome
		if err != nil {
			_ = sink.Close()
			writeMetrics(c, logger)
			return fmt.Errorf("decode %s after %d records: %w", path, total.Records, err)
		}
		if !all || st.Outcome != capture.OutcomeLimit {
			break
		}
	}

	logger.WithFields(map[string]interface{}{
		"records":   total.Records,
		"recovered": total.Recovered,
		"outcome":   string(total.Outcome),
	}).Debug("dump finished")
	writeMetrics(c, logger)
	if err := sink.Close(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func writeMetrics(c *config.Config, logger log.Logger) {
	if c.Metrics.Textfile == "" {
		return
	}
	if err := metrics.WriteTextfile(c.Metrics.Textfile); err != nil {
		logger.WithError(err).Warn("failed to write metrics textfile")
	}
}
