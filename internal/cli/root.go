// Package cli implements the rtspdump command using cobra framework.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/indigo-web/rtsp/config"
	"github.com/indigo-web/rtsp/internal/dump"
	"github.com/indigo-web/rtsp/internal/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const stdinName = "-"

type options struct {
	configFile string
	chunkSize  int
	format     string
	log        log.Config
}

// NewRootCommand returns the rtspdump command. Its output and error streams are those
// of the command, so they can be redirected with SetOut and SetErr.
func NewRootCommand() *cobra.Command {
	opts := options{log: log.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "rtspdump [files...]",
		Short: "Dump RTSP requests from raw streams",
		Long: `rtspdump deserializes RTSP/1.0 and RTSP/2.0 requests out of raw byte streams
and prints every one of them as a JSON line, a YAML document or re-serialized.

Files are read one by one. If none is given, or a file is "-", the standard input is read.
Requests may be pipelined. Dumping stops at the first malformed or incomplete request.

Examples:
  rtspdump capture.bin
  rtspdump --chunk 1 --format yaml < capture.bin
  RTSP_BODY_MAX_SIZE=1024 rtspdump -c limits.yml a.bin b.bin`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file path")
	flags.IntVar(&opts.chunkSize, "chunk", dump.DefaultChunkSize, "number of bytes fed to the deserializer at once")
	flags.StringVarP(&opts.format, "format", "f", string(dump.FormatJSON), "output format: json, yaml or wire")
	flags.StringVar(&opts.log.Level, "log-level", opts.log.Level, "log level")
	flags.StringVar(&opts.log.Format, "log-format", opts.log.Format, "log format: text or json")
	flags.StringVar(&opts.log.File, "log-file", "", "duplicate logs into a rotated file")

	return cmd
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

func run(ctx context.Context, opts options, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	logger, err := log.New(opts.log, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return err
	}

	enc, err := dump.NewEncoder(dump.Format(opts.format), stdout)
	if err != nil {
		return err
	}

	dumper, err := dump.New(cfg, opts.chunkSize, enc, logger)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{stdinName}
	}

	total := 0
	for _, name := range args {
		count, err := dumpFile(ctx, dumper, name, stdin)
		total += count
		if err != nil {
			_ = enc.Close()
			return err
		}
	}

	logger.WithFields(logrus.Fields{
		"files":    len(args),
		"requests": total,
	}).Info("done")

	return enc.Close()
}

func dumpFile(ctx context.Context, dumper *dump.Dumper, name string, stdin io.Reader) (int, error) {
	if name == stdinName {
		return dumper.Dump(ctx, "stdin", stdin)
	}

	file, err := os.Open(name)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer file.Close()

	return dumper.Dump(ctx, name, file)
}
