package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	ansicolor "github.com/fatih/color"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envPrefix    = "FUEL"
	defaultInput = "mass.txt"
)

func main() {
	if err := realMain(
		context.Background(),
		os.Args,
		os.Stdin,
		os.Stdout,
		os.Stderr,
	); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}

		fmt.Fprintf(os.Stderr, "%s %v\n", colorError.Sprint("error:"), err)
		os.Exit(1)
	}
}

type config struct {
	input  string
	simple bool
	debug  bool
	output string
}

func (c *config) register(fs *flag.FlagSet) {
	fs.StringVar(&c.input, "input", defaultInput, "mass file read when no files are given, - for stdin")
	fs.BoolVar(&c.simple, "simple", false, "ignore the fuel needed to carry fuel")
	fs.BoolVar(&c.debug, "debug", false, "log every mass to stderr")
}

func (c *config) mode() Mode {
	if c.simple {
		return Simple
	}

	return Recursive
}

func (c *config) sources(args []string) []string {
	if len(args) == 0 {
		return []string{c.input}
	}

	return args
}

func realMain(
	ctx context.Context,
	args []string,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
) error {
	exec := args[0]
	cfg := &config{}

	fs := flag.NewFlagSet(exec, flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.register(fs)

	breakdownFs := flag.NewFlagSet("breakdown", flag.ContinueOnError)
	breakdownFs.SetOutput(stderr)
	cfg.register(breakdownFs)
	breakdownFs.StringVar(&cfg.output, "output", "table", "output format: table or yaml")

	breakdownCmd := &ffcli.Command{
		Name:       "breakdown",
		ShortUsage: fmt.Sprintf("%v breakdown [flags] [<file>...]", exec),
		ShortHelp:  "Print the fuel chain of every mass",
		FlagSet:    breakdownFs,
		Options:    []ff.Option{ff.WithEnvVarPrefix(envPrefix)},
		Exec: func(_ context.Context, args []string) error {
			render, ok := renderers[cfg.output]
			if !ok {
				return fmt.Errorf("invalid output: %q (must be table or yaml)", cfg.output)
			}

			logger := newLogger(cfg.debug, stderr)
			defer logger.Sync()

			entries, err := loadEntries(logger, cfg.sources(args), stdin)
			if err != nil {
				return err
			}

			return render(stdout, buildReport(entries, cfg.mode()))
		},
	}

	rootCmd := &ffcli.Command{
		Name:        exec,
		ShortUsage:  fmt.Sprintf("%v [flags] [<file>...]", exec),
		ShortHelp:   "Sum the fuel required for every mass",
		FlagSet:     fs,
		Options:     []ff.Option{ff.WithEnvVarPrefix(envPrefix)},
		Subcommands: []*ffcli.Command{breakdownCmd},
		Exec: func(_ context.Context, args []string) error {
			logger := newLogger(cfg.debug, stderr)
			defer logger.Sync()

			entries, err := loadEntries(logger, cfg.sources(args), stdin)
			if err != nil {
				return err
			}

			mode := cfg.mode()

			var total int64
			for _, e := range entries {
				f := mode.Of(e.Mass)
				logger.Debug("fuel",
					zap.String("pos", e.Pos()),
					zap.Int64("mass", e.Mass),
					zap.Int64("fuel", f),
				)
				total += f
			}

			logger.Debug("total",
				zap.Stringer("mode", mode),
				zap.Int("masses", len(entries)),
				zap.Int64("fuel", total),
			)

			fmt.Fprintln(stdout, total)

			return nil
		},
	}

	return rootCmd.ParseAndRun(ctx, args[1:])
}

func loadEntries(logger *zap.Logger, sources []string, stdin io.Reader) ([]Entry, error) {
	var entries []Entry
	for _, src := range sources {
		logger.Debug("reading masses", zap.String("source", src))

		rc, err := OpenSource(src, stdin)
		if err != nil {
			return nil, err
		}

		e, err := ReadMasses(rc, src)
		rc.Close()
		if err != nil {
			return nil, err
		}

		entries = append(entries, e...)
	}

	return entries, nil
}

func newLogger(debug bool, w io.Writer) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zapcore.DebugLevel)

	return zap.New(core, zap.Development())
}

var colorError = ansicolor.New(ansicolor.FgRed, ansicolor.Bold)
