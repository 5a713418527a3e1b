package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tcvariant/models"
	"tcvariant/services"
	"tcvariant/services/ensembl"
	"tcvariant/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "0.0.1"

var logger *zap.Logger

type options struct {
	verbose     bool
	variant     string
	input       string
	output      string
	configPath  string
	concurrency int
	timeout     time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tcvariant",
		Short: "Annotate variants using data from Ensembl",
		Long: `A simple CLI to annotate variants using data from Ensembl. This utility takes in a file of variants,
one per line, and generates a tsv file that contains the following values per variant:
  assembly name, seq_region_name, start, end, most_severe_consequence, strand, and genes.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger(opts.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnnotate(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	flags.StringVar(&opts.variant, "variant", "", "individual variant to annotate")
	flags.StringVar(&opts.input, "input", "", "name of file containing list of variants")
	flags.StringVar(&opts.output, "output", models.DefaultOutputFilename, "name of file to write annotations to")
	flags.StringVar(&opts.configPath, "config", "", "optional yaml configuration file")
	flags.IntVar(&opts.concurrency, "concurrency", 1, "number of variants annotated at once")
	flags.DurationVar(&opts.timeout, "timeout", models.DefaultRequestTimeout, "per-request timeout for the Ensembl API")

	return cmd
}

// newLogger builds an unsampled production logger so that every skipped
// variant in a large input file is reported.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Sampling = nil
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func runAnnotate(cmd *cobra.Command, opts *options) error {
	cfg, err := utils.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	// explicitly set flags take precedence over file and environment
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Api.Output = opts.output
	}
	if flags.Changed("concurrency") {
		cfg.Api.Concurrency = opts.concurrency
	}
	if flags.Changed("timeout") {
		cfg.Ensembl.RequestTimeout = opts.timeout
	}

	if cfg.Debug {
		fmt.Printf("Using : \n"+
			"\tDebug : %t \n\n"+
			"\tEnsembl Url : %s \n"+
			"\tRequest Timeout : %s \n"+
			"\tConcurrency Level : %d \n"+
			"\tOutput : %s \n\n",
			cfg.Debug,
			cfg.Ensembl.Url,
			cfg.Ensembl.RequestTimeout,
			cfg.Api.Concurrency,
			cfg.Api.Output)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := ensembl.NewClient(cfg, utils.CreateEnsemblHttpClient(cfg))
	annotate := services.NewAnnotationService(cfg, client, logger)

	switch {
	case opts.variant != "":
		return annotate.AnnotateOne(ctx, opts.variant)
	case opts.input != "":
		return annotate.AnnotateFile(ctx, opts.input)
	default:
		logger.Error("No variant input provided. Please provide an individual variant with the --variant parameter " +
			"or a file containing a list of variants (one per line) with the --input parameter")
		return nil
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		if logger != nil {
			logger.Error("annotation failed", zap.Error(err))
			_ = logger.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(255)
	}
}
