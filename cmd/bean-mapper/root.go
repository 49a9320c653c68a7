package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"bean-mapper/config"
	"bean-mapper/engine"
	"bean-mapper/internal/diagnostic"
	"bean-mapper/internal/logging"
	"bean-mapper/mapper"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bean-mapper",
		Short: "Inspect mapping providers and configuration",
		Example: `  $ bean-mapper providers
  $ bean-mapper check --config mapper.yaml --dump`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&color.NoColor, "no-color", color.NoColor, "disable colored output")
	root.AddCommand(newProvidersCmd(), newCheckCmd())

	return root
}

func newProvidersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List the registered mapping providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, p := range engine.Providers() {
				if p == engine.ProviderAuto {
					fmt.Fprintf(out, "%v\t(resolves to %v)\n", p, p.Resolve())
					continue
				}

				fmt.Fprintln(out, p)
			}

			return nil
		},
	}
}

type checkOptions struct {
	path string
	dump bool
}

func (o *checkOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.path, "config", "c", "", "path to the YAML configuration file")
	fs.BoolVar(&o.dump, "dump", false, "dump the parsed configuration")
}

func newCheckCmd() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a configuration file and build its engine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	opts.addFlags(cmd.Flags())
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runCheck(out, logOut io.Writer, opts checkOptions) error {
	cfg, err := config.LoadFile(opts.path)
	if err != nil {
		return err
	}

	if opts.dump {
		spew.Fdump(out, cfg)
	}

	d := cfg.Validate()
	printDiagnostics(out, d)

	if err := d.Error(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	output := logging.Output(cfg.Logger.File, cfg.Logger.MaxSizeMB, cfg.Logger.MaxBackups, logOut)

	if c, ok := output.(io.Closer); ok && cfg.Logger.File != "" {
		defer c.Close()
	}

	log, err := logging.New(output, cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	provider, err := cfg.ProviderValue()
	if err != nil {
		return err
	}

	eng, err := engine.New(provider, log)
	if err != nil {
		return err
	}

	if cfg.Metrics.Enabled {
		if _, err := mapper.NewMetrics(prometheus.NewRegistry(), cfg.Metrics.Namespace); err != nil {
			return fmt.Errorf("failed to register metrics under %q: %w", cfg.Metrics.Namespace, err)
		}
	}

	log.Debug("configuration checked", zap.String("path", opts.path), zap.Stringer("provider", eng.Provider()))
	fmt.Fprintf(out, "%s: ok (provider %v)\n", opts.path, eng.Provider())

	return nil
}

var (
	warningColor = color.New(color.FgYellow).SprintFunc()
	errorColor   = color.New(color.FgRed, color.Bold).SprintFunc()
)

func printDiagnostics(out io.Writer, d diagnostic.Diagnostics) {
	for _, w := range d.Warnings {
		fmt.Fprintf(out, "%s: %v\n", warningColor(w.Severity), w)
	}

	for _, e := range d.Errors {
		fmt.Fprintf(out, "%s: %v\n", errorColor(e.Severity), e)
	}
}
