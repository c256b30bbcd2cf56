package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/randalmurphal/factory/pkg/factory"
	"github.com/randalmurphal/factory/pkg/factory/config"
	"github.com/randalmurphal/factory/pkg/factory/ledger"
	"github.com/randalmurphal/factory/pkg/shapes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app holds the state shared by every subcommand for a single invocation.
type app struct {
	v        *viper.Viper
	cfgFile  string
	settings config.Settings
	logger   *slog.Logger
	store    ledger.Store

	telemetry *telemetry
}

// run executes factoryctl with args and releases every resource it opened,
// whether or not the command succeeded.
func run(args []string, stdout, stderr io.Writer) error {
	a := &app{v: viper.New()}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(context.Background())
	if cerr := a.close(context.Background(), stderr); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "factoryctl",
		Short: "List and produce shapes by name",
		Long: `factoryctl builds a factory over the Shape family and lets you inspect
its index or produce an implementation by name.

Settings come from flags, FACTORYCTL_* environment variables and an optional
YAML config file, in that order of precedence.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (YAML)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")
	flags.String("ledger", "", "SQLite file recording every product request")
	flags.Bool("trace", false, "export spans to stderr")
	flags.Bool("metrics", false, "print collected metrics to stderr on exit")
	flags.Bool("warn-on-collision", true, "warn when discovery drops a duplicate name")

	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log_format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("ledger_path", flags.Lookup("ledger"))
	_ = a.v.BindPFlag("tracing", flags.Lookup("trace"))
	_ = a.v.BindPFlag("metrics", flags.Lookup("metrics"))
	_ = a.v.BindPFlag("warn_on_collision", flags.Lookup("warn-on-collision"))

	root.AddCommand(newListCmd(a), newProduceCmd(a), newHistoryCmd(a))
	return root
}

// setup resolves settings and opens the logger, ledger and telemetry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.loadSettings(); err != nil {
		return err
	}
	a.logger = newLogger(cmd.ErrOrStderr(), a.settings)

	if a.settings.LedgerPath != "" {
		store, err := ledger.NewSQLiteStore(a.settings.LedgerPath)
		if err != nil {
			return fmt.Errorf("open ledger: %w", err)
		}
		a.store = store
	}

	tel, err := newTelemetry(cmd.ErrOrStderr(), a.settings)
	if err != nil {
		return err
	}
	a.telemetry = tel
	return nil
}

func (a *app) loadSettings() error {
	defaults := config.Defaults()
	a.v.SetDefault("log_level", defaults.LogLevel.String())
	a.v.SetDefault("log_format", defaults.LogFormat)
	a.v.SetDefault("warn_on_collision", defaults.WarnOnCollision)

	a.v.SetEnvPrefix("FACTORYCTL")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
	}

	a.settings = config.LoadSettings(config.New(map[string]any{
		"log_level":         a.v.GetString("log_level"),
		"log_format":        a.v.GetString("log_format"),
		"metrics":           a.v.GetBool("metrics"),
		"tracing":           a.v.GetBool("tracing"),
		"warn_on_collision": a.v.GetBool("warn_on_collision"),
		"ledger_path":       a.v.GetString("ledger_path"),
	}))
	return nil
}

func newLogger(w io.Writer, s config.Settings) *slog.Logger {
	opts := &slog.HandlerOptions{Level: s.LogLevel}
	if s.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// factory builds the Shape factory with the invocation's settings.
func (a *app) factory() *factory.Factory[shapes.Shape] {
	opts := []factory.Option{
		factory.WithLogger(a.logger),
		factory.WithSettings(a.settings),
	}
	if a.store != nil {
		opts = append(opts, factory.WithLedger(a.store))
	}
	if a.telemetry != nil {
		opts = append(opts, a.telemetry.options()...)
	}
	return shapes.NewFactory(opts...)
}

func (a *app) close(ctx context.Context, stderr io.Writer) error {
	var errs []error
	if a.telemetry != nil {
		errs = append(errs, a.telemetry.shutdown(ctx, stderr))
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close ledger: %w", err))
		}
	}
	return errors.Join(errs...)
}
