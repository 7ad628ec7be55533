package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"dizzycode.xyz/logstrategy"
	"dizzycode.xyz/logstrategy/cmd/logdemo/internal/config"
	"dizzycode.xyz/logstrategy/cmd/logdemo/internal/logger"
	"dizzycode.xyz/logstrategy/level"
	"dizzycode.xyz/logstrategy/strategies"
)

var (
	strategyFlag string
	levelFlag    string
	showMetrics  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "logdemo [MESSAGE...]",
		Short: "Write a message through a pluggable log strategy",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runLog,
	}
	rootCmd.PersistentFlags().StringVarP(&strategyFlag, "strategy", "s", "", "strategy kind (default: $LOG_STRATEGY or console)")
	rootCmd.PersistentFlags().BoolVar(&showMetrics, "metrics", false, "print write counters after running")
	rootCmd.Flags().StringVarP(&levelFlag, "level", "l", "info", "level of the message (debug, info, warn, error)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Switch one logger between console, file, json and fan-out output",
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	})

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setup() (*config.Config, *logger.Builder, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if strategyFlag != "" {
		cfg.Strategy = strategyFlag
	}

	b, err := logger.NewBuilder(cfg, prometheus.DefaultRegisterer)
	if err != nil {
		return nil, nil, err
	}
	return cfg, b, nil
}

func runLog(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	_, b, err := setup()
	if err != nil {
		return err
	}
	defer b.Close()

	log, err := b.Logger(ctx)
	if err != nil {
		return err
	}
	defer log.Close()

	lvl, err := level.ParseStrict(levelFlag)
	if err != nil {
		return err
	}
	if err := log.Log(lvl, strings.Join(args, " ")); err != nil {
		return err
	}
	if err := log.Sync(); err != nil {
		return err
	}

	return printMetrics(cmd.OutOrStdout())
}

func runDemo(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	cfg, b, err := setup()
	if err != nil {
		return err
	}
	defer b.Close()

	fmt.Fprintln(out, "=== Simple Logger Demo ===")

	fmt.Fprintln(out, "\n1. Logging to console:")
	console, err := b.Strategy(ctx, "console")
	if err != nil {
		return err
	}
	log, err := logstrategy.New(console)
	if err != nil {
		return err
	}
	if err := logAll(log, "App started", "Low memory", "File not found"); err != nil {
		return err
	}

	fmt.Fprintln(out, "\n2. Switching to file logging:")
	file, err := b.Strategy(ctx, "file")
	if err != nil {
		return err
	}
	if err := log.SetStrategy(file); err != nil {
		return err
	}
	if err := logAll(log, "Now logging to file", "", "Database connection failed"); err != nil {
		return err
	}
	fmt.Fprintf(out, "Check '%s' file!\n", cfg.File.Path)

	fmt.Fprintln(out, "\n3. Switching to JSON logging:")
	jsonStrategy, err := b.Strategy(ctx, "json")
	if err != nil {
		return err
	}
	if err := log.SetStrategy(jsonStrategy); err != nil {
		return err
	}
	if err := logAll(log, "Now logging to JSON", "API rate limit reached", ""); err != nil {
		return err
	}
	fmt.Fprintf(out, "Check '%s' file!\n", cfg.File.JSONPath)

	fmt.Fprintln(out, "\n4. Using multiple loggers at once:")
	consoleLogger := logstrategy.MustNew(console)
	fileLogger := logstrategy.MustNew(file)
	if err := consoleLogger.Info("This goes to console"); err != nil {
		return err
	}
	if err := fileLogger.Info("This goes to file"); err != nil {
		return err
	}

	fmt.Fprintln(out, "\n5. Fanning out to console and file, file keeps warnings only:")
	both := strategies.NewMulti(console, strategies.NewLevelFilter(file, level.Warn))
	if err := log.SetStrategy(both); err != nil {
		return err
	}
	if err := logAll(log, "Console only", "Console and file", ""); err != nil {
		return err
	}
	if err := log.Close(); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nDone! Check the files to see the saved logs.")
	return printMetrics(out)
}

// logAll writes info, warn and error messages, skipping empty ones
func logAll(log *logstrategy.Logger, info, warn, errMsg string) error {
	if info != "" {
		if err := log.Info(info); err != nil {
			return err
		}
	}
	if warn != "" {
		if err := log.Warn(warn); err != nil {
			return err
		}
	}
	if errMsg != "" {
		if err := log.Error(errMsg); err != nil {
			return err
		}
	}
	return nil
}

func printMetrics(out io.Writer) error {
	if !showMetrics {
		return nil
	}

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "logstrategy_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			fmt.Fprintf(out, "%s{%s} %v\n", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue())
		}
	}
	return nil
}
