package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/lerenn/portcheck/pkg/config"
	"github.com/lerenn/portcheck/pkg/logging"
	"github.com/lerenn/portcheck/pkg/portcheck"
	"github.com/lerenn/portcheck/pkg/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath     string
	root           string
	triplet        string
	output         string
	workers        int
	failOnOutdated bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:           "portcheck",
		Short:         "Portcheck reports installed packages that differ from their ports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var updateCmd = &cobra.Command{
		Use:   "update",
		Short: "List installed packages whose version differs from the local port files",
		Args:  cobra.NoArgs,
		RunE:  runUpdate,
	}
	updateCmd.Flags().StringVar(&root, "root", "", "Workspace root containing installed/ and ports/")
	updateCmd.Flags().StringVar(&triplet, "triplet", "", "Only report packages built for this triplet")
	updateCmd.Flags().StringVarP(&output, "output", "o", "", "Output format: text, json or yaml")
	updateCmd.Flags().IntVar(&workers, "workers", 0, "Number of concurrent port lookups")
	updateCmd.Flags().BoolVar(&failOnOutdated, "fail-on-outdated", false, "Exit with status 1 when packages are outdated")

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the config file")
	rootCmd.AddCommand(updateCmd)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, portcheck.ErrOutdatedPackages) {
			logging.L().Error("Command execution failed", zap.Error(err))
		}
		os.Exit(1)
	}
}

func runUpdate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.Init(cfg.LogLevel)
	defer func() { _ = logging.L().Sync() }()

	c, err := portcheck.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create portcheck: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := c.Run(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Output == config.OutputText {
		fmt.Fprintln(out, report.LocalPortsNotice)
	}
	if err := report.Write(out, cfg.Output, res.Outdated); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if failOnOutdated && len(res.Outdated) > 0 {
		return portcheck.ErrOutdatedPackages
	}
	return nil
}

// applyFlags overrides configuration values with the flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Root = root
		cfg.InstalledDir = ""
		cfg.PortsDir = ""
		cfg.ApplyDefaults()
	}
	if flags.Changed("triplet") {
		cfg.Triplet = triplet
	}
	if flags.Changed("output") {
		cfg.Output = output
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
}
