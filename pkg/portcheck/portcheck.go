package portcheck

import (
	"context"
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/lerenn/portcheck/pkg/config"
	"github.com/lerenn/portcheck/pkg/logging"
	"github.com/lerenn/portcheck/pkg/portfile"
	"github.com/lerenn/portcheck/pkg/statusdb"
	"github.com/lerenn/portcheck/pkg/update"
	"go.uber.org/zap"
)

// ErrOutdatedPackages is returned by callers that treat a non-empty report as a failure.
var ErrOutdatedPackages = errors.New("outdated packages found")

// Result is the outcome of one check.
type Result struct {
	// Checked is the number of installed packages compared with their ports.
	Checked  int
	Outdated []update.OutdatedPackage
}

// PortCheck compares the installed packages of a workspace with its ports.
type PortCheck struct {
	config       *config.Config
	loadRegistry func(installedDir string) (statusdb.Registry, error)
	provider     portfile.Provider
	detector     update.Detector
}

// New creates a PortCheck reading the workspace described by cfg.
func New(cfg *config.Config) (*PortCheck, error) {
	for _, pattern := range cfg.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid ignore pattern %q", pattern)
		}
	}

	return &PortCheck{
		config: cfg,
		loadRegistry: func(installedDir string) (statusdb.Registry, error) {
			return statusdb.Load(installedDir)
		},
		provider: portfile.NewPathsProvider(cfg.PortsDir, cfg.OverlayPorts...),
		detector: update.NewDetector(update.WithWorkers(cfg.Workers)),
	}, nil
}

// Run loads the installed packages and reports the ones differing from their port.
func (c *PortCheck) Run(ctx context.Context) (*Result, error) {
	logger := logging.C(ctx)

	registry, err := c.loadRegistry(c.config.InstalledDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load installed packages: %w", err)
	}

	records := c.selectRecords(ctx, registry.AllRecords())
	primary := update.FilterPrimary(records)
	logger.Debug("Checking installed packages",
		zap.Int("records", len(records)),
		zap.Int("packages", len(primary)),
		zap.String("installed_dir", c.config.InstalledDir),
		zap.String("ports_dir", c.config.PortsDir),
	)

	outdated, err := update.FindOutdatedWith(ctx, c.detector, c.provider, primary)
	if err != nil {
		return nil, err
	}

	for _, o := range outdated {
		logger.Debug("Package differs from its port",
			zap.String("package", o.Spec.String()),
			zap.String("installed", o.VersionDiff.Installed.String()),
			zap.String("available", o.VersionDiff.Available.String()),
		)
	}
	logger.Info("Outdated package check finished",
		zap.Int("checked", len(primary)),
		zap.Int("outdated", len(outdated)),
	)

	return &Result{Checked: len(primary), Outdated: outdated}, nil
}

// selectRecords drops records of other triplets and records matching an ignore pattern.
func (c *PortCheck) selectRecords(ctx context.Context, records []statusdb.Record) []statusdb.Record {
	out := make([]statusdb.Record, 0, len(records))
	for _, r := range records {
		if c.config.Triplet != "" && r.Spec.Triplet != c.config.Triplet {
			continue
		}
		if pattern, ok := c.ignored(r.Spec.Name); ok {
			if r.IsPrimary() {
				logging.C(ctx).Debug("Ignoring package",
					zap.String("package", r.Spec.String()),
					zap.String("pattern", pattern),
				)
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

func (c *PortCheck) ignored(name string) (string, bool) {
	for _, pattern := range c.config.Ignore {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return pattern, true
		}
	}
	return "", false
}
