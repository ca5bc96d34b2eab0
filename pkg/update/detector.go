//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -destination=mock_detector.gen.go -package=update . Detector
package update

import (
	"context"
	"errors"
	"fmt"

	"github.com/lerenn/portcheck/pkg/portfile"
	"github.com/lerenn/portcheck/pkg/statusdb"
	"golang.org/x/sync/errgroup"
)

// Detector finds installed packages whose version differs from their port.
type Detector interface {
	// Detect returns one OutdatedPackage per primary record whose version is not
	// the one declared by the provider. Records without a port are skipped.
	// Output follows input order.
	Detect(ctx context.Context, records []statusdb.Record, provider portfile.Provider) ([]OutdatedPackage, error)
}

// Option configures a Detector.
type Option func(*detector)

// WithWorkers sets how many port lookups may run at once. Values below 2
// keep detection sequential.
func WithWorkers(n int) Option {
	return func(d *detector) {
		d.workers = n
	}
}

type detector struct {
	workers int
}

// Ensure detector implements Detector.
var _ Detector = (*detector)(nil)

// NewDetector creates a new Detector.
func NewDetector(opts ...Option) Detector {
	d := &detector{workers: 1}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect implements the Detector interface.
func (d *detector) Detect(
	ctx context.Context,
	records []statusdb.Record,
	provider portfile.Provider,
) ([]OutdatedPackage, error) {
	primary := FilterPrimary(records)
	if d.workers < 2 {
		return d.detectSequential(ctx, primary, provider)
	}
	return d.detectConcurrent(ctx, primary, provider)
}

func (d *detector) detectSequential(
	ctx context.Context,
	records []statusdb.Record,
	provider portfile.Provider,
) ([]OutdatedPackage, error) {
	var output []OutdatedPackage
	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pkg, outdated, err := check(r, provider)
		if err != nil {
			return nil, err
		}
		if outdated {
			output = append(output, pkg)
		}
	}
	return output, nil
}

func (d *detector) detectConcurrent(
	ctx context.Context,
	records []statusdb.Record,
	provider portfile.Provider,
) ([]OutdatedPackage, error) {
	type slot struct {
		pkg      OutdatedPackage
		outdated bool
	}
	slots := make([]slot, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)
	for i, r := range records {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pkg, outdated, err := check(r, provider)
			if err != nil {
				return err
			}
			slots[i] = slot{pkg: pkg, outdated: outdated}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var output []OutdatedPackage
	for _, s := range slots {
		if s.outdated {
			output = append(output, s.pkg)
		}
	}
	return output, nil
}

// check compares one primary record with its port.
func check(r statusdb.Record, provider portfile.Provider) (OutdatedPackage, bool, error) {
	cf, err := provider.Lookup(r.Spec.Name)
	if errors.Is(err, portfile.ErrPortNotFound) {
		// The port was removed or renamed since the package was installed
		return OutdatedPackage{}, false, nil
	}
	if err != nil {
		return OutdatedPackage{}, false, fmt.Errorf("failed to look up port for %s: %w", r.Spec, err)
	}
	if r.Version.Equal(cf.Version) {
		return OutdatedPackage{}, false, nil
	}
	return OutdatedPackage{
		Spec:        r.Spec,
		VersionDiff: NewVersionDiff(r.Version, cf.Version),
	}, true, nil
}
