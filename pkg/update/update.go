package update

import (
	"context"
	"fmt"
	"sort"

	"github.com/lerenn/portcheck/pkg/packagespec"
	"github.com/lerenn/portcheck/pkg/portfile"
	"github.com/lerenn/portcheck/pkg/statusdb"
)

// FilterPrimary keeps the records describing packages themselves and drops
// feature records, preserving order.
func FilterPrimary(records []statusdb.Record) []statusdb.Record {
	out := make([]statusdb.Record, 0, len(records))
	for _, r := range records {
		if r.IsPrimary() {
			out = append(out, r)
		}
	}
	return out
}

// Sort returns a copy of outdated ordered by package name, then triplet.
// Entries with the same spec keep their relative order.
func Sort(outdated []OutdatedPackage) []OutdatedPackage {
	sorted := append([]OutdatedPackage(nil), outdated...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return packagespec.Less(sorted[i].Spec, sorted[j].Spec)
	})
	return sorted
}

// FindOutdated lists the installed packages of registry whose version differs
// from the one declared by provider, sorted by spec.
func FindOutdated(
	ctx context.Context,
	provider portfile.Provider,
	registry statusdb.Registry,
	opts ...Option,
) ([]OutdatedPackage, error) {
	return FindOutdatedWith(ctx, NewDetector(opts...), provider, registry.AllRecords())
}

// FindOutdatedWith runs detector on records and sorts the result.
func FindOutdatedWith(
	ctx context.Context,
	detector Detector,
	provider portfile.Provider,
	records []statusdb.Record,
) ([]OutdatedPackage, error) {
	outdated, err := detector.Detect(ctx, FilterPrimary(records), provider)
	if err != nil {
		return nil, fmt.Errorf("failed to detect outdated packages: %w", err)
	}
	return Sort(outdated), nil
}
