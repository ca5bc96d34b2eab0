// CI functions for portcheck
//
// Runs the unit tests and the linters of the portcheck repository in
// containers, so that local runs and CI share the same toolchain.

package main

import (
	"dagger/portcheck/internal/dagger"
)

type Portcheck struct{}

// goContainer returns a Go container with the sources mounted and the module cache shared.
func goContainer(sourceDir *dagger.Directory) *dagger.Container {
	return dag.Container().From("golang:1.24").
		WithMountedCache("/go/pkg/mod", dag.CacheVolume("portcheck-gomod")).
		WithMountedDirectory("/src", sourceDir).
		WithWorkdir("/src")
}

// UnitTests runs every Go test, including the ones behind the unit build tag.
func (m *Portcheck) UnitTests(sourceDir *dagger.Directory) *dagger.Container {
	return goContainer(sourceDir).
		WithExec([]string{"go", "test", "-tags", "unit", "-race", "./..."})
}

// CheckGenerated regenerates the mocks and fails if they drifted from the committed ones.
func (m *Portcheck) CheckGenerated(sourceDir *dagger.Directory) *dagger.Container {
	return goContainer(sourceDir).
		WithExec([]string{"go", "generate", "./pkg/..."}).
		WithExec([]string{"git", "diff", "--exit-code", "--", "pkg"})
}

// Lint runs golangci-lint on the main repo (./...) only.
func (m *Portcheck) Lint(sourceDir *dagger.Directory) *dagger.Container {
	c := dag.Container().
		From("golangci/golangci-lint:v1.62.0").
		WithMountedCache("/root/.cache/golangci-lint", dag.CacheVolume("golangci-lint"))

	c = c.WithMountedDirectory("/src", sourceDir).
		WithWorkdir("/src")

	return c.WithExec([]string{"golangci-lint", "run", "--build-tags", "unit", "--timeout", "10m", "./..."})
}

// LintDagger runs golangci-lint on the .dagger directory only.
func (m *Portcheck) LintDagger(sourceDir *dagger.Directory) *dagger.Container {
	c := dag.Container().
		From("golangci/golangci-lint:v1.62.0").
		WithMountedCache("/root/.cache/golangci-lint", dag.CacheVolume("golangci-lint"))

	c = c.WithMountedDirectory("/src", sourceDir).
		WithWorkdir("/src")

	return c.WithExec([]string{"sh", "-c", "cd .dagger && golangci-lint run --timeout 10m ."})
}
