//go:build mage

// Package main contains Mage build targets for pubmed-fetcher developer tooling.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir     = "bin"
	binName    = "pubmed-fetcher"
	cmdPkg     = "./cmd/pubmed-fetcher"
	secretsDir = ".secrets"
	configFile = "pubmed-fetcher.yaml"
)

// sampleConfig is written by Init when no config file exists.
const sampleConfig = `source:
  max_results: 10
  timeout: 30s
  # requests_per_second: 3
report:
  format: table
# classifier:
#   company_names: [genentech, pfizer, novartis, roche, astrazeneca, merck]
`

// Init creates the secrets directory and a starter config file.
func Init() error {
	if err := os.MkdirAll(secretsDir, 0o700); err != nil {
		return fmt.Errorf("creating %s: %w", secretsDir, err)
	}
	fmt.Printf("  %s/ (add ncbi-api-key and ncbi-email files)\n", secretsDir)

	if _, err := os.Stat(configFile); err == nil {
		fmt.Printf("  %s exists, left unchanged\n", configFile)
		return nil
	}
	if err := os.WriteFile(configFile, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", configFile, err)
	}
	fmt.Println("  ", configFile)
	return nil
}

// Build compiles the CLI binary into bin/, stamping the git version when
// available.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || version == "" {
		version = "dev"
	}
	out := filepath.Join(binDir, binName)
	ldflags := "-X main.version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s (%s)\n", out, version)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and the tests.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}

// Stats prints Go production and test line counts.
func Stats() error {
	prod, test, err := countGoLines(".")
	if err != nil {
		return err
	}
	fmt.Printf("Lines of code (Go, production): %d\n", prod)
	fmt.Printf("Lines of code (Go, tests):      %d\n", test)
	return nil
}

// countGoLines counts non-blank lines in .go files under root, split into
// production and _test.go files. Directories starting with "_" or "." are
// skipped, matching the go tool.
func countGoLines(root string) (prod, test int, err error) {
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(name) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		n := 0
		for _, line := range bytes.Split(data, []byte("\n")) {
			if len(bytes.TrimSpace(line)) > 0 {
				n++
			}
		}
		if strings.HasSuffix(name, "_test.go") {
			test += n
		} else {
			prod += n
		}
		return nil
	})
	return prod, test, err
}
