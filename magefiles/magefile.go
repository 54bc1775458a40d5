//go:build mage

// Package main provides build targets for lumen using Mage.
//
// Usage:
//
//	mage build        Compile the lumen binary to bin/
//	mage install      Install lumen to GOPATH/bin
//	mage test:all     Run all tests
//	mage test:race    Run all tests with the race detector
//	mage test:cover   Write coverage.out and print per-function coverage
//	mage lint         Run golangci-lint
//	mage vet          Run go vet
//	mage clean        Remove build artifacts
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "lumen"
	binaryDir  = "bin"
	cmdDir     = "./cmd/lumen"
	versionPkg = "github.com/mesh-intelligence/lumen/internal/version"
)

// Build compiles the lumen binary to bin/, stamping the commit and date.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v",
		"-ldflags", ldflags(),
		"-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// ldflags sets version.Commit and version.BuildDate. Outside a git
// checkout the commit is left empty.
func ldflags() string {
	flags := []string{fmt.Sprintf("-X %s.BuildDate=%s", versionPkg, time.Now().UTC().Format("2006-01-02"))}
	if commit, err := sh.Output("git", "rev-parse", "--short", "HEAD"); err == nil && commit != "" {
		flags = append(flags, fmt.Sprintf("-X %s.Commit=%s", versionPkg, commit))
	}
	return strings.Join(flags, " ")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	if err := os.RemoveAll("coverage.out"); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}
