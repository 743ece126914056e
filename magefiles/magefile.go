// Package main provides build targets for the tshetuinh project using Mage.
//
// Usage:
//
//	mage build     Compile tshet binary to bin/
//	mage test      Run all tests
//	mage testShort Run tests without the full product-space sweeps
//	mage lint      Run golangci-lint
//	mage clean     Remove build artifacts
//	mage install   Install tshet to GOPATH/bin

//go:build mage

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "tshet"
	binaryDir  = "bin"
	cmdDir     = "./cmd/tshet"
)

// Build compiles the tshet binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests, including the full product-space sweeps.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestShort runs the tests in short mode, skipping the exhaustive sweeps.
func TestShort() error {
	return sh.RunV("go", "test", "-short", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV("go", "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
