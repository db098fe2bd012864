//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var (
	binDir  = "bin"
	appName = "cafevirtuel-server"
)

var Default = Build

// Tidy syncs go.mod with the imports
func Tidy() error {
	return sh.RunV("go", "mod", "tidy")
}

// Vet runs go vet over every package
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Test runs unit and integration tests
func Test() error {
	mg.Deps(Vet)
	fmt.Println("Testing...")
	return sh.RunV("go", "test", "./...", "-count=1", "-race")
}

// Features runs only the acceptance scenarios
func Features() error {
	return sh.RunV("go", "test", "./internal/usecase", "-run", "TestFeatures", "-count=1", "-v")
}

// Build compiles the server binary into bin/
func Build() error {
	mg.Deps(Tidy)

	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return err
	}

	out := filepath.Join(binDir, appName+exeSuffix())
	fmt.Println("Building:", out)

	env := map[string]string{"CGO_ENABLED": "0"}
	return sh.RunWithV(env, "go", "build", "-trimpath", "-o", out, "./cmd/server")
}

// Run starts the server from source
func Run() error {
	fmt.Println("Running (go run) on :8080 ...")
	return sh.RunV("go", "run", "./cmd/server")
}

// Clean removes build output
func Clean() error {
	return os.RemoveAll(binDir)
}

func exeSuffix() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}
