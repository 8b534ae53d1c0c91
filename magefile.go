//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strconv"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// ======================================
// SETUP
// ======================================

type Setup mg.Namespace

func (Setup) Go() error {
	fmt.Println("Setting up Go environment...")

	// Check Go version
	fmt.Println("Checking Go version... (go version)")
	if err := goVersion(); err != nil {
		return err
	}

	// Install golangci-lint
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Println("Installing golangci-lint...")
		if err := sh.RunV("go", "install", "github.com/golangci/golangci-lint/cmd/golangci-lint@latest"); err != nil {
			return err
		}
	}

	fmt.Println("Go environment setup complete.")

	return nil
}

func goVersion() error {
	out, err := exec.Command("go", "version").Output()
	if err != nil {
		return err
	}
	version := string(out)
	remote := struct {
		major int
		minor int
	}{
		major: 1,
		minor: 22,
	}

	required := struct {
		major int
		minor int
	}{
		major: 1,
		minor: 22,
	}

	re := regexp.MustCompile(`go version go([0-9]+)\.([0-9]+)`)
	matches := re.FindStringSubmatch(version)
	if len(matches) > 2 {
		major, _ := strconv.Atoi(matches[1])
		minor, _ := strconv.Atoi(matches[2])

		fmt.Printf("go version: %d.%d (local) | %d.%d (repository)", major, minor, remote.major, remote.minor)
		if major < required.major || (major == required.major && minor < required.minor) {
			fmt.Printf("   └─ >= %d.%d required", required.major, required.minor)
		}
	} else {
		return fmt.Errorf("failed to parse Go version from: %s", version)
	}

	return nil
}

// ======================================
// TESTING
// ======================================

type Test mg.Namespace

// All runs all tests in the project
func (t Test) All() error {
	fmt.Println("Running tests...")
	return sh.RunV("go", "test", "./...")
}

// Coverage runs tests with coverage reporting
func (t Test) Coverage() error {
	fmt.Println("Running tests with coverage...")
	return sh.RunV("go", "test", "-coverprofile=coverage.out", "./...")
}

// Bench runs the benchmarks
func (t Test) Bench() error {
	fmt.Println("Running benchmarks...")
	return sh.RunV("go", "test", "-bench=.", "-benchmem", "-run=^$", "./...")
}

// ======================================
// DEVELOPMENT UTILITIES
// ======================================

// Lint runs the linter (golangci-lint)
func Lint() error {
	fmt.Println("Running linter...")
	// Check if golangci-lint is available
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		return fmt.Errorf("golangci-lint not found. Please install it first:\n  go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest")
	}
	return sh.RunV("golangci-lint", "run")
}

// Fmt formats Go source code
func Fmt() error {
	fmt.Println("Formatting go code...")
	return sh.RunV("go", "fmt", "./...")
}

// Build builds the project
func Build() error {
	fmt.Println("Building project...")
	return sh.RunV("go", "build", "./...")
}

// Clean removes generated files
func Clean() error {
	fmt.Println("Cleaning up generated files...")
	// Remove binaries directory if it exists
	if err := sh.Rm("./bin"); err != nil {
		// Ignore errors if directory doesn't exist
		if !os.IsNotExist(err) {
			return err
		}
	}
	if err := sh.Rm("coverage.out"); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// Help displays available commands (default target)
func Help() {
	fmt.Println("Available Mage commands:")
	fmt.Println("  mage test:all      - Run all tests")
	fmt.Println("  mage test:coverage - Run tests with coverage reporting")
	fmt.Println("  mage test:bench    - Run the benchmarks")
	fmt.Println("  mage lint          - Run golangci-lint")
	fmt.Println("  mage build         - Build the project")
	fmt.Println("  mage clean         - Clean up generated files")
	fmt.Println("  mage help          - Show this help message")
	fmt.Println("")
	fmt.Println("You can also run 'mage -l' to list all available targets.")
}

// Default target - displays help when no target is specified
var Default = Help
