// Package main provides the CLI entry point for latex2mml.
//
// Usage:
//
//	latex2mml convert '\frac{1}{2}'
//	latex2mml convert -pretty -block '\sum_{i=0}^n i'
//	latex2mml test ./testdata
package main

import (
	"flag"
	"fmt"
	"os"

	latexmathmlcore "github.com/tmke8/latex2mathmlcore"
	"github.com/tmke8/latex2mathmlcore/internal/config"
	"github.com/tmke8/latex2mathmlcore/internal/fixture"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "convert", "c":
		if err := runConvert(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "test", "t":
		if err := runTest(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		printVersion()
	default:
		// Assume a single argument is LaTeX source for convert.
		if err := runConvert(os.Args[1:]); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

func printUsage() {
	fmt.Println(`latex2mml - LaTeX math to MathML Core

Usage:
  latex2mml convert [-pretty] [-block] [-config <path>] <latex>
  latex2mml <latex>
  latex2mml test [-config <path>] <fixtures-dir>
  latex2mml help
  latex2mml version

Commands:
  convert, c    Convert a LaTeX math expression to MathML
  test, t       Run YAML conversion fixtures and report pass/fail
  help          Show this help message
  version       Show version information

Options:
  -pretty   Indent MathML output two spaces per nesting level
  -block    Emit <math display="block"> instead of <math>
  -config   Path to a TOML config file supplying defaults`)
}

func printVersion() {
	fmt.Println("latex2mml version 0.1.0")
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	pretty := fs.Bool("pretty", false, "indent MathML output")
	block := fs.Bool("block", false, `emit <math display="block">`)
	configPath := fs.String("config", "", "path to a TOML config file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("missing LaTeX input")
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *pretty {
		cfg.Pretty = true
	}
	display := latexmathmlcore.Inline
	if *block || cfg.Display == "block" {
		display = latexmathmlcore.Block
	}

	out, err := latexmathmlcore.Convert(fs.Arg(0), display, cfg.Pretty)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	fmt.Println(out)
	return nil
}

func runTest(args []string) error {
	fs := flag.NewFlagSet("test", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a TOML config file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fixturesDir := "testdata"
	if fs.NArg() > 0 {
		fixturesDir = fs.Arg(0)
	} else if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		if cfg.FixturesDir != "" {
			fixturesDir = cfg.FixturesDir
		}
	}

	h := fixture.NewHarness(fixturesDir)
	results, err := h.RunAll()
	if err != nil {
		return fmt.Errorf("cannot load fixtures: %w", err)
	}

	for _, r := range results {
		fmt.Println(fixture.FormatResult(r))
	}
	summary := fixture.Summarize(results)
	fmt.Printf("%d passed, %d failed, %d total\n", summary.Passed, summary.Failed, summary.Total)
	if summary.Failed > 0 {
		os.Exit(1)
	}
	return nil
}
