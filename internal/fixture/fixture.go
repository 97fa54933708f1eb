// Package fixture provides a test harness for running LaTeX-to-MathML
// conversion fixtures loaded from YAML files: a conversion either
// succeeds with an expected MathML string or fails with an expected
// error substring.
package fixture

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	latexmathmlcore "github.com/tmke8/latex2mathmlcore"
)

// Case is a single conversion test loaded from a fixture file.
type Case struct {
	Name   string `yaml:"name"`
	Input  string `yaml:"input"`
	Block  bool   `yaml:"block"`
	Pretty bool   `yaml:"pretty"`

	// Expected is the exact MathML output a successful conversion must
	// produce. Empty together with ExpectError set means the case only
	// checks that conversion fails.
	Expected string `yaml:"expected"`

	// ExpectError, when non-empty, is a substring the returned error's
	// message must contain; Expected is ignored for such cases.
	ExpectError string `yaml:"expect_error"`
}

// Fixture is the parsed contents of one YAML fixture file.
type Fixture struct {
	Path  string
	Cases []Case `yaml:"cases"`
}

// Harness loads and runs fixtures from a directory of YAML files.
type Harness struct {
	FixturesDir string
}

// NewHarness returns a Harness rooted at fixturesDir.
func NewHarness(fixturesDir string) *Harness {
	return &Harness{FixturesDir: fixturesDir}
}

// LoadFixture reads and unmarshals a single YAML fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	f := &Fixture{Path: path}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}
	return f, nil
}

// LoadAllFixtures loads every *.yaml file under the harness's
// FixturesDir.
func (h *Harness) LoadAllFixtures() ([]*Fixture, error) {
	var fixtures []*Fixture
	err := filepath.Walk(h.FixturesDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}
		f, err := LoadFixture(path)
		if err != nil {
			return err
		}
		fixtures = append(fixtures, f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return fixtures, nil
}

// Result is the outcome of running one Case.
type Result struct {
	Case   Case
	Passed bool
	Got    string
	Err    error
	Diff   string
}

// Run executes a single case against Convert.
func Run(c Case) Result {
	display := latexmathmlcore.Inline
	if c.Block {
		display = latexmathmlcore.Block
	}
	got, err := latexmathmlcore.Convert(c.Input, display, c.Pretty)

	r := Result{Case: c, Got: got, Err: err}
	switch {
	case c.ExpectError != "":
		if err == nil {
			r.Diff = fmt.Sprintf("expected error containing %q, conversion succeeded with %q", c.ExpectError, got)
			return r
		}
		if !strings.Contains(err.Error(), c.ExpectError) {
			r.Diff = fmt.Sprintf("expected error containing %q, got %q", c.ExpectError, err.Error())
			return r
		}
		r.Passed = true
	default:
		if err != nil {
			r.Diff = fmt.Sprintf("unexpected error: %v", err)
			return r
		}
		if got != c.Expected {
			r.Diff = fmt.Sprintf("expected %q, got %q", c.Expected, got)
			return r
		}
		r.Passed = true
	}
	return r
}

// RunFixture runs every case in f.
func RunFixture(f *Fixture) []Result {
	results := make([]Result, 0, len(f.Cases))
	for _, c := range f.Cases {
		results = append(results, Run(c))
	}
	return results
}

// RunAll loads and runs every fixture under the harness's FixturesDir.
func (h *Harness) RunAll() ([]Result, error) {
	fixtures, err := h.LoadAllFixtures()
	if err != nil {
		return nil, err
	}
	var results []Result
	for _, f := range fixtures {
		results = append(results, RunFixture(f)...)
	}
	return results, nil
}

// Summary tallies a batch of Results.
type Summary struct {
	Total, Passed, Failed int
}

// Summarize computes a Summary over results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// FormatResult renders r for display as [STATUS] name, with the diff
// appended on failure.
func FormatResult(r Result) string {
	status := "PASS"
	if !r.Passed {
		status = "FAIL"
	}
	if r.Passed {
		return fmt.Sprintf("[%s] %s", status, r.Case.Name)
	}
	return fmt.Sprintf("[%s] %s: %s", status, r.Case.Name, r.Diff)
}
