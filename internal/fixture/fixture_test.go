package fixture

import (
	"path/filepath"
	"testing"
)

func TestRepositoryFixtures(t *testing.T) {
	h := NewHarness(filepath.Join("..", "..", "testdata"))
	results, err := h.RunAll()
	if err != nil {
		t.Fatalf("RunAll returned error: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("no fixture cases were loaded")
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("%s", FormatResult(r))
		}
	}
}

func TestSummarizeCountsOutcomes(t *testing.T) {
	results := []Result{
		{Passed: true},
		{Passed: false, Diff: "boom"},
		{Passed: true},
	}
	s := Summarize(results)
	if s.Total != 3 || s.Passed != 2 || s.Failed != 1 {
		t.Errorf("Summarize = %+v, want {3 2 1}", s)
	}
}
