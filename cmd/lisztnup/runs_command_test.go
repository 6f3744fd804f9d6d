package main

import "testing"

func TestRunsEmptyHistory(t *testing.T) {
	setupCLITestEnv(t)

	out, err := runCLI(t, "runs")
	if err != nil {
		t.Fatalf("runs: %v\n%s", err, out)
	}
	requireContains(t, out, "No curation runs recorded yet")
}
