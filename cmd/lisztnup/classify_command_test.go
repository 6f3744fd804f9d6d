package main

import "testing"

func TestClassifyUsesTypeMapping(t *testing.T) {
	setupCLITestEnv(t)

	out, err := runCLI(t, "classify", "La traviata", "--type", "Opera")
	if err != nil {
		t.Fatalf("classify: %v\n%s", err, out)
	}
	requireContains(t, out, "opera")
	requireContains(t, out, "type mapping")
}

func TestClassifyFallsThroughToNameRules(t *testing.T) {
	setupCLITestEnv(t)

	out, err := runCLI(t, "classify", "Symphony No. 9 in D minor")
	if err != nil {
		t.Fatalf("classify: %v\n%s", err, out)
	}
	requireContains(t, out, "orchestral")
	requireContains(t, out, "name rule")
}

func TestClassifyUnresolvedReportsCatchAll(t *testing.T) {
	setupCLITestEnv(t)

	out, err := runCLI(t, "classify", "Untitled sketch")
	if err != nil {
		t.Fatalf("classify: %v\n%s", err, out)
	}
	requireContains(t, out, "other")
	requireContains(t, out, "no rule matched")
}
