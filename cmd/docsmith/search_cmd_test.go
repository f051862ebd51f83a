package main

import (
	"encoding/json"
	"testing"

	"github.com/sgx-labs/docsmith/internal/content"
)

func TestSearchCmdJSON(t *testing.T) {
	setupCommandTestCorpus(t)

	out := captureStdout(t, func() error {
		cmd := searchCmd()
		cmd.SetArgs([]string{"--json", "observer"})
		return cmd.Execute()
	})

	var results []content.SearchResult
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("bad JSON output: %v\n%s", err, out)
	}
	if len(results) != 1 || results[0].Slug != "design-pattern/observer" {
		t.Errorf("results = %+v", results)
	}
}

func TestSearchCmdShortQuery(t *testing.T) {
	setupCommandTestCorpus(t)

	out := captureStdout(t, func() error {
		cmd := searchCmd()
		cmd.SetArgs([]string{"--json", "a"})
		return cmd.Execute()
	})

	var results []content.SearchResult
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("bad JSON output: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("short query results = %+v", results)
	}
}
