package main

import (
	"bytes"
	"testing"
	"valorant-analytics/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	results := []domain.FileImportResult{
		{File: "a.json", ImportResult: domain.ImportResult{Status: domain.ImportStatusImported, MatchID: "m1"}},
		{File: "b.json", ImportResult: domain.ImportResult{Status: domain.ImportStatusError, Error: "boom"}},
	}

	var out bytes.Buffer
	require.NoError(t, report(&out, results, domain.Summarize(results)))
	require.Contains(t, out.String(), "a.json")
	require.Contains(t, out.String(), "boom")
	require.Contains(t, out.String(), "imported 1, skipped 0, failed 1")
}

func TestReportAllFailed(t *testing.T) {
	results := []domain.FileImportResult{
		{File: "b.json", ImportResult: domain.ImportResult{Status: domain.ImportStatusError, Error: "boom"}},
	}

	var out bytes.Buffer
	require.ErrorIs(t, report(&out, results, domain.Summarize(results)), errAllFailed)
}

func TestReportEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, report(&out, nil, domain.ImportSummary{}))
}
