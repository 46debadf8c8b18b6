package domain

import "time"

type ImportStatus string

const (
	ImportStatusImported ImportStatus = "imported"
	ImportStatusSkipped  ImportStatus = "skipped"
	ImportStatusError    ImportStatus = "error"
)

// ConflictPolicy decides what happens when the match id is already stored.
type ConflictPolicy int

const (
	// ConflictOverwrite purges the stored match and writes the new pass.
	ConflictOverwrite ConflictPolicy = iota
	// ConflictSkip leaves the stored match untouched.
	ConflictSkip
)

func (p ConflictPolicy) String() string {
	if p == ConflictSkip {
		return "skip"
	}
	return "overwrite"
}

type ImportResult struct {
	Status  ImportStatus `json:"status"`
	MatchID string       `json:"matchId,omitempty"`
	Reason  string       `json:"reason,omitempty"`
	Error   string       `json:"error,omitempty"`

	// Cause keeps the wrapped error behind an error outcome.
	Cause error `json:"-"`
}

func (r ImportResult) Failed() bool {
	return r.Status == ImportStatusError
}

type FileImportResult struct {
	File string `json:"file"`
	ImportResult
}

type ImportSummary struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

func Summarize(results []FileImportResult) ImportSummary {
	var summary ImportSummary
	for _, r := range results {
		switch r.Status {
		case ImportStatusImported:
			summary.Imported++
		case ImportStatusSkipped:
			summary.Skipped++
		default:
			summary.Failed++
		}
	}
	return summary
}

// ImportLogEntry is the persisted audit record of one import attempt.
type ImportLogEntry struct {
	ID        string
	MatchID   string
	Source    string
	Policy    string
	TeamID    *string
	Status    ImportStatus
	Detail    string
	CreatedAt time.Time
}
