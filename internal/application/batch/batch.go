// Package batch implements the bookkeeping shared by the batch
// ingestion endpoints: per-candidate failures keyed by input index, a
// created counter, and a three-way outcome.
package batch

import (
	"fmt"
	"strings"
)

// ItemError records one rejected candidate. Index is the 0-based
// position in the submitted sequence.
type ItemError struct {
	Index int            `json:"index"`
	Error string         `json:"error"`
	Data  map[string]any `json:"data,omitempty"`
}

// Outcome classifies a finished batch.
type Outcome int

const (
	// OutcomeAllCreated means every candidate was accepted (skipped
	// duplicates count as accepted work, not failures).
	OutcomeAllCreated Outcome = iota
	// OutcomePartial means some candidates were accepted and some failed.
	OutcomePartial
	// OutcomeAllFailed means no candidate was accepted.
	OutcomeAllFailed
)

// Report accumulates the result of one batch run.
type Report struct {
	Errors  []ItemError
	created int
	skipped int
}

// Fail records a per-candidate failure.
func (r *Report) Fail(index int, reason string, data map[string]any) {
	r.Errors = append(r.Errors, ItemError{Index: index, Error: reason, Data: data})
}

// FailMissingFields records a missing-required-fields failure.
func (r *Report) FailMissingFields(index int, missing []string, data map[string]any) {
	r.Fail(index, fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")), data)
}

// MarkCreated counts an accepted candidate.
func (r *Report) MarkCreated() {
	r.created++
}

// MarkSkipped counts a deliberately skipped candidate (for example a
// duplicate email during batch registration). Skips are not failures.
func (r *Report) MarkSkipped() {
	r.skipped++
}

// CreatedCount returns the number of accepted candidates.
func (r *Report) CreatedCount() int {
	return r.created
}

// SkippedCount returns the number of skipped candidates.
func (r *Report) SkippedCount() int {
	return r.skipped
}

// Outcome classifies the run. Skipped candidates count toward the
// success side: a batch of only skips is still a full success.
func (r *Report) Outcome() Outcome {
	switch {
	case len(r.Errors) == 0:
		return OutcomeAllCreated
	case r.created == 0 && r.skipped == 0:
		return OutcomeAllFailed
	default:
		return OutcomePartial
	}
}

// MissingFields returns the required keys absent from item, in the
// order they were required. Presence is key presence: an explicit null
// satisfies the check.
func MissingFields(item map[string]any, required ...string) []string {
	var missing []string
	for _, field := range required {
		if _, ok := item[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing
}
