package quote

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/tiecvui/api/internal/catalog"
)

// Candidate is one ranked match for a pasted line.
type Candidate struct {
	ItemID     uuid.UUID
	Confidence int
}

// Matcher maps pasted order lines to ranked catalog candidates, one result
// slice per input line, best first. May be backed by something slow; the
// caller owns cancellation.
type Matcher interface {
	Match(ctx context.Context, lines []string) ([][]Candidate, error)
}

// ImportResult reports what a bulk import did per line.
type ImportResult struct {
	Added          []uuid.UUID `json:"added"`
	AlreadyChosen  []uuid.UUID `json:"already_chosen"`
	UnmatchedLines []string    `json:"unmatched_lines"`
}

// Leading ordinal like "1. " or " 12.  ".
var ordinalPrefix = regexp.MustCompile(`^\s*\d+\.\s*`)

// PrepareLines splits pasted text into candidate lines: leading "N. "
// ordinals stripped, blank lines dropped, original order kept.
func PrepareLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(ordinalPrefix.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// BulkImport matches pasted text against the catalog and selects the top
// candidate of each matched line. Lines with no candidates are reported,
// not errored; already-selected items are never toggled off. A matcher
// failure leaves the selection untouched: the batch applies all-or-nothing.
func BulkImport(ctx context.Context, m Matcher, proj *catalog.Projection, sel *Selection, text string) (ImportResult, error) {
	var result ImportResult

	lines := PrepareLines(text)
	if len(lines) == 0 {
		return result, nil
	}

	matches, err := m.Match(ctx, lines)
	if err != nil {
		return ImportResult{}, err
	}

	return ApplyMatches(lines, matches, proj, sel), nil
}

// ApplyMatches applies already-fetched match results: the top candidate of
// each matched line is selected, already-selected items are left alone, and
// unmatched lines are reported. Split out so callers that must guard
// against stale async results can run the match and the apply separately.
func ApplyMatches(lines []string, matches [][]Candidate, proj *catalog.Projection, sel *Selection) ImportResult {
	var result ImportResult

	for i, candidates := range matches {
		if len(candidates) == 0 {
			result.UnmatchedLines = append(result.UnmatchedLines, lines[i])
			continue
		}
		top := candidates[0]
		item, ok := proj.FoodByID(top.ItemID)
		if !ok {
			// Matched something that is not a selectable food item.
			result.UnmatchedLines = append(result.UnmatchedLines, lines[i])
			continue
		}
		if sel.AddFood(item) {
			result.Added = append(result.Added, item.ID)
		} else {
			result.AlreadyChosen = append(result.AlreadyChosen, item.ID)
		}
	}

	return result
}
