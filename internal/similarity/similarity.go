// Package similarity scores how alike two strings are using Gestalt pattern
// matching (Ratcliff/Obershelp), the same measure as difflib's
// SequenceMatcher.ratio.
package similarity

import (
	"sort"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultCutoff is the minimum ratio for a candidate to count as a match.
const DefaultCutoff = 0.5

// Match is a candidate string with its similarity ratio to the query.
type Match struct {
	Candidate string
	Score     float64
}

// Ratio returns the similarity of a and b in [0, 1]. Two empty strings are
// identical (1.0).
func Ratio(a, b string) float64 {
	m := difflib.NewMatcher(split(a), split(b))
	return m.Ratio()
}

// CloseMatches returns up to n candidates whose ratio against query is at
// least cutoff (inclusive), best first. Equal scores are ordered by
// candidate, greater first. Duplicate candidates are considered once.
func CloseMatches(query string, candidates []string, n int, cutoff float64) []Match {
	if n <= 0 {
		return nil
	}

	m := difflib.NewMatcher(nil, split(query))
	seen := make(map[string]struct{}, len(candidates))
	var matches []Match
	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}

		m.SetSeq1(split(c))
		if m.RealQuickRatio() < cutoff || m.QuickRatio() < cutoff {
			continue
		}
		if score := m.Ratio(); score >= cutoff {
			matches = append(matches, Match{Candidate: c, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Candidate > matches[j].Candidate
	})
	if len(matches) > n {
		matches = matches[:n]
	}
	return matches
}

// Best returns the single closest candidate at or above cutoff.
func Best(query string, candidates []string, cutoff float64) (Match, bool) {
	matches := CloseMatches(query, candidates, 1, cutoff)
	if len(matches) == 0 {
		return Match{}, false
	}
	return matches[0], true
}

// Candidates extracts the candidate strings from matches, preserving order.
func Candidates(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Candidate
	}
	return out
}

// split turns s into one element per rune so the matcher compares characters.
func split(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
