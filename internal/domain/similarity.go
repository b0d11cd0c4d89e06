package domain

import (
	"fmt"
	"math"
	"strings"
)

// DuplicateCandidateLimit caps how many same-author, same-source quotations are compared.
const DuplicateCandidateLimit = 100

// DuplicateStrategy decides whether two quotation texts are near-duplicates.
type DuplicateStrategy interface {
	Name() string
	IsDuplicate(a, b string) bool
}

// NormalizeText lowercases and trims a quotation text for comparison.
func NormalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// PositionalStrategy flags equal texts, texts containing one another, and texts of nearly
// equal length whose characters match position by position.
//
// It compares characters at the same index only, so transposed or shifted text is missed.
type PositionalStrategy struct{}

const (
	positionalMaxLengthDelta = 5
	positionalMinRatio       = 0.90
)

func (PositionalStrategy) Name() string { return "positional" }

func (PositionalStrategy) IsDuplicate(a, b string) bool {
	na, nb := NormalizeText(a), NormalizeText(b)

	if na == nb {
		return true
	}

	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return true
	}

	ra, rb := []rune(na), []rune(nb)
	if abs(len(ra)-len(rb)) > positionalMaxLengthDelta {
		return false
	}

	return PositionalRatio(ra, rb) > positionalMinRatio
}

// PositionalRatio counts indices holding the same rune in both inputs, over the shorter
// length, and divides by the longer length.
func PositionalRatio(a, b []rune) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1
	}

	matches := 0
	for i := range min(len(a), len(b)) {
		if a[i] == b[i] {
			matches++
		}
	}

	return float64(matches) / float64(longest)
}

// LevenshteinStrategy flags texts whose normalized edit-distance similarity reaches Threshold.
type LevenshteinStrategy struct {
	Threshold float64
}

func (s LevenshteinStrategy) Name() string { return "levenshtein" }

func (s LevenshteinStrategy) IsDuplicate(a, b string) bool {
	ra, rb := []rune(NormalizeText(a)), []rune(NormalizeText(b))

	longest := max(len(ra), len(rb))
	if longest == 0 {
		return true
	}

	// Any distance above limit puts the pair below Threshold.
	limit := int(math.Ceil(float64(longest) * (1 - s.Threshold)))
	if abs(len(ra)-len(rb)) > limit {
		return false
	}

	dist := levenshtein(ra, rb, limit)
	if dist > limit {
		return false
	}

	return 1-float64(dist)/float64(longest) >= s.Threshold
}

// levenshtein computes the edit distance with a two-row table. Once a whole row exceeds
// limit it stops and returns limit+1.
func levenshtein(a, b []rune, limit int) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		rowMin := curr[0]
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			rowMin = min(rowMin, curr[j])
		}
		if rowMin > limit {
			return limit + 1
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// NewDuplicateStrategy resolves a strategy by name. An empty name selects the positional
// heuristic.
func NewDuplicateStrategy(name string, threshold float64) (DuplicateStrategy, error) {
	switch strings.ToLower(name) {
	case "", "positional":
		return PositionalStrategy{}, nil
	case "levenshtein":
		if threshold <= 0 || threshold > 1 {
			threshold = positionalMinRatio
		}
		return LevenshteinStrategy{Threshold: threshold}, nil
	default:
		return nil, fmt.Errorf("unknown duplicate strategy %q", name)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
