package services

import (
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// SuggestClosestName returns the catalog name nearest to a search query
// that matched nothing, or "" when no name is close enough to be a useful
// suggestion. Names are transliterated and lowercased before matching so
// accents and casing don't defeat the lookup.
func SuggestClosestName(query string, names []string) string {
	if query == "" || len(names) == 0 {
		return ""
	}

	normalized := make([]string, 0, len(names))
	index := make(map[string]string, len(names))
	for _, name := range names {
		n := normalizeName(name)
		normalized = append(normalized, n)
		index[n] = name
	}

	cm := closestmatch.New(normalized, []int{2, 3})
	best := cm.Closest(normalizeName(query))
	if best == "" {
		return ""
	}

	distance := levenshtein.DistanceForStrings(
		[]rune(normalizeName(query)), []rune(best), levenshtein.DefaultOptions)
	if distance > len([]rune(best))/2+1 {
		return ""
	}

	return index[best]
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(s)))
}
