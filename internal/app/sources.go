package app

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ExpandSources replaces glob patterns ("logs/**/*.log") with the files they
// match, in lexical order. Plain paths and "-" pass through untouched, as
// does a pattern matching nothing, so it is reported as a missing source.
// Duplicates are dropped.
func ExpandSources(sources []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool)
	add := func(source string) {
		if !seen[source] {
			seen[source] = true
			out = append(out, source)
		}
	}

	for _, source := range sources {
		if source == StdinSource || !strings.ContainsAny(source, "*?[{") {
			add(source)
			continue
		}
		matches, err := doublestar.FilepathGlob(source, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand %s: %w", source, err)
		}
		if len(matches) == 0 {
			add(source)
			continue
		}
		slices.Sort(matches)
		for _, match := range matches {
			add(match)
		}
	}
	return out, nil
}
