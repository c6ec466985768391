// Package pattern implements the glob-related helpers from
// original_source/part5/pattern.c: glob-character detection, prefix
// and suffix matching against a shell pattern, and filename globbing.
// Matching uses path/filepath.Match, the closest stdlib analog to
// POSIX fnmatch without locale-aware collation, which spec.md's
// Non-goals explicitly exclude.
package pattern

import (
	"path/filepath"
	"strings"
)

// HasGlobChars reports whether s contains any shell glob
// metacharacter: '*', '?', or a balanced nonzero pair of '[' ']'.
func HasGlobChars(s string) bool {
	if strings.ContainsAny(s, "*?") {
		return true
	}
	open := strings.Count(s, "[")
	close := strings.Count(s, "]")
	return open > 0 && open == close
}

// MatchPrefix matches pattern against successively longer prefixes of
// str (str[:1], str[:2], ..., str[:len(str)]). With longest=false it
// returns the first (shortest) prefix that matches; with
// longest=true it returns the last (longest) one. Returns "" if no
// prefix matches.
func MatchPrefix(pattern, str string, longest bool) string {
	best := ""
	for i := 1; i <= len(str); i++ {
		candidate := str[:i]
		ok, err := filepath.Match(pattern, candidate)
		if err != nil || !ok {
			continue
		}
		if !longest {
			return candidate
		}
		best = candidate
	}
	return best
}

// MatchSuffix is MatchPrefix's mirror, scanning suffixes from the end
// of str toward the front.
func MatchSuffix(pattern, str string, longest bool) string {
	best := ""
	for i := len(str) - 1; i >= 0; i-- {
		candidate := str[i:]
		ok, err := filepath.Match(pattern, candidate)
		if err != nil || !ok {
			continue
		}
		if !longest {
			return candidate
		}
		best = candidate
	}
	return best
}

// GetFilenameMatches expands pattern against the filesystem, as
// POSIX glob(3) would, with no special flags. A pattern matching
// nothing returns an empty, non-nil slice.
func GetFilenameMatches(pattern string) []string {
	matches, err := filepath.Glob(pattern)
	if err != nil || matches == nil {
		return []string{}
	}
	return matches
}
