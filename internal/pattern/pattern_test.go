package pattern

import "testing"

func TestHasGlobChars(t *testing.T) {
	cases := map[string]bool{
		"plain.txt":  false,
		"*.txt":      true,
		"file?.txt":  true,
		"[abc].txt":  true,
		"unmatched[": false,
	}
	for in, want := range cases {
		if got := HasGlobChars(in); got != want {
			t.Errorf("HasGlobChars(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestMatchPrefixShortestVsLongest(t *testing.T) {
	if got := MatchPrefix("a*", "aaab", false); got != "a" {
		t.Errorf("MatchPrefix shortest = %q, want %q", got, "a")
	}
	if got := MatchPrefix("a*", "aaab", true); got != "aaab" {
		t.Errorf("MatchPrefix longest = %q, want %q", got, "aaab")
	}
}

func TestMatchSuffix(t *testing.T) {
	if got := MatchSuffix("*b", "aaab", false); got != "b" {
		t.Errorf("MatchSuffix shortest = %q, want %q", got, "b")
	}
	if got := MatchSuffix("*b", "aaab", true); got != "aaab" {
		t.Errorf("MatchSuffix longest = %q, want %q", got, "aaab")
	}
}

func TestMatchPrefixNoMatch(t *testing.T) {
	if got := MatchPrefix("z*", "aaab", true); got != "" {
		t.Errorf("MatchPrefix no-match = %q, want empty", got)
	}
}
