package utils

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestContainsProfanity(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"", false},
		{"a perfectly fine sentence", false},
		{"this is shit", true},
		{"ThIs Is ShIt", true},
		{"SHIT", true},
		{"bullshittery", true}, // embedded match is intentional
		{"the class was shifted", false},
		{"sh it", false},
	}
	for _, tc := range cases {
		if got := ContainsProfanity(tc.text); got != tc.want {
			t.Errorf("ContainsProfanity(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestCleanText_MasksWithEqualLength(t *testing.T) {
	got := CleanText("what the Fuck is this")
	want := "what the **** is this"
	if got != want {
		t.Errorf("CleanText = %q, want %q", got, want)
	}
}

func TestCleanText_PreservesCasingOutsideMatches(t *testing.T) {
	got := CleanText("Total SHIT Show")
	if !strings.HasPrefix(got, "Total ") || !strings.HasSuffix(got, " Show") {
		t.Errorf("surrounding text altered: %q", got)
	}
	if strings.Contains(strings.ToLower(got), "shit") {
		t.Errorf("match not masked: %q", got)
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	dirty := "shit happens, and MORE shit happens"
	once := CleanText(dirty)
	twice := CleanText(once)
	if once != twice {
		t.Errorf("CleanText not idempotent: %q vs %q", once, twice)
	}
	if ContainsProfanity(once) {
		t.Errorf("masked text still flags: %q", once)
	}
}

func TestCleanText_MultibyteRunesKeepOffsetsAligned(t *testing.T) {
	// Ⱥ (U+023A) grows and İ (U+0130) shrinks under Unicode lowering, which
	// would shift every match offset after them. Folding must stay
	// byte-for-byte so the mask lands on the word, not beside it.
	cases := []struct {
		text string
		want string
	}{
		{"ȺȺȺȺfuck", "ȺȺȺȺ****"},
		{"İfuck", "İ****"},
		{"naïve shit ünd SHIT", "naïve **** ünd ****"},
	}
	for _, tc := range cases {
		got := CleanText(tc.text)
		if got != tc.want {
			t.Errorf("CleanText(%q) = %q, want %q", tc.text, got, tc.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("CleanText(%q) produced invalid UTF-8: %q", tc.text, got)
		}
		if ContainsProfanity(got) {
			t.Errorf("masked text still flags: %q", got)
		}
	}
}

func TestCleanText_EmptyInput(t *testing.T) {
	if got := CleanText(""); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}
