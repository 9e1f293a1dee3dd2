package text

import (
	"slices"
	"testing"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"spaces", "   ", nil},
		{"tabs and newlines", "\t\n ", nil},
		{"single Latin", "A", []string{"A"}},
		{"Latin run is one token", "abc", []string{"abc"}},
		{"nice names", "a.sc b.alt", []string{"a.sc", "b.alt"}},
		{"repeated CJK", "天天", []string{"天", "天"}},
		{"CJK sentence", "天地人", []string{"天", "地", "人"}},
		{"CJK then Latin", "天abc", []string{"天", "abc"}},
		{"Latin between CJK", "天abc地", []string{"天", "abc", "地"}},
		{"mixed with spaces", " 天 a  b 地 ", []string{"天", "a", "b", "地"}},
		{"kana and hangul", "あ가", []string{"あ", "가"}},
		{"ideographic space separates", "A　B", []string{"A", "B"}},
		{"ideographic full stop is its own token", "天。", []string{"天", "。"}},
		{"supplementary Han", "\U00020000x", []string{"\U00020000", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Segment(tt.in); !slices.Equal(got, tt.want) {
				t.Errorf("Segment(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	decomposed := "e\u0301"
	if got := Normalize(decomposed); got != "\u00e9" {
		t.Errorf("Normalize(%q) = %q, want %q", decomposed, got, "\u00e9")
	}
	if got := Normalize("天"); got != "天" {
		t.Errorf("Normalize changed %q to %q", "天", got)
	}
}

func TestIsBlank(t *testing.T) {
	for _, s := range []string{"", " ", "\t\n", "　"} {
		if !IsBlank(s) {
			t.Errorf("IsBlank(%q) = false", s)
		}
	}
	if IsBlank(" a ") {
		t.Error(`IsBlank(" a ") = true`)
	}
}
