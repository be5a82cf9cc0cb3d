package services

import (
	"strings"
	"testing"

	"github.com/attachlab/ecr/internal/catalog"
)

func TestSummaryForLocales(t *testing.T) {
	res := &Result{Anxious: 3.0, Avoidant: 3.0, Style: StyleSecure}
	en := SummaryFor(res, "en")
	if en.Title != "Secure attachment" || en.Icon != "shield-check" {
		t.Fatalf("en summary %+v", en)
	}
	zh := SummaryFor(res, "zh")
	if zh.Title != "安全型依恋" {
		t.Fatalf("zh summary %+v", zh)
	}
	// Unknown locales fall back to English.
	fr := SummaryFor(res, "fr")
	if fr.Title != en.Title {
		t.Fatalf("fallback summary %+v", fr)
	}
}

func TestSummaryHighScoreAddenda(t *testing.T) {
	res := &Result{Anxious: 5.5, Avoidant: 5.5, Style: StyleDisorganized}
	s := SummaryFor(res, "en")
	if !strings.Contains(s.Recommendation, "emotion-regulation") {
		t.Fatalf("missing anxious addendum: %q", s.Recommendation)
	}
	if !strings.Contains(s.Recommendation, "emotional connections") {
		t.Fatalf("missing avoidant addendum: %q", s.Recommendation)
	}

	low := &Result{Anxious: 4.2, Avoidant: 4.2, Style: StyleDisorganized}
	if got := SummaryFor(low, "en"); strings.Contains(got.Recommendation, "emotion-regulation") {
		t.Fatalf("addendum applied below 5.0: %q", got.Recommendation)
	}
}

func TestExplainDimensionLevels(t *testing.T) {
	cases := []struct {
		score float64
		level string
	}{
		{1.0, "low"},
		{2.9, "low"},
		{3.0, "medium"},
		{5.0, "medium"},
		{5.1, "high"},
		{7.0, "high"},
	}
	for _, c := range cases {
		got := ExplainDimension(catalog.Anxiety, c.score, "en")
		if got.Level != c.level {
			t.Fatalf("ExplainDimension(%.1f).Level=%s, want %s", c.score, got.Level, c.level)
		}
		if got.Explanation == "" || got.Interpretation == "" {
			t.Fatalf("empty texts for %.1f: %+v", c.score, got)
		}
	}
}

func TestInterpretationTextCoverage(t *testing.T) {
	for _, dim := range []catalog.Dimension{catalog.Anxiety, catalog.Avoidance} {
		for _, interp := range []Interpretation{InterpVeryLow, InterpLow, InterpMedium, InterpHigh, InterpVeryHigh} {
			for _, locale := range []string{"en", "zh"} {
				if InterpretationText(dim, interp, locale) == "" {
					t.Fatalf("missing text for %s/%s/%s", dim, interp, locale)
				}
			}
		}
	}
}
