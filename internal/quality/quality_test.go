package quality

import (
	"strings"
	"testing"
)

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func hasFeedback(m Metrics, substr string) bool {
	for _, f := range m.Feedback {
		if strings.Contains(f, substr) {
			return true
		}
	}
	return false
}

func hasSuggestion(m Metrics, substr string) bool {
	for _, s := range m.Suggestions {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func TestEvaluateCompressionBonus(t *testing.T) {
	// 20 summary words over 100 original words: ratio 0.2, inside the
	// [0.05, 0.4] window. No keywords, no structure, no periods, and
	// between 20 and 49 words, so the compression bonus is the only
	// score contribution.
	m := Evaluate(words(100), words(20))

	if m.CompressionRatio != 0.2 {
		t.Errorf("CompressionRatio = %v, want 0.2", m.CompressionRatio)
	}
	if m.QualityScore != 25 {
		t.Errorf("QualityScore = %d, want 25", m.QualityScore)
	}
	if !hasFeedback(m, "Good compression ratio") {
		t.Errorf("missing compression feedback, got %v", m.Feedback)
	}
}

func TestEvaluateTooBrief(t *testing.T) {
	m := Evaluate(words(100), "Too short")

	if m.CompressionRatio != 0.02 {
		t.Errorf("CompressionRatio = %v, want 0.02", m.CompressionRatio)
	}
	if !hasFeedback(m, "too brief") {
		t.Errorf("missing too-brief feedback, got %v", m.Feedback)
	}
	if !hasFeedback(m, "too short") {
		t.Errorf("missing too-short feedback, got %v", m.Feedback)
	}
	if !hasSuggestion(m, "'Detailed' style") {
		t.Errorf("missing detailed-style suggestion, got %v", m.Suggestions)
	}
}

func TestEvaluateTooVerbose(t *testing.T) {
	m := Evaluate(words(100), words(60))

	if !hasFeedback(m, "too verbose") {
		t.Errorf("missing too-verbose feedback, got %v", m.Feedback)
	}
	if !hasSuggestion(m, "'Abstract' style") {
		t.Errorf("missing abstract-style suggestion, got %v", m.Suggestions)
	}
}

func TestEvaluateFullScore(t *testing.T) {
	original := words(400)
	// 60+ words, within the ratio window, keyword present, bullet
	// structure, and sentence punctuation: every bonus applies.
	summary := "Overall, the document makes three points.\n- " + words(55) + "."

	m := Evaluate(original, summary)

	if m.QualityScore != 100 {
		t.Errorf("QualityScore = %d, want 100", m.QualityScore)
	}
	if m.OverallRating != RatingExcellent {
		t.Errorf("OverallRating = %q, want %q", m.OverallRating, RatingExcellent)
	}
	if len(m.Suggestions) != 0 {
		t.Errorf("expected no suggestions for a full score, got %v", m.Suggestions)
	}
}

func TestEvaluateRatings(t *testing.T) {
	// Keyword + structure + sentences + length, ratio out of window:
	// 20+15+20+20 = 75 → Good.
	good := Evaluate(words(100), "In summary, the main points follow.\n- "+words(50)+".")
	if good.QualityScore != 75 {
		t.Errorf("QualityScore = %d, want 75", good.QualityScore)
	}
	if good.OverallRating != RatingGood {
		t.Errorf("OverallRating = %q, want %q", good.OverallRating, RatingGood)
	}

	// Keyword + sentences, nothing else: 20+20 = 40 → Fair.
	fair := Evaluate(words(1000), "The key finding is stated here today. "+words(14))
	if fair.QualityScore != 40 {
		t.Errorf("QualityScore = %d, want 40", fair.QualityScore)
	}
	if fair.OverallRating != RatingFair {
		t.Errorf("OverallRating = %q, want %q", fair.OverallRating, RatingFair)
	}

	// Nothing matches: 0 → Needs Improvement.
	poor := Evaluate(words(1000), words(5))
	if poor.QualityScore != 0 {
		t.Errorf("QualityScore = %d, want 0", poor.QualityScore)
	}
	if poor.OverallRating != RatingNeedsImprovement {
		t.Errorf("OverallRating = %q, want %q", poor.OverallRating, RatingNeedsImprovement)
	}
}

func TestEvaluateScoreBounds(t *testing.T) {
	inputs := []struct{ original, summary string }{
		{"", ""},
		{"", words(30)},
		{words(500), ""},
		{words(10), words(10)},
		{words(300), "• Bullet one.\n• Bullet two.\nConclusion: therefore, overall important."},
	}

	for _, in := range inputs {
		m := Evaluate(in.original, in.summary)
		if m.QualityScore < 0 || m.QualityScore > 100 {
			t.Errorf("score %d out of [0,100] for summary %q", m.QualityScore, in.summary)
		}
		if m.OverallRating == RatingError {
			t.Errorf("unexpected error rating for summary %q: %s", in.summary, m.Err)
		}
	}
}

func TestEvaluateEmptyOriginal(t *testing.T) {
	m := Evaluate("", words(30))
	if m.CompressionRatio != 0 {
		t.Errorf("CompressionRatio = %v, want 0 for empty original", m.CompressionRatio)
	}
}
