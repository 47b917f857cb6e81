// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch

// Package quality scores a generated summary against its source text.
// The thresholds and keyword list are a heuristic placeholder policy,
// not derived from labeled data; they are kept centralized here so a
// recalibration touches one file.
package quality

import (
	"fmt"
	"strings"
)

// Rating is the overall assessment bucket for a score.
type Rating string

const (
	RatingExcellent        Rating = "Excellent"
	RatingGood             Rating = "Good"
	RatingFair             Rating = "Fair"
	RatingNeedsImprovement Rating = "Needs Improvement"
	RatingError            Rating = "Error"
)

// Metrics is the result of one evaluation. Computed fresh per
// (original, summary) pair and never mutated afterwards.
type Metrics struct {
	QualityScore     int      `json:"quality_score"`
	OverallRating    Rating   `json:"overall_rating"`
	CompressionRatio float64  `json:"compression_ratio"`
	OriginalLength   int      `json:"original_length"`
	SummaryLength    int      `json:"summary_length"`
	Feedback         []string `json:"feedback"`
	Suggestions      []string `json:"suggestions"`
	Err              string   `json:"error,omitempty"`
}

// Scoring policy. Points accumulate additively; no step exceeds its cap.
const (
	minCompression = 0.05
	maxCompression = 0.4

	compressionPoints = 25
	keywordPoints     = 20
	structurePoints   = 15
	lengthPoints      = 20
	sentencePoints    = 20

	goodLength  = 50
	shortLength = 20

	excellentThreshold = 80
	goodThreshold      = 60
	fairThreshold      = 40
)

var keyIndicators = []string{
	"conclusion", "summary", "therefore", "thus", "overall", "key", "important", "main",
}

// Evaluate computes heuristic quality metrics for a summary. Any
// internal fault degrades to a zero-score Metrics with an Err field
// instead of propagating.
func Evaluate(original, summary string) (m Metrics) {
	defer func() {
		if r := recover(); r != nil {
			m = Metrics{
				QualityScore:  0,
				OverallRating: RatingError,
				Err:           fmt.Sprintf("error evaluating summary: %v", r),
			}
		}
	}()

	originalWords := len(strings.Fields(original))
	summaryWords := len(strings.Fields(summary))

	ratio := 0.0
	if originalWords > 0 {
		ratio = float64(summaryWords) / float64(originalWords)
	}

	score := 0
	var feedback []string

	if ratio >= minCompression && ratio <= maxCompression {
		score += compressionPoints
		feedback = append(feedback, "✅ Good compression ratio")
	} else if ratio < minCompression {
		feedback = append(feedback, "⚠️ Summary might be too brief")
	} else {
		feedback = append(feedback, "⚠️ Summary might be too verbose")
	}

	lower := strings.ToLower(summary)
	for _, indicator := range keyIndicators {
		if strings.Contains(lower, indicator) {
			score += keywordPoints
			feedback = append(feedback, "✅ Contains key content indicators")
			break
		}
	}

	if strings.ContainsAny(summary, "•-\n") {
		score += structurePoints
		feedback = append(feedback, "✅ Well-structured format")
	}

	if summaryWords >= goodLength {
		score += lengthPoints
		feedback = append(feedback, "✅ Appropriate summary length")
	} else if summaryWords < shortLength {
		feedback = append(feedback, "⚠️ Summary might be too short")
	}

	if len(strings.Split(summary, ".")) >= 2 {
		score += sentencePoints
		feedback = append(feedback, "✅ Contains complete thoughts")
	}

	return Metrics{
		QualityScore:     score,
		OverallRating:    ratingFor(score),
		CompressionRatio: ratio,
		OriginalLength:   originalWords,
		SummaryLength:    summaryWords,
		Feedback:         feedback,
		Suggestions:      suggestions(score, ratio),
	}
}

func ratingFor(score int) Rating {
	switch {
	case score >= excellentThreshold:
		return RatingExcellent
	case score >= goodThreshold:
		return RatingGood
	case score >= fairThreshold:
		return RatingFair
	default:
		return RatingNeedsImprovement
	}
}

func suggestions(score int, ratio float64) []string {
	var out []string

	if score < goodThreshold {
		out = append(out, "Consider regenerating with a different style")
		out = append(out, "Check if the document text is properly extracted")
	}
	if ratio < minCompression {
		out = append(out, "Try 'Detailed' style for more comprehensive summary")
	}
	if ratio > maxCompression {
		out = append(out, "Try 'Abstract' style for more concise summary")
	}
	if score < fairThreshold {
		out = append(out, "Verify document format is supported")
		out = append(out, "Ensure document contains readable text content")
	}

	return out
}
