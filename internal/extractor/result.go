// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package extractor

// Kind distinguishes the three extraction outcomes.
type Kind int

const (
	// KindSuccess means Text holds usable plain text.
	KindSuccess Kind = iota
	// KindWarning means the format was valid but yielded no usable text.
	KindWarning
	// KindError means extraction failed; Reason identifies the failure class.
	KindError
)

// Reason classifies extraction errors so callers can act without
// inspecting message strings.
type Reason int

const (
	ReasonNone Reason = iota
	// ReasonUnsupportedFormat - extension not in the recognized set.
	ReasonUnsupportedFormat
	// ReasonMissingDependency - a parsing backend is unavailable.
	ReasonMissingDependency
	// ReasonExtractionFailure - the parser failed on malformed input.
	ReasonExtractionFailure
)

func (r Reason) String() string {
	switch r {
	case ReasonUnsupportedFormat:
		return "unsupported_format"
	case ReasonMissingDependency:
		return "missing_dependency"
	case ReasonExtractionFailure:
		return "extraction_failure"
	default:
		return "none"
	}
}

// Result is the outcome of one extraction call. Exactly one of Text and
// Message is populated: Text for success, Message for warning and error.
type Result struct {
	Kind    Kind
	Text    string
	Message string
	Reason  Reason
}

func success(text string) Result {
	return Result{Kind: KindSuccess, Text: text}
}

func warning(msg string) Result {
	return Result{Kind: KindWarning, Message: msg}
}

func failure(reason Reason, msg string) Result {
	return Result{Kind: KindError, Message: msg, Reason: reason}
}

// OK reports whether the result carries usable text.
func (r Result) OK() bool {
	return r.Kind == KindSuccess
}
