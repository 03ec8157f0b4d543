package extractor

import (
	"regexp"
	"strings"
	"unicode"
)

// MinTextLength is the minimum normalized length required for a
// document to be usable for quiz generation.
const MinTextLength = 100

// Word characters, whitespace and basic punctuation survive; everything
// else is stripped before the text reaches the prompt.
var disallowedChars = regexp.MustCompile(`[^\w\s.,;:!?()-]`)

// Normalize cleans raw extracted text into the canonical form used by
// the rest of the pipeline: disallowed characters are stripped, then
// whitespace runs collapse to a single space (or a single newline when
// the run spans lines). Stripping happens first so that the collapse
// pass sees the final character sequence, which makes Normalize
// idempotent.
func Normalize(text string) string {
	text = disallowedChars.ReplaceAllString(text, "")

	var builder strings.Builder
	builder.Grow(len(text))
	inRun := false
	runHasNewline := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			inRun = true
			if r == '\n' {
				runHasNewline = true
			}
			continue
		}
		if inRun {
			if runHasNewline {
				builder.WriteByte('\n')
			} else {
				builder.WriteByte(' ')
			}
			inRun = false
			runHasNewline = false
		}
		builder.WriteRune(r)
	}

	return strings.TrimSpace(builder.String())
}

// IsSufficient reports whether text carries enough content for quiz
// generation. It normalizes defensively, so callers may pass either raw
// or already-normalized text.
func IsSufficient(text string) bool {
	return len(Normalize(text)) >= MinTextLength
}
