package relatedness

import (
	"regexp"
	"strings"

	"github.com/adalundhe/weft/core/dialog"
)

// PriorCondition tests the prior turn a continuation prefix must pair
// with for the rule to fire.
type PriorCondition func(priorContent string, priorModality dialog.Modality) bool

// ContinuationRule pairs a prefix pattern on the new input with a
// condition on the prior turn. Rules are evaluated in order.
type ContinuationRule struct {
	Name   string
	Prefix *regexp.Regexp
	Prior  PriorCondition
}

// Matches reports whether the rule fires for the new input against the
// prior turn.
func (r ContinuationRule) Matches(newContent, priorContent string, priorModality dialog.Modality) bool {
	return r.Prefix.MatchString(newContent) && r.Prior(priorContent, priorModality)
}

// PriorEndsWith matches prior content ending with the given suffix
// after trimming trailing whitespace.
func PriorEndsWith(suffix string) PriorCondition {
	return func(priorContent string, _ dialog.Modality) bool {
		return strings.HasSuffix(strings.TrimRight(priorContent, " \t\n"), suffix)
	}
}

// PriorModality matches any of the given prior modalities.
func PriorModality(modalities ...dialog.Modality) PriorCondition {
	return func(_ string, priorModality dialog.Modality) bool {
		for _, m := range modalities {
			if priorModality == m {
				return true
			}
		}
		return false
	}
}

// PriorContainsAny matches prior content containing any of the given
// words, case-insensitively.
func PriorContainsAny(words ...string) PriorCondition {
	patterns := compileKeywordPatterns(words)
	return func(priorContent string, _ dialog.Modality) bool {
		return matchesAny(priorContent, patterns)
	}
}

// PriorAny matches every prior turn.
func PriorAny() PriorCondition {
	return func(string, dialog.Modality) bool { return true }
}

func prefixPattern(prefixes ...string) *regexp.Regexp {
	escaped := make([]string, len(prefixes))
	for i, p := range prefixes {
		escaped[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(`(?i)^\s*(` + strings.Join(escaped, "|") + `)\b`)
}

// DefaultContinuationRules returns the built-in follow-up phrasing
// table. A new input continuing a prior turn is related to it even
// with no lexical or topical overlap.
func DefaultContinuationRules() []ContinuationRule {
	return []ContinuationRule{
		{
			Name:   "conjunction_after_question",
			Prefix: prefixPattern("and", "also", "then"),
			Prior:  PriorEndsWith("?"),
		},
		{
			Name:   "what_about_prior_question",
			Prefix: prefixPattern("what about", "how about"),
			Prior:  PriorAny(),
		},
		{
			Name:   "request_after_capture",
			Prefix: prefixPattern("can you", "could you", "please"),
			Prior:  PriorModality(dialog.ModalityImage, dialog.ModalityVoice),
		},
		{
			Name:   "explicit_continuation",
			Prefix: prefixPattern("continuing from", "as i said", "as mentioned"),
			Prior:  PriorAny(),
		},
		{
			Name:   "next_step_after_task",
			Prefix: prefixPattern("next step", "next", "now"),
			Prior:  PriorContainsAny("solve", "calculate", "compute", "find", "simplify"),
		},
	}
}
