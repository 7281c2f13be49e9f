package relatedness

import (
	"regexp"
	"strings"
)

// Topic labels a subject area used for co-membership checks.
type Topic string

const (
	TopicMathematics Topic = "mathematics"
	TopicScience     Topic = "science"
	TopicLanguage    Topic = "language"
	TopicHistory     Topic = "history"
	TopicGeography   Topic = "geography"
	TopicProgramming Topic = "programming"
)

// DefaultTopicKeywords returns the built-in topic keyword table. Two
// contents are topically related when each contains at least one
// keyword from the same topic's set.
func DefaultTopicKeywords() map[Topic][]string {
	return map[Topic][]string{
		TopicMathematics: mathematicsKeywords(),
		TopicScience:     scienceKeywords(),
		TopicLanguage:    languageKeywords(),
		TopicHistory:     historyKeywords(),
		TopicGeography:   geographyKeywords(),
		TopicProgramming: programmingKeywords(),
	}
}

func mathematicsKeywords() []string {
	return []string{
		"equation", "solve", "calculate", "algebra", "geometry",
		"theorem", "fraction", "integral",
	}
}

func scienceKeywords() []string {
	return []string{
		"photosynthesis", "molecule", "physics", "chemistry", "biology",
		"experiment", "newton", "respiration",
	}
}

func languageKeywords() []string {
	return []string{
		"grammar", "verb", "noun", "sentence", "translate",
		"vocabulary", "pronunciation",
	}
}

func historyKeywords() []string {
	return []string{
		"revolution", "empire", "war", "historical", "century",
		"dynasty", "civilization",
	}
}

func geographyKeywords() []string {
	return []string{
		"country", "capital", "continent", "river", "mountain",
		"climate", "ocean",
	}
}

func programmingKeywords() []string {
	return []string{
		"code", "function", "compile", "debug", "algorithm",
		"variable", "syntax",
	}
}

// TopicIndex holds the keyword table compiled to word-boundary
// patterns for matching against arbitrary content.
type TopicIndex struct {
	patterns map[Topic][]*regexp.Regexp
}

// NewTopicIndex compiles a keyword table into an index.
func NewTopicIndex(keywords map[Topic][]string) *TopicIndex {
	idx := &TopicIndex{patterns: make(map[Topic][]*regexp.Regexp, len(keywords))}
	for topic, words := range keywords {
		idx.patterns[topic] = compileKeywordPatterns(words)
	}
	return idx
}

func compileKeywordPatterns(keywords []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(keywords))
	for _, kw := range keywords {
		escaped := regexp.QuoteMeta(strings.ToLower(kw))
		re, err := regexp.Compile(`(?i)\b` + escaped + `\b`)
		if err == nil {
			patterns = append(patterns, re)
		}
	}
	return patterns
}

// Topics returns every topic whose keyword set matches the content.
func (idx *TopicIndex) Topics(content string) []Topic {
	if content == "" {
		return nil
	}

	var matched []Topic
	for topic, patterns := range idx.patterns {
		if matchesAny(content, patterns) {
			matched = append(matched, topic)
		}
	}
	return matched
}

// ShareTopic reports whether both contents contain a keyword from the
// same topic's set.
func (idx *TopicIndex) ShareTopic(a, b string) bool {
	if a == "" || b == "" {
		return false
	}

	for _, patterns := range idx.patterns {
		if matchesAny(a, patterns) && matchesAny(b, patterns) {
			return true
		}
	}
	return false
}

func matchesAny(content string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(content) {
			return true
		}
	}
	return false
}
