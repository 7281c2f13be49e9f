package conversation

import (
	"fmt"
	"strings"

	"github.com/adalundhe/weft/core/dialog"
)

// SummaryGenerator renders a short plain-text digest of a context
// selection for inclusion in a downstream generation prompt.
type SummaryGenerator struct {
	textLimit int
}

// NewSummaryGenerator creates a generator whose excerpts are capped at
// cfg.SummaryTextLimit characters.
func NewSummaryGenerator(cfg Config) *SummaryGenerator {
	cfg = cfg.withDefaults()
	return &SummaryGenerator{textLimit: cfg.SummaryTextLimit}
}

// Summarize describes the primary record and the size of the related
// set. An empty primary yields the empty string. Recognized text from
// image and voice turns is preferred over raw content.
func (g *SummaryGenerator) Summarize(primary, related []*dialog.ContextRecord) string {
	if len(primary) == 0 {
		return ""
	}

	record := primary[0]
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Previous %s context: %q", record.Modality, truncate(record.DisplayText(), g.textLimit)))

	if len(related) > 1 {
		sb.WriteString(fmt.Sprintf(" (+%d more related)", len(related)-1))
	}
	return sb.String()
}

func truncate(content string, maxLen int) string {
	if len(content) <= maxLen {
		return content
	}
	return content[:maxLen] + "..."
}
