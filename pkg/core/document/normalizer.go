// Package document turns OCR-derived HTML into an ordered sequence of text
// lines suitable for line-oriented section search. OCR conversions of Czech
// financial statements produce wildly inconsistent markup, so the walk is
// deliberately permissive and always yields some output.
package document

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"
)

// DefaultMinStructuralLines is the threshold below which the structural walk
// is considered to have failed and the flattened fallback kicks in.
const DefaultMinStructuralLines = 10

// Normalizer converts raw HTML into cleaned, non-empty text lines.
type Normalizer struct {
	// MinStructuralLines triggers the whole-document fallback when the
	// structural walk yields fewer lines than this.
	MinStructuralLines int
	logger             *log.Logger
}

func NewNormalizer(logger *log.Logger) *Normalizer {
	if logger == nil {
		logger = log.Default()
	}
	return &Normalizer{
		MinStructuralLines: DefaultMinStructuralLines,
		logger:             logger,
	}
}

// Normalize parses htmlContent and returns its visible text as ordered lines.
// Heading text keeps an <hN>…</hN> wrapper so downstream search can treat
// real document headings as a stronger signal than body text. Never fails:
// markup too broken for a structural walk degrades to whitespace-collapsed
// full-document text.
func (n *Normalizer) Normalize(htmlContent string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		n.logger.Warn("HTML parse failed, splitting raw input", "err", err)
		return splitLines(htmlContent)
	}

	doc.Find("script, style").Remove()

	var lines []string
	doc.Find("h1, h2, h3, h4, p, table, div, span").Each(func(i int, sel *goquery.Selection) {
		text := collapseWhitespace(sel.Text())
		if text == "" {
			return
		}
		name := goquery.NodeName(sel)
		if strings.HasPrefix(name, "h") && len(name) == 2 {
			text = fmt.Sprintf("<%s>%s</%s>", name, text, name)
		}
		lines = append(lines, text)
	})

	min := n.MinStructuralLines
	if min <= 0 {
		min = DefaultMinStructuralLines
	}
	if len(lines) < min {
		n.logger.Warn("structural walk yielded few lines, falling back to flattened text", "lines", len(lines))
		if flat := splitLines(doc.Text()); len(flat) > len(lines) {
			return flat
		}
	}
	return lines
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
