package extract

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"finreport/pkg/core/fuzzy"
)

var headingPattern = regexp.MustCompile(`^<h\d>(.*)</h\d>$`)

// Locator finds financial statement sections in a normalized line sequence
// and carves out bounded context windows around them.
type Locator struct {
	cfg    Config
	logger *log.Logger
}

func NewLocator(cfg Config, logger *log.Logger) *Locator {
	if logger == nil {
		logger = log.Default()
	}
	return &Locator{cfg: cfg, logger: logger}
}

// cleanText normalizes a line for comparison: NBSP to space, runs of
// whitespace collapsed, lowercased.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Locate searches for the section heading and returns its validated context
// window, or nil when the section cannot be located or its surroundings do
// not look like the statement it claims to be. It never returns an error;
// a missing statement is an expected condition in scanned filings.
func (l *Locator) Locate(lines []string, section SectionType) *ContextWindow {
	keywords := l.cfg.Keywords[section]
	if len(keywords) == 0 || len(lines) == 0 {
		return nil
	}
	threshold := l.cfg.Threshold(section)

	if w := l.findHeading(lines, keywords, section); w != nil {
		return w
	}

	match := l.findByScore(lines, keywords, threshold)
	if match == nil {
		l.logger.Debug("section not located", "section", section)
		return nil
	}
	l.logger.Info("section located",
		"section", section, "line", match.Index, "score", match.Score)

	window := l.buildWindow(lines, match.Index)
	if !ValidateContext(window, section, l.cfg) {
		l.logger.Warn("context rejected by validator", "section", section)
		return nil
	}
	window = l.truncate(window, section)
	return &ContextWindow{Section: section, Text: window, Match: *match}
}

// findHeading is the structural pass: lines the normalizer marked as
// headings are compared against the keywords directly. A heading whose
// surroundings fail validation is skipped, since a table of contents can
// repeat the statement name far from the statement itself.
func (l *Locator) findHeading(lines []string, keywords []string, section SectionType) *ContextWindow {
	for i, line := range lines {
		m := headingPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		heading := cleanText(m[1])
		if heading == "" {
			continue
		}
		for _, kw := range keywords {
			ck := cleanText(kw)
			score := 1.0
			if heading != ck {
				if score = fuzzy.Ratio(heading, ck); score <= l.cfg.HeadingSimilarity {
					continue
				}
			}
			window := l.buildWindow(lines, i)
			if !ValidateContext(window, section, l.cfg) {
				l.logger.Warn("heading matched but context rejected",
					"section", section, "line", i)
				continue
			}
			l.logger.Info("section located via heading",
				"section", section, "line", i, "score", score)
			return &ContextWindow{
				Section: section,
				Text:    l.truncate(window, section),
				Match:   MatchResult{Index: i, Score: score, Line: line},
			}
		}
	}
	return nil
}

// findByScore is the fallback pass: every line is scored against every
// keyword and the best line above the threshold wins.
func (l *Locator) findByScore(lines []string, keywords []string, threshold float64) *MatchResult {
	best := MatchResult{Index: -1}
	for i, line := range lines {
		cl := cleanText(line)
		if cl == "" {
			continue
		}
		for _, kw := range keywords {
			score := l.scoreLine(cl, cleanText(kw))
			if score > best.Score {
				best = MatchResult{Index: i, Score: score, Line: line}
			}
		}
	}
	if best.Index < 0 || best.Score < threshold {
		return nil
	}
	return &best
}

// scoreLine computes the composite similarity of a cleaned line against a
// cleaned keyword. Three signals are combined by max: the keyword contained
// verbatim in the line (down-weighted so an exact heading still outranks
// it), the line's prefix of roughly keyword length, and the whole line.
// Lines barely longer than the keyword get a small boost, since statement
// headings rarely carry trailing prose.
func (l *Locator) scoreLine(line, keyword string) float64 {
	if keyword == "" {
		return 0
	}
	lineRunes := []rune(line)
	kwLen := len([]rune(keyword))

	score := 0.0
	if strings.Contains(line, keyword) {
		score = l.cfg.ContainedWeight
	}
	prefixLen := kwLen + l.cfg.PrefixSlack
	if prefixLen > len(lineRunes) {
		prefixLen = len(lineRunes)
	}
	if r := fuzzy.Ratio(string(lineRunes[:prefixLen]), keyword); r > l.cfg.PrefixGate && r > score {
		score = r
	}
	if r := fuzzy.Ratio(line, keyword); r > score {
		score = r
	}
	if len(lineRunes) < kwLen+l.cfg.ShortLineSlack {
		score *= l.cfg.ShortLineBoost
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// buildWindow joins the configured band of lines around a match.
func (l *Locator) buildWindow(lines []string, idx int) string {
	start := idx - l.cfg.ContextLinesBefore
	if start < 0 {
		start = 0
	}
	end := idx + l.cfg.ContextLinesAfter
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[start:end], "\n")
}

// truncate caps a window at MaxContextChars runes, keeping the head where
// the heading and the statement table live.
func (l *Locator) truncate(window string, section SectionType) string {
	runes := []rune(window)
	if len(runes) <= l.cfg.MaxContextChars {
		return window
	}
	l.logger.Warn("context truncated",
		"section", section, "runes", len(runes), "cap", l.cfg.MaxContextChars)
	return string(runes[:l.cfg.MaxContextChars])
}

// LeadingLines joins the first n lines of the document, capped at maxRunes.
// Company information and the management discussion live at the front of a
// filing, so no heading search is needed for them.
func (l *Locator) LeadingLines(lines []string, n, maxRunes int) string {
	if n > len(lines) {
		n = len(lines)
	}
	text := strings.TrimSpace(strings.Join(lines[:n], "\n"))
	runes := []rune(text)
	if len(runes) > maxRunes {
		text = string(runes[:maxRunes])
	}
	return text
}
