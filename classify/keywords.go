package classify

import (
	"strings"

	"echo-analytics/models"
)

// MatchKeyword scans the rules in order and returns the label for the first
// keyword contained in the text. Keywords are compared lowercase with any
// leading # stripped. Records that match skip the model entirely.
func MatchKeyword(text string, rules []models.KeywordRule) (LabelTriple, bool) {
	lower := strings.ToLower(text)
	for _, rule := range rules {
		keyword := strings.ReplaceAll(strings.ToLower(rule.Keyword), "#", "")
		if keyword == "" {
			continue
		}
		if strings.Contains(lower, keyword) {
			return LabelTriple{Theme: rule.Theme, Subtheme: rule.SubTheme}, true
		}
	}
	return LabelTriple{}, false
}
