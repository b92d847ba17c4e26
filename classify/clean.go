package classify

import (
	"regexp"
	"strings"
)

var nonLetters = regexp.MustCompile(`[^a-zA-Z\s]`)

// stopwords is a compact English stopword set; enough for the classifier
// input, not a full NLP treatment.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true, "had": true,
	"has": true, "have": true, "he": true, "her": true, "his": true, "i": true,
	"in": true, "is": true, "it": true, "its": true, "of": true, "on": true,
	"or": true, "our": true, "she": true, "that": true, "the": true,
	"their": true, "them": true, "they": true, "this": true, "to": true,
	"was": true, "we": true, "were": true, "will": true, "with": true,
	"you": true, "your": true, "not": true, "no": true, "so": true, "do": true,
	"does": true, "did": true, "been": true, "being": true, "what": true,
	"when": true, "where": true, "which": true, "who": true, "how": true,
	"all": true, "can": true, "more": true, "most": true, "other": true,
	"some": true, "such": true, "than": true, "too": true, "very": true,
	"s": true, "t": true, "just": true, "now": true, "into": true, "out": true,
	"up": true, "down": true, "over": true, "under": true, "again": true,
	"about": true, "if": true, "because": true, "while": true, "during": true,
	"before": true, "after": true, "above": true, "below": true, "there": true,
	"here": true, "then": true, "once": true, "only": true, "own": true,
	"same": true, "any": true, "both": true, "each": true, "few": true,
	"these": true, "those": true, "am": true, "my": true, "me": true,
	"him": true, "us": true, "ours": true, "yours": true, "hers": true,
	"theirs": true, "itself": true, "himself": true, "herself": true,
	"myself": true, "yourself": true, "themselves": true, "ourselves": true,
}

// CleanText normalizes a message for classification: lowercase, letters only,
// stopwords removed, tokens reduced to a base form. Missing text cleans to
// the empty string.
func CleanText(text string) string {
	if text == "" || strings.EqualFold(text, "nan") {
		return ""
	}

	lowered := strings.ToLower(text)
	lowered = nonLetters.ReplaceAllString(lowered, "")

	var kept []string
	for _, token := range strings.Fields(lowered) {
		if stopwords[token] {
			continue
		}
		kept = append(kept, lemmatize(token))
	}
	return strings.Join(kept, " ")
}

// lemmatize applies a few plural-suffix rules. Crude next to a dictionary
// lemmatizer, but deterministic, which keeps classification reproducible.
func lemmatize(token string) string {
	switch {
	case len(token) > 4 && strings.HasSuffix(token, "ies"):
		return token[:len(token)-3] + "y"
	case len(token) > 4 && strings.HasSuffix(token, "sses"):
		return token[:len(token)-2]
	case len(token) > 3 && strings.HasSuffix(token, "s") &&
		!strings.HasSuffix(token, "ss") && !strings.HasSuffix(token, "us") &&
		!strings.HasSuffix(token, "is"):
		return token[:len(token)-1]
	}
	return token
}
