package ahocorasick

import (
	"strings"

	"github.com/fwojciec/orgscout"
)

// Ensure Classifier implements orgscout.Classifier.
var _ orgscout.Classifier = (*Classifier)(nil)

// Classifier assigns categories from an ordered keyword table. Keywords are
// matched as lowercase substrings of the name and description; the rule
// with the lowest table index among all hits wins.
type Classifier struct {
	matcher    *matcher
	categories []orgscout.Category
	// keywordRule maps a keyword index to the lowest rule index using it.
	keywordRule []int
}

// NewClassifier builds the automaton for rules. Rule order is priority order.
func NewClassifier(rules []orgscout.CategoryRule) *Classifier {
	c := &Classifier{categories: make([]orgscout.Category, len(rules))}

	var keywords []string
	seen := make(map[string]int)
	for i, rule := range rules {
		c.categories[i] = rule.Category
		for _, kw := range rule.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			if _, ok := seen[kw]; ok {
				continue
			}
			seen[kw] = len(keywords)
			keywords = append(keywords, kw)
			c.keywordRule = append(c.keywordRule, i)
		}
	}
	c.matcher = newMatcher(keywords)
	return c
}

// NewDefaultClassifier returns a classifier over orgscout.DefaultCategoryRules.
func NewDefaultClassifier() *Classifier {
	return NewClassifier(orgscout.DefaultCategoryRules())
}

// Classify returns the category of the first rule, in table order, with any
// keyword present in name or description. Returns CategoryGeneral otherwise.
func (c *Classifier) Classify(name, description string) orgscout.Category {
	text := strings.ToLower(name + " " + description)

	best := len(c.categories)
	for _, hit := range c.matcher.match(text) {
		if hit < len(c.keywordRule) && c.keywordRule[hit] < best {
			best = c.keywordRule[hit]
		}
	}
	if best == len(c.categories) {
		return orgscout.CategoryGeneral
	}
	return c.categories[best]
}
