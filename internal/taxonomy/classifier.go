package taxonomy

import (
	"fmt"
	"sort"
	"strings"
)

// Classifier resolves works to output categories and records the works no
// rule could place beyond the catch-all.
type Classifier struct {
	composerOverrides map[string]Category
	unresolved        map[string]string
}

// NewClassifier builds a Classifier. composerOverrides maps composer
// identifiers to the category their untyped works default to; values are
// validated against the known category set.
func NewClassifier(composerOverrides map[string]string) (*Classifier, error) {
	overrides := make(map[string]Category, len(composerOverrides))
	for gid, name := range composerOverrides {
		category, err := ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("composer type override %s: %w", gid, err)
		}
		overrides[gid] = category
	}
	return &Classifier{
		composerOverrides: overrides,
		unresolved:        make(map[string]string),
	}, nil
}

// Classify resolves a work to its output category. Works that fall through
// every rule classify as Other and are remembered for the unresolved-types
// log.
func (c *Classifier) Classify(name, rawType, composerGID string) Category {
	category, _ := c.Explain(name, rawType, composerGID)
	return category
}

// Explain resolves a work and reports which layer decided, for diagnostics.
func (c *Classifier) Explain(name, rawType, composerGID string) (Category, string) {
	if override, ok := c.composerOverrides[composerGID]; ok && rawType == "Unknown" {
		return override, "composer override for untyped work"
	}
	if rawType == "Sonata" && strings.Contains(name, "Piano Sonata") {
		return Piano, `"Piano Sonata" name with generic Sonata type`
	}
	if mapped, ok := typeMapping[rawType]; ok && mapped != Other {
		return mapped, fmt.Sprintf("type mapping %q", rawType)
	}
	for i, r := range keywordRules {
		if !r.match.MatchString(name) {
			continue
		}
		if r.unless != nil && r.unless.MatchString(name) {
			continue
		}
		return r.category, fmt.Sprintf("name rule #%d (%s)", i+1, r.match.String())
	}

	c.unresolved[name] = fmt.Sprintf("'%s' (Original Type: %s)", name, rawType)
	return Other, "no rule matched"
}

// UnresolvedMessages returns the log messages for unresolved works whose
// names appear in finalNames, sorted. Restricting to the final output keeps
// the log free of noise from works filtered out anyway.
func (c *Classifier) UnresolvedMessages(finalNames map[string]struct{}) []string {
	messages := make([]string, 0, len(c.unresolved))
	for name, message := range c.unresolved {
		if _, ok := finalNames[name]; ok {
			messages = append(messages, message)
		}
	}
	sort.Strings(messages)
	return messages
}
