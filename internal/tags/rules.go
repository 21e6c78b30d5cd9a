package tags

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"kibuuka/momo-csv/internal/models"
)

// Rule maps counterparty keywords to a tag. Matching is case-insensitive
// substring containment against the transaction's counterparty name.
type Rule struct {
	Tag      Tag      `yaml:"tag"`
	Keywords []string `yaml:"keywords"`
}

// RuleSet is an ordered list of rules; the first matching rule wins.
type RuleSet struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules reads a rule set from a YAML file.
func LoadRules(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading tag rules %s: %w", path, err)
	}

	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("error parsing tag rules %s: %w", path, err)
	}
	return &rs, nil
}

// Match returns the tag for a counterparty name, if any rule applies.
func (rs *RuleSet) Match(name string) (Tag, bool) {
	upper := strings.ToUpper(name)
	for _, rule := range rs.Rules {
		for _, keyword := range rule.Keywords {
			if keyword != "" && strings.Contains(upper, strings.ToUpper(keyword)) {
				return rule.Tag, true
			}
		}
	}
	return "", false
}

// Apply fills a table with the tags the rule set assigns to each
// transaction's counterparty. Existing entries are not overwritten, so
// manual tagging wins over keyword rules.
func (rs *RuleSet) Apply(table *Table, transactions []models.Transaction) int {
	applied := 0
	for _, tx := range transactions {
		if _, exists := table.Get(tx.ID); exists {
			continue
		}
		if tag, ok := rs.Match(tx.Counterparty()); ok {
			table.Set(tx.ID, tag)
			applied++
		}
	}
	return applied
}
