package rules

import (
	"fmt"
	"strings"

	"fsquiz/internal/category"
)

// Build validates a rules file and compiles it into classifier configuration.
func (f File) Build() (category.Config, error) {
	var problems []string
	fail := func(field, message string) {
		problems = append(problems, fmt.Sprintf("%s: %s", field, message))
	}

	if f.Version == 0 {
		fail("version", "is required")
	} else if f.Version != 1 {
		fail("version", fmt.Sprintf("unsupported version %d", f.Version))
	}

	cfg := category.Config{FilterPolicy: category.FilterWildcard}
	switch strings.ToLower(strings.TrimSpace(f.FilterPolicy)) {
	case "", string(category.FilterWildcard):
	case string(category.FilterStrict):
		cfg.FilterPolicy = category.FilterStrict
	default:
		fail("filter_policy", fmt.Sprintf("must be wildcard or strict, got %q", f.FilterPolicy))
	}

	if strings.TrimSpace(f.DefaultCategory) != "" {
		cat, err := category.Parse(f.DefaultCategory)
		if err != nil {
			fail("default_category", err.Error())
		} else {
			cfg.DefaultCategory = cat
		}
	}

	if len(f.Rules) == 0 {
		fail("rules", "must include at least one entry")
	}
	for i, entry := range f.Rules {
		prefix := strings.ToUpper(strings.TrimSpace(entry.Prefix))
		if prefix == "" {
			fail(fmt.Sprintf("rules[%d].prefix", i), "is required")
			continue
		}
		cat, err := category.Parse(entry.Category)
		if err != nil {
			fail(fmt.Sprintf("rules[%d].category", i), err.Error())
			continue
		}
		cfg.Rules = append(cfg.Rules, category.RuleEntry{Prefix: prefix, Category: cat})
	}

	seen := map[category.Category]struct{}{}
	for i, set := range f.Keywords {
		cat, err := category.Parse(set.Category)
		if err != nil {
			fail(fmt.Sprintf("keywords[%d].category", i), err.Error())
			continue
		}
		if _, dup := seen[cat]; dup {
			fail(fmt.Sprintf("keywords[%d].category", i), fmt.Sprintf("duplicate keyword set for %q", set.Category))
			continue
		}
		seen[cat] = struct{}{}
		if len(set.Words) == 0 && len(set.Phrases) == 0 {
			fail(fmt.Sprintf("keywords[%d]", i), "must list words or phrases")
			continue
		}
		cfg.Keywords = append(cfg.Keywords, category.KeywordSet{
			Category: cat,
			Words:    set.Words,
			Phrases:  set.Phrases,
		})
	}

	if len(problems) > 0 {
		return category.Config{}, fmt.Errorf("rules validation failed: %s", strings.Join(problems, "; "))
	}
	return cfg, nil
}
