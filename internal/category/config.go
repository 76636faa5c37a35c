package category

// RuleEntry maps a rule-code prefix to a category. Entries are evaluated in
// table order; the first matching prefix wins.
type RuleEntry struct {
	Prefix   string
	Category Category
}

// KeywordSet holds the fallback keywords for one category. Sets are evaluated
// in list order; the first set with a hit wins.
type KeywordSet struct {
	Category Category
	Words    []string
	Phrases  []string
}

// Config assembles a classifier and filter policy. It is produced by the
// rules package from YAML configuration or its built-in defaults.
type Config struct {
	Rules           []RuleEntry
	Keywords        []KeywordSet
	DefaultCategory Category
	FilterPolicy    FilterPolicy
}
