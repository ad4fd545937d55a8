// Package classify assigns monetary/non-monetary semantics to chart accounts
// using ordered pattern rules with hierarchical fallback. Rule data is plain
// configuration so it can be swapped per jurisdiction without a rebuild.
package classify

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
)

// Kind is the monetary nature of an account.
type Kind string

const (
	Monetary    Kind = "monetary"
	NonMonetary Kind = "non_monetary"
	Unknown     Kind = "unknown"
)

// Rule is one ordered pattern rule. Pattern is matched case-insensitively
// against "code name" (or code alone for code-fallback rules).
type Rule struct {
	Pattern string   `toml:"pattern"`
	Result  Kind     `toml:"result"`
	Tags    []string `toml:"tags"`
	Source  string   `toml:"source"`

	re *regexp.Regexp
}

// AssetClass maps a name keyword to a depreciation policy.
type AssetClass struct {
	Keyword    string          `toml:"keyword"`
	UsefulLife int             `toml:"useful_life_years"`
	AnnualRate decimal.Decimal `toml:"annual_rate"`
}

// ReservePolicy configures the legal reserve computation.
type ReservePolicy struct {
	Percent   decimal.Decimal `toml:"percent"`
	AppliesTo []string        `toml:"applies_to"`
}

// RuleSet is the full versioned rule configuration for one jurisdiction,
// loaded once per run and passed explicitly.
type RuleSet struct {
	Version      string        `toml:"version"`
	NonMonetary  []Rule        `toml:"non_monetary"`
	Monetary     []Rule        `toml:"monetary"`
	CodeFallback []Rule        `toml:"code_fallback"`
	AssetClasses []AssetClass  `toml:"asset_class"`
	Reserve      ReservePolicy `toml:"reserve"`
}

//go:embed rules.toml
var defaultRules []byte

// Default returns the embedded rule set. It panics only if the embedded
// configuration is itself broken, which the package tests pin down.
func Default() RuleSet {
	rs, err := Parse(defaultRules)
	if err != nil {
		panic(fmt.Sprintf("classify: embedded rule set invalid: %v", err))
	}
	return rs
}

// Load reads and compiles a rule set from a TOML file.
func Load(path string) (RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RuleSet{}, fmt.Errorf("read rule set: %w", err)
	}
	return Parse(data)
}

// Parse decodes a TOML rule set and compiles every pattern.
func Parse(data []byte) (RuleSet, error) {
	var rs RuleSet
	if err := toml.Unmarshal(data, &rs); err != nil {
		return RuleSet{}, fmt.Errorf("decode rule set: %w", err)
	}
	for _, rules := range [][]Rule{rs.NonMonetary, rs.Monetary, rs.CodeFallback} {
		for i := range rules {
			re, err := regexp.Compile("(?i)" + rules[i].Pattern)
			if err != nil {
				return RuleSet{}, fmt.Errorf("compile pattern %q: %w", rules[i].Pattern, err)
			}
			rules[i].re = re
		}
	}
	return rs, nil
}

// DefaultAssetClass is applied to depreciable assets no class keyword matches.
var DefaultAssetClass = AssetClass{
	Keyword:    "",
	UsefulLife: 10,
	AnnualRate: decimal.New(1, -1),
}

// ClassFor finds the depreciation policy for an asset account name.
func (rs RuleSet) ClassFor(name string) AssetClass {
	lower := strings.ToLower(name)
	for _, ac := range rs.AssetClasses {
		if ac.Keyword != "" && strings.Contains(lower, strings.ToLower(ac.Keyword)) {
			return ac
		}
	}
	return DefaultAssetClass
}
