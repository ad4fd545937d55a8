package classify

import (
	"fmt"
	"strings"

	"github.com/quipuapp/quipu/internal/chart"
	"github.com/quipuapp/quipu/internal/domain"
)

// maxParentDepth bounds hierarchical fallback so malformed or cyclic parent
// chains cannot loop the classifier.
const maxParentDepth = 5

const (
	confidenceDirect   = 0.9
	confidenceAncestor = 0.85
	confidenceFallback = 0.6
	confidenceDefault  = 0.3
)

// Result is a terminal classification. Type is never absent: Unknown is a
// legal outcome that simply excludes the account from revaluation and
// waterfall bucketing.
type Result struct {
	Type           Kind
	Tags           []string
	Source         string
	MatchedPattern string
	Confidence     float64
}

// Classify resolves the monetary nature of one account. Layered evaluation,
// first match wins: non-monetary rules, monetary rules, the parent account's
// classification, code-only fallback rules, then a coarse leading-digit
// default.
func Classify(code, name string, rs RuleSet, profile chart.Profile, accounts map[string]*domain.Account) Result {
	return classify(code, name, rs, profile, accounts, 0)
}

func classify(code, name string, rs RuleSet, profile chart.Profile, accounts map[string]*domain.Account, depth int) Result {
	subject := code + " " + name

	for _, rules := range [][]Rule{rs.NonMonetary, rs.Monetary} {
		for _, r := range rules {
			if r.re != nil && r.re.MatchString(subject) {
				return Result{
					Type:           r.Result,
					Tags:           r.Tags,
					Source:         r.Source,
					MatchedPattern: r.Pattern,
					Confidence:     confidenceDirect,
				}
			}
		}
	}

	if depth < maxParentDepth {
		if parentCode := profile.Parent(code); parentCode != "" {
			if parent, ok := accounts[parentCode]; ok {
				res := classify(parent.Code, parent.Name, rs, profile, accounts, depth+1)
				if res.Type != Unknown {
					res.Source = fmt.Sprintf("%s (heredado de %s)", res.Source, parentCode)
					res.Confidence = res.Confidence * confidenceAncestor / confidenceDirect
					return res
				}
			}
		}
	}

	for _, r := range rs.CodeFallback {
		if r.re != nil && r.re.MatchString(code) {
			return Result{
				Type:           r.Result,
				Tags:           r.Tags,
				Source:         r.Source,
				MatchedPattern: r.Pattern,
				Confidence:     confidenceFallback,
			}
		}
	}

	return defaultByLeadingDigit(code)
}

// defaultByLeadingDigit is the last resort: a coarse bucket by the code's
// first digit, so downstream steps never starve for lack of a tag.
func defaultByLeadingDigit(code string) Result {
	code = strings.TrimSpace(code)
	if code == "" {
		return Result{Type: Unknown}
	}

	var (
		kind Kind
		tag  string
	)
	switch code[0] {
	case '1':
		kind, tag = Monetary, "Asset"
	case '2':
		kind, tag = Monetary, "Liability"
	case '3':
		kind, tag = NonMonetary, "Equity"
	case '4':
		kind, tag = NonMonetary, "Income"
	case '5':
		kind, tag = NonMonetary, "Expense"
	case '6':
		kind, tag = NonMonetary, "Cost"
	default:
		return Result{Type: Unknown}
	}

	return Result{
		Type:       kind,
		Tags:       []string{tag},
		Source:     "primer digito del codigo",
		Confidence: confidenceDefault,
	}
}

// HasTag reports whether the classification carries tag.
func (r Result) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
