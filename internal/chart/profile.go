// Package chart infers the hierarchical structure implied by a chart of
// accounts' code scheme: separator character, level boundaries and per-code
// depth, without assuming any particular national numbering plan.
package chart

import "strings"

// Profile is the structural profile of one code scheme. It is built once per
// closing run and never mutated afterwards.
type Profile struct {
	Separator    string
	HasSeparator bool
	// LevelLengths holds cumulative code lengths marking level boundaries,
	// strictly increasing. LevelLengths[i] is the total length of a code at
	// level i+1 (separators excluded).
	LevelLengths []int
	// SmartCode marks deep plans: long strictly-numeric leading blocks where
	// depth is encoded by trailing zeros ("1101000" is level 4 of 7).
	SmartCode bool
}

// DefaultProfile is the documented fallback for degenerate input: four
// levels, dot separator, cumulative lengths 1, 2, 4, 7.
func DefaultProfile() Profile {
	return Profile{
		Separator:    ".",
		HasSeparator: true,
		LevelLengths: []int{1, 2, 4, 7},
	}
}

// MaxLevel is the number of levels the profile can express.
func (p Profile) MaxLevel() int {
	return len(p.LevelLengths)
}

// Level computes the hierarchy depth of code, always at least 1.
func (p Profile) Level(code string) int {
	code = strings.TrimSpace(code)
	if code == "" {
		return 1
	}

	if p.HasSeparator && strings.Contains(code, p.Separator) {
		segs := strings.Split(code, p.Separator)
		depth := segmentDepth(segs[0])
		for _, seg := range segs[1:] {
			if p.meaningful(seg) {
				depth++
			}
		}
		return depth
	}

	if p.SmartCode {
		return segmentDepth(code)
	}

	// Flat code: compare against the level-length table, then add whatever
	// extra depth the leading block encodes in trailing zeros.
	level := 1
	for i, l := range p.LevelLengths {
		if len(code) >= l {
			level = i + 1
		}
	}
	if len(p.LevelLengths) > 0 {
		head := code
		if p.LevelLengths[0] < len(code) {
			head = code[:p.LevelLengths[0]]
		}
		level += segmentDepth(head) - 1
	}
	if level > p.MaxLevel() && p.MaxLevel() > 0 {
		level = p.MaxLevel()
	}
	return level
}

// Parent computes the parent code of code under this profile, or "" for
// top-level codes.
func (p Profile) Parent(code string) string {
	code = strings.TrimSpace(code)
	if code == "" || p.Level(code) <= 1 {
		return ""
	}

	if p.HasSeparator && strings.Contains(code, p.Separator) {
		segs := strings.Split(code, p.Separator)
		last := -1
		count := 0
		for i, seg := range segs {
			if i == 0 || p.meaningful(seg) {
				last = i
				count++
			}
		}
		if count >= 2 {
			return strings.Join(segs[:last], p.Separator)
		}
		return zeroTrailingSignificant(segs[0])
	}

	if p.SmartCode || !p.HasSeparator {
		lvl := p.Level(code)
		if lvl-2 < len(p.LevelLengths) && lvl >= 2 {
			cut := p.LevelLengths[lvl-2]
			if cut < len(code) {
				parent := code[:cut]
				if maxLen := p.LevelLengths[len(p.LevelLengths)-1]; len(code) == maxLen {
					parent += strings.Repeat("0", len(code)-cut)
				}
				return parent
			}
		}
		return zeroTrailingSignificant(code)
	}

	return zeroTrailingSignificant(code)
}

// meaningful reports whether a non-leading segment adds a hierarchy level.
// Empty segments and all-zero fillers do not; in deep plans single-character
// fillers do not either.
func (p Profile) meaningful(seg string) bool {
	if seg == "" {
		return false
	}
	if strings.Trim(seg, "0"+p.Separator) == "" {
		return false
	}
	if p.SmartCode && len(seg) <= 1 {
		return false
	}
	return true
}

// segmentDepth is the trailing-zero depth of one code block: length minus
// trailing zeros, floored at 1.
func segmentDepth(seg string) int {
	d := len(seg) - trailingZeros(seg)
	if d < 1 {
		return 1
	}
	return d
}

func trailingZeros(s string) int {
	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '0'; i-- {
		n++
	}
	return n
}

// zeroTrailingSignificant replaces the last non-zero character of a block
// with '0', stepping one level up inside a trailing-zero coded block.
func zeroTrailingSignificant(seg string) string {
	for i := len(seg) - 1; i >= 0; i-- {
		if seg[i] != '0' {
			return seg[:i] + "0" + seg[i+1:]
		}
	}
	return ""
}
