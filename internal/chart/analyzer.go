package chart

import "strings"

const (
	// sampleCap bounds the number of codes inspected per analysis run.
	sampleCap = 500
	// separatorThreshold is the share of sampled codes that must carry a
	// candidate character before it counts as the scheme separator.
	separatorThreshold = 0.30
	// deepPlanMinLength: a leading block this long switches the profile to
	// trailing-zero depth coding.
	deepPlanMinLength = 3
)

var separatorCandidates = []string{".", "-", " ", "/"}

// Analyze infers a structural profile from a sample of account codes. It
// never fails: degenerate input yields DefaultProfile.
func Analyze(codes []string) Profile {
	sample := make([]string, 0, len(codes))
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if c != "" {
			sample = append(sample, c)
		}
		if len(sample) == sampleCap {
			break
		}
	}
	if len(sample) == 0 {
		return DefaultProfile()
	}

	sep, hasSep := detectSeparator(sample)

	segLengths, numeric := segmentModalLengths(sample, sep, hasSep)
	if len(segLengths) == 0 {
		return DefaultProfile()
	}

	p := Profile{Separator: sep, HasSeparator: hasSep}

	if segLengths[0] >= deepPlanMinLength && numeric[0] {
		// Deep plan: every character of the leading block is a level
		// boundary; single-character filler segments carry no structure.
		p.SmartCode = true
		for i := 1; i <= segLengths[0]; i++ {
			p.LevelLengths = append(p.LevelLengths, i)
		}
	} else {
		cum := 0
		for _, l := range segLengths {
			cum += l
			if len(p.LevelLengths) == 0 || cum > p.LevelLengths[len(p.LevelLengths)-1] {
				p.LevelLengths = append(p.LevelLengths, cum)
			}
		}
	}

	if len(p.LevelLengths) == 0 {
		return DefaultProfile()
	}
	return p
}

// detectSeparator picks the candidate present in the most codes, provided it
// clears the threshold. Ties resolve in candidate order.
func detectSeparator(sample []string) (string, bool) {
	best, bestCount := "", 0
	for _, cand := range separatorCandidates {
		count := 0
		for _, code := range sample {
			if strings.Contains(code, cand) {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = cand, count
		}
	}
	if float64(bestCount) > separatorThreshold*float64(len(sample)) {
		return best, true
	}
	return "", false
}

// segmentModalLengths computes, per segment position, the most frequent
// observed length across the sample and whether every observed value at that
// position is purely numeric.
func segmentModalLengths(sample []string, sep string, hasSep bool) ([]int, []bool) {
	counts := make([]map[int]int, 0, 4)
	numeric := make([]bool, 0, 4)
	for _, code := range sample {
		segs := []string{code}
		if hasSep {
			segs = strings.Split(code, sep)
		}
		for i, seg := range segs {
			if seg == "" {
				continue
			}
			for len(counts) <= i {
				counts = append(counts, make(map[int]int))
				numeric = append(numeric, true)
			}
			counts[i][len(seg)]++
			if !isNumeric(seg) {
				numeric[i] = false
			}
		}
	}

	lengths := make([]int, 0, len(counts))
	for _, byLen := range counts {
		mode, modeCount := 0, 0
		for l, c := range byLen {
			if c > modeCount || (c == modeCount && l < mode) {
				mode, modeCount = l, c
			}
		}
		if mode > 0 {
			lengths = append(lengths, mode)
		}
	}
	return lengths, numeric
}

func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
