// Package rank adjusts event severity for a caller-supplied ideological
// perspective. Two strategies exist behind one interface: the enhanced
// variant used for live results and the simple variant used over the static
// fallback dataset. Their coefficients deliberately differ; see DESIGN.md.
package rank

import (
	"sort"

	"reputation-desk/internal/scandal"
)

const maxResults = 5

// Strategy recomputes event scores for a perspective in [0,100] (0 liberal,
// 100 conservative, 50 neutral), sorts descending, and truncates.
type Strategy interface {
	Rank(events []scandal.Event, perspective int) []scandal.ScoredResult
}

// Simple is the fixed-coefficient strategy: adjustment capped at ±20 flat,
// credibility boost capped at 10.
type Simple struct{}

func (Simple) Rank(events []scandal.Event, perspective int) []scandal.ScoredResult {
	return rank(events, perspective, simpleAdjust, 10)
}

// Enhanced steepens the adjustment for strongly aligned perspectives and
// allows a larger credibility boost.
type Enhanced struct{}

func (Enhanced) Rank(events []scandal.Event, perspective int) []scandal.ScoredResult {
	return rank(events, perspective, enhancedAdjust, 15)
}

func rank(events []scandal.Event, perspective int, adjust func(alignment float64) float64, boostCap float64) []scandal.ScoredResult {
	center := float64(perspective - 50) // -50..+50

	results := make([]scandal.ScoredResult, 0, len(events))
	for _, evt := range events {
		// alignment in [-1,1]: how strongly the requested perspective
		// agrees with the event's ideological lean.
		alignment := (evt.IdeologicalTilt / 100) * (center / 50)

		adjustment := 0.0
		if alignment != 0 {
			adjustment = adjust(alignment)
		}

		sum := 0.0
		for _, src := range evt.Sources {
			sum += float64(src.ReliabilityScore)
		}
		boost := sum / 200
		if boost < 0 {
			boost = 0
		}
		if boost > boostCap {
			boost = boostCap
		}

		results = append(results, scandal.ScoredResult{
			Event:         evt,
			AdjustedScore: clamp(evt.BaseScore+adjustment+boost, 0, 100),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].AdjustedScore > results[j].AdjustedScore
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

func simpleAdjust(alignment float64) float64 {
	return alignment * 20
}

func enhancedAdjust(alignment float64) float64 {
	abs := alignment
	if abs < 0 {
		abs = -abs
	}

	adjustment := alignment * 20
	if abs > 0.5 {
		adjustment = alignment * 30
	}
	if abs > 0.7 {
		if alignment > 0 {
			adjustment += 10
		} else {
			adjustment -= 10
		}
	}
	return adjustment
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
