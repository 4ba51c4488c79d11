package ranking

import (
	"math"

	"github.com/reallyasi9/nflstats/internal/stats"
)

// Side says which of two compared entities leads on a metric.
type Side int

const (
	Even Side = iota
	SideA
	SideB
)

func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	}
	return "even"
}

// MarshalText renders the side as "A", "B", or "even".
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Delta is the head-to-head comparison of two entities on one metric.
type Delta struct {
	Metric stats.Metric `json:"metric" yaml:"metric"`
	A      float64      `json:"a" yaml:"a"`
	B      float64      `json:"b" yaml:"b"`
	// Diff is A - B.
	Diff float64 `json:"diff" yaml:"diff"`
	// PercentDiff is |Diff| as a percentage of the larger magnitude of A and B (floored at 1).
	PercentDiff float64 `json:"percent_diff" yaml:"percent_diff"`
	// Better is true when A outperforms B, respecting inverted metrics.
	Better bool `json:"better" yaml:"better"`
	Leader Side `json:"leader" yaml:"leader"`
}

// HeadToHead compares a against b on every metric. A null value counts as 0.
func HeadToHead(metrics []stats.Metric, a, b stats.Line) []Delta {
	out := make([]Delta, len(metrics))
	for i, m := range metrics {
		av := a.Or(m.Key, 0)
		bv := b.Or(m.Key, 0)
		diff := av - bv
		better := diff > 0
		if m.Inverted {
			better = diff < 0
		}
		leader := Even
		switch {
		case better:
			leader = SideA
		case diff != 0:
			leader = SideB
		}
		denom := math.Max(math.Max(math.Abs(av), math.Abs(bv)), 1)
		out[i] = Delta{
			Metric:      m,
			A:           av,
			B:           bv,
			Diff:        diff,
			PercentDiff: math.Abs(diff) / denom * 100,
			Better:      better,
			Leader:      leader,
		}
	}
	return out
}

// Tally counts the metrics each side leads.
func Tally(deltas []Delta) (a, b, even int) {
	for _, d := range deltas {
		switch d.Leader {
		case SideA:
			a++
		case SideB:
			b++
		default:
			even++
		}
	}
	return
}
