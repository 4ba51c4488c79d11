package ranking

import (
	"math"

	"github.com/reallyasi9/nflstats/internal/stats"
	"gonum.org/v1/gonum/stat"
)

// Tier is a performance band, ordered from best (Elite) to worst (Terrible).
type Tier int

const (
	Elite Tier = iota
	Great
	VeryGood
	AboveAverage
	Solid
	Average
	BelowAverage
	Poor
	VeryPoor
	Terrible
)

// TierFor maps an effective percentile to its band.
// Bands are [90,100], [80,90), [70,80), ... [0,10). Values outside [0,100] are clamped.
func TierFor(p int) Tier {
	p = clamp(p, 0, 100)
	if p >= 90 {
		return Elite
	}
	// 80-89 -> Great (1), 70-79 -> VeryGood (2), ... 0-9 -> Terrible (9)
	return Tier(9 - p/10)
}

// Label is the display name of the tier.
func (t Tier) Label() string {
	switch t {
	case Elite:
		return "Elite"
	case Great:
		return "Great"
	case VeryGood:
		return "Very Good"
	case AboveAverage:
		return "Above Avg"
	case Solid:
		return "Solid"
	case Average:
		return "Average"
	case BelowAverage:
		return "Below Avg"
	case Poor:
		return "Poor"
	case VeryPoor:
		return "Very Poor"
	case Terrible:
		return "Terrible"
	}
	return "Unknown"
}

// Letter is the letter grade of the tier.
func (t Tier) Letter() string {
	switch t {
	case Elite:
		return "A+"
	case Great:
		return "A"
	case VeryGood:
		return "B+"
	case AboveAverage:
		return "B"
	case Solid:
		return "C+"
	case Average:
		return "C"
	case BelowAverage:
		return "D+"
	case Poor:
		return "D"
	case VeryPoor:
		return "F+"
	case Terrible:
		return "F"
	}
	return "?"
}

// Color is the display bucket for a tier. Progress bars and badges key off it.
func (t Tier) Color() Color {
	switch t {
	case Elite, Great:
		return Emerald
	case VeryGood, AboveAverage:
		return Green
	case Solid, Average:
		return Yellow
	case BelowAverage, Poor:
		return Orange
	default:
		return Red
	}
}

func (t Tier) String() string {
	return t.Letter() + " " + t.Label()
}

// MarshalText renders the tier as its label.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.Label()), nil
}

// Color is a display bucket.
type Color int

const (
	Emerald Color = iota
	Green
	Yellow
	Orange
	Red
)

// Hex is the RGB color of the bucket in HTML format.
func (c Color) Hex() string {
	switch c {
	case Emerald:
		return "#10B981"
	case Green:
		return "#22C55E"
	case Yellow:
		return "#EAB308"
	case Orange:
		return "#F97316"
	case Red:
		return "#EF4444"
	}
	return "#9CA3AF"
}

func (c Color) String() string {
	switch c {
	case Emerald:
		return "emerald"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Orange:
		return "orange"
	case Red:
		return "red"
	}
	return "gray"
}

// MarshalText renders the bucket as its name.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Grade is the classification of one percentile.
type Grade struct {
	Tier  Tier  `json:"tier" yaml:"tier"`
	Color Color `json:"color" yaml:"color"`
}

// Letter is shorthand for g.Tier.Letter().
func (g Grade) Letter() string { return g.Tier.Letter() }

// GradeFor classifies a percentile. When inverted is true the percentile is flipped (100-p) first,
// so that a low raw rank on a lower-is-better stat earns a high grade.
func GradeFor(percentile int, inverted bool) Grade {
	p := percentile
	if inverted {
		p = 100 - percentile
	}
	t := TierFor(p)
	return Grade{Tier: t, Color: t.Color()}
}

// Effective returns the inversion-adjusted percentile of a metric.
func Effective(percentile int, inverted bool) int {
	if inverted {
		return clamp(100-percentile, 0, 100)
	}
	return clamp(percentile, 0, 100)
}

// Composite is an entity's overall grade across a metric group.
type Composite struct {
	Grade
	// Score is the rounded mean effective percentile.
	Score int `json:"score" yaml:"score"`
	// Scored is the number of metrics that had a value and contributed to the score.
	Scored int `json:"scored" yaml:"scored"`
}

// CompositeGrade averages the inversion-adjusted percentiles of every metric in metrics for which line has a value.
// Percentiles are computed against population. With no scored metrics the grade is the middle band (Average).
func CompositeGrade(line stats.Line, metrics []stats.Metric, population []stats.Line) Composite {
	effective := make([]float64, 0, len(metrics))
	for _, m := range metrics {
		if _, ok := line.Get(m.Key); !ok {
			continue
		}
		p := PercentileOf(line, m.Key, population)
		effective = append(effective, float64(Effective(p, m.Inverted)))
	}
	if len(effective) == 0 {
		return Composite{Grade: Grade{Tier: Average, Color: Average.Color()}}
	}
	score := int(math.Round(stat.Mean(effective, nil)))
	return Composite{Grade: GradeFor(score, false), Score: score, Scored: len(effective)}
}
