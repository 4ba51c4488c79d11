package ranking

import (
	"github.com/reallyasi9/nflstats/internal/stats"
	"gonum.org/v1/gonum/stat"
)

// Quadrant is a performance profile from comparing two metrics against their averages.
type Quadrant int

const (
	// QuadrantElite is favorable on both axes.
	QuadrantElite Quadrant = iota
	// QuadrantXOnly is favorable on the x axis only.
	QuadrantXOnly
	// QuadrantYOnly is favorable on the y axis only.
	QuadrantYOnly
	// QuadrantBelowAverage is unfavorable on both axes.
	QuadrantBelowAverage
)

// Family selects the wording used for the mixed quadrants.
type Family int

const (
	Overall Family = iota
	Offensive
	Defensive
)

func (f Family) String() string {
	switch f {
	case Offensive:
		return "offensive"
	case Defensive:
		return "defensive"
	}
	return "overall"
}

// MarshalText renders the family as its name.
func (f Family) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Classify places (x, y) relative to (xAvg, yAvg).
// x is favorable when strictly greater than its average. y is favorable when strictly greater than its average,
// or strictly less when yInverted is set. A value equal to the average is never favorable.
func Classify(x, y, xAvg, yAvg float64, yInverted bool) Quadrant {
	xGood := x > xAvg
	var yGood bool
	if yInverted {
		yGood = y < yAvg
	} else {
		yGood = y > yAvg
	}
	switch {
	case xGood && yGood:
		return QuadrantElite
	case xGood:
		return QuadrantXOnly
	case yGood:
		return QuadrantYOnly
	default:
		return QuadrantBelowAverage
	}
}

// Label names the quadrant for a family of axes.
func (q Quadrant) Label(f Family) string {
	switch q {
	case QuadrantElite:
		return "Elite"
	case QuadrantBelowAverage:
		return "Below Average"
	case QuadrantXOnly:
		switch f {
		case Offensive:
			return "Volume Driven"
		case Defensive:
			return "Opportunistic"
		default:
			return "Offense First"
		}
	case QuadrantYOnly:
		switch f {
		case Offensive:
			return "Efficient"
		case Defensive:
			return "Stingy"
		default:
			return "Defense First"
		}
	}
	return "Unknown"
}

func (q Quadrant) String() string {
	return q.Label(Overall)
}

// Point is one entity placed on a two-metric scatter plot.
type Point struct {
	ID       string   `json:"id" yaml:"id"`
	Group    string   `json:"group,omitempty" yaml:"group,omitempty"`
	X        float64  `json:"x" yaml:"x"`
	Y        float64  `json:"y" yaml:"y"`
	XAverage float64  `json:"x_average" yaml:"x_average"`
	YAverage float64  `json:"y_average" yaml:"y_average"`
	Quadrant Quadrant `json:"-" yaml:"-"`
	Label    string   `json:"quadrant" yaml:"quadrant"`
}

// Scatter places every entity of population that has both metrics on an x/y plot and classifies it.
//
// Averages are computed from the plotted points themselves, separately for each group returned by groupOf
// (so running backs are measured against running backs when they share a plot with receivers).
// A nil groupOf puts every entity in one group. The y metric's Inverted flag flips the y comparison.
func Scatter[S stats.Subject](x, y stats.Metric, population []S, groupOf func(S) string, family Family) []Point {
	type plotted struct {
		id, group string
		x, y      float64
	}
	pts := make([]plotted, 0, len(population))
	xs := make(map[string][]float64)
	ys := make(map[string][]float64)
	for _, s := range population {
		line := s.StatLine()
		xv, xok := line.Get(x.Key)
		yv, yok := line.Get(y.Key)
		if !xok || !yok {
			continue
		}
		g := ""
		if groupOf != nil {
			g = groupOf(s)
		}
		pts = append(pts, plotted{id: s.SubjectID(), group: g, x: xv, y: yv})
		xs[g] = append(xs[g], xv)
		ys[g] = append(ys[g], yv)
	}

	xAvg := make(map[string]float64, len(xs))
	yAvg := make(map[string]float64, len(ys))
	for g := range xs {
		xAvg[g] = stat.Mean(xs[g], nil)
		yAvg[g] = stat.Mean(ys[g], nil)
	}

	out := make([]Point, len(pts))
	for i, p := range pts {
		q := Classify(p.x, p.y, xAvg[p.group], yAvg[p.group], y.Inverted)
		out[i] = Point{
			ID:       p.id,
			Group:    p.group,
			X:        p.x,
			Y:        p.y,
			XAverage: xAvg[p.group],
			YAverage: yAvg[p.group],
			Quadrant: q,
			Label:    q.Label(family),
		}
	}
	return out
}
