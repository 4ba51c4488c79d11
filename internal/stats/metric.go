package stats

// Metric describes a stat as it is displayed and ranked.
type Metric struct {
	Key   Key    `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`

	// Inverted is true for stats where a lower raw value is better (interceptions thrown, points allowed).
	Inverted bool `json:"inverted,omitempty" yaml:"inverted,omitempty"`
}

// M is shorthand for a metric where higher is better.
func M(k Key, label string) Metric {
	return Metric{Key: k, Label: label}
}

// Inv is shorthand for a metric where lower is better.
func Inv(k Key, label string) Metric {
	return Metric{Key: k, Label: label, Inverted: true}
}

func (m Metric) String() string {
	if m.Label != "" {
		return m.Label
	}
	return string(m.Key)
}

// Subject is anything that carries a stat line and can be told apart from its peers.
type Subject interface {
	SubjectID() string
	StatLine() Line
}

// Column collects the present values of a stat across a population.
// Entities with a null value for the stat are skipped.
func Column[S Subject](population []S, k Key) []float64 {
	out := make([]float64, 0, len(population))
	for _, s := range population {
		if v, ok := s.StatLine().Get(k); ok {
			out = append(out, v)
		}
	}
	return out
}

// Lines extracts the stat lines of a population in order.
func Lines[S Subject](population []S) []Line {
	out := make([]Line, len(population))
	for i, s := range population {
		out[i] = s.StatLine()
	}
	return out
}
