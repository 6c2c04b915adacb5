package report

import (
	"math"

	"github.com/katalvlaran/rentdiv/envy"
	"github.com/katalvlaran/rentdiv/rent"
)

// Row is one agent's line of a Summary.
type Row struct {
	Agent   string  `yaml:"agent" json:"agent"`
	Item    string  `yaml:"item" json:"item"`
	Value   float64 `yaml:"value" json:"value"`
	Price   float64 `yaml:"price" json:"price"`
	Subsidy float64 `yaml:"subsidy" json:"subsidy"`
	Utility float64 `yaml:"utility" json:"utility"`
}

// Contest is an ordered pair where Agent prefers Other's room when both cost
// the same, i.e. before subsidies.
type Contest struct {
	Agent string `yaml:"agent" json:"agent"`
	Other string `yaml:"other" json:"other"`
}

// Summary is a labelled, encoder-friendly view of an Allocation.
type Summary struct {
	Rent     float64 `yaml:"rent" json:"rent"`
	Welfare  float64 `yaml:"welfare" json:"welfare"`
	Base     float64 `yaml:"base" json:"base"`
	MaxEnvy  float64 `yaml:"max_envy" json:"max_envy"`
	EnvyFree bool    `yaml:"envy_free" json:"envy_free"`
	Rows     []Row   `yaml:"rows" json:"rows"`

	// Contested lists the envy the prices had to neutralise, in row-major order.
	Contested []Contest `yaml:"contested,omitempty" json:"contested,omitempty"`
}

// Tolerance is the envy threshold used by Summarize and WriteText.
const Tolerance = 1e-6

// Summarize builds the Summary of a. Rows are in agent order.
func Summarize(a *rent.Allocation, labels Labels) (Summary, error) {
	rep, err := a.Audit()
	if err != nil {
		return Summary{}, err
	}
	g, err := envy.NewGraph(a.Values, a.Assignment)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{
		Rent:     a.Rent,
		Welfare:  a.Welfare,
		Base:     a.Base,
		MaxEnvy:  round(rep.MaxEnvy),
		EnvyFree: rep.EnvyFree(Tolerance),
		Rows:     make([]Row, a.N()),
	}
	for i := range s.Rows {
		item := a.ItemOf(i)
		v, _ := a.Values.At(i, item)
		s.Rows[i] = Row{
			Agent:   labels.Agent(i),
			Item:    labels.Item(item),
			Value:   v,
			Price:   a.Prices[item],
			Subsidy: a.Subsidies[i],
			Utility: a.Utility(i),
		}
	}
	for _, pair := range g.Envious() {
		s.Contested = append(s.Contested, Contest{Agent: labels.Agent(pair[0]), Other: labels.Agent(pair[1])})
	}

	return s, nil
}

// round snaps values within Tolerance of zero to 0 so "-0.00" never shows.
func round(x float64) float64 {
	if math.Abs(x) <= Tolerance {
		return 0
	}

	return x
}
