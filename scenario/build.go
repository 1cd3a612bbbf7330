package scenario

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/wardrop/latency"
	"github.com/katalvlaran/wardrop/multiclass"
	"github.com/katalvlaran/wardrop/network"
)

// shareTolerance absorbs rounding in shares that should sum to 1.
const shareTolerance = 1e-9

// Model is a scenario resolved into solver inputs.
type Model struct {
	Graph  *network.Graph
	Demand *network.Demand // base demand, the sum of class demands when shares cover it
	// Classes is empty for a single-class scenario.
	Classes []multiclass.Class
	// Small is the small-link mask of the first cognitive class, nil without one.
	Small []bool
}

// Multiclass reports whether the scenario declares traveler classes.
func (m *Model) Multiclass() bool { return len(m.Classes) > 0 }

// Build validates the link table and demand and resolves the classes.
func (s *Scenario) Build() (*Model, error) {
	g, err := s.graph()
	if err != nil {
		return nil, err
	}
	d, err := network.NewDemand(g, ods(s.Demand))
	if err != nil {
		return nil, errors.Wrap(err, "demand")
	}

	m := &Model{Graph: g, Demand: d}
	if err := s.classes(m); err != nil {
		return nil, err
	}

	return m, nil
}

func (s *Scenario) graph() (*network.Graph, error) {
	if len(s.Links) == 0 {
		return nil, ErrNoLinks
	}
	links := make([]network.Link, len(s.Links))
	for i, lc := range s.Links {
		f, err := lc.latency()
		if err != nil {
			return nil, errors.Wrapf(err, "link %d (%d→%d)", i, lc.From, lc.To)
		}
		links[i] = network.Link{
			From:         lc.From,
			To:           lc.To,
			Capacity:     lc.Capacity,
			FreeFlowTime: lc.FFTT,
			Latency:      f,
		}
	}
	g, err := network.NewGraph(links)
	if err != nil {
		return nil, errors.Wrap(err, "links")
	}

	return g, nil
}

// latency returns the polynomial when coefficients are given, else a BPR curve.
func (lc LinkConfig) latency() (latency.Func, error) {
	if len(lc.Coefficients) > 0 {
		p, err := latency.NewPolynomial(lc.Coefficients...)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	b := latency.NewBPR(lc.FFTT, lc.Capacity)
	if lc.Alpha != nil {
		b.Alpha = *lc.Alpha
	}
	if lc.Beta != nil {
		b.Beta = *lc.Beta
	}

	return b, nil
}

func (s *Scenario) classes(m *Model) error {
	seen := make(map[string]struct{}, len(s.Classes))
	shares := 0.0
	for i, cc := range s.Classes {
		name := cc.Name
		if name == "" {
			name = fmt.Sprintf("class-%d", i)
		}
		if _, dup := seen[name]; dup {
			return errors.Wrapf(ErrDuplicateClass, "%q", name)
		}
		seen[name] = struct{}{}

		// 1) Demand: own list or a share of the base demand.
		var (
			d   *network.Demand
			err error
		)
		switch {
		case len(cc.Demand) > 0 && cc.Share != 0:
			return errors.Wrapf(ErrBadShare, "class %q sets both share and demand", name)
		case len(cc.Demand) > 0:
			d, err = network.NewDemand(m.Graph, ods(cc.Demand))
		case cc.Share > 0 && cc.Share <= 1:
			shares += cc.Share
			d, err = m.Demand.Scale(cc.Share)
		case cc.Share == 0:
			return errors.Wrapf(ErrClassDemand, "class %q", name)
		default:
			return errors.Wrapf(ErrBadShare, "class %q share=%g", name, cc.Share)
		}
		if err != nil {
			return errors.Wrapf(err, "class %q demand", name)
		}

		// 2) Perception.
		g := m.Graph
		if cc.Cognitive != nil {
			var small []bool
			g, small, err = m.Graph.Perceived(network.Cognitive{
				Threshold: cc.Cognitive.Threshold,
				Add:       cc.Cognitive.Add,
				Multiply:  cc.Cognitive.Multiply,
			})
			if err != nil {
				return errors.Wrapf(err, "class %q", name)
			}
			if m.Small == nil {
				m.Small = small
			}
		}

		m.Classes = append(m.Classes, multiclass.Class{Name: name, Graph: g, Demand: d})
	}
	if shares > 1+shareTolerance {
		return errors.Wrapf(ErrBadShare, "shares sum to %g", shares)
	}

	return nil
}

func ods(cs []ODConfig) []network.OD {
	out := make([]network.OD, len(cs))
	for i, c := range cs {
		out[i] = network.OD{Origin: c.Origin, Destination: c.Destination, Volume: c.Volume}
	}

	return out
}
