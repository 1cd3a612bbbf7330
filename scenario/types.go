package scenario

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wardrop/frankwolfe"
	"github.com/katalvlaran/wardrop/multiclass"
)

// Sentinel errors returned by Parse and Build.
var (
	// ErrNoLinks indicates a scenario without links.
	ErrNoLinks = errors.New("scenario: no links")

	// ErrBadOption indicates a solver setting outside its domain.
	ErrBadOption = errors.New("scenario: invalid solver setting")

	// ErrBadShare indicates a class share outside [0, 1] or shares summing above 1.
	ErrBadShare = errors.New("scenario: invalid class share")

	// ErrClassDemand indicates a class with neither a share nor its own demand.
	ErrClassDemand = errors.New("scenario: class has no demand")

	// ErrDuplicateClass indicates two classes with the same name.
	ErrDuplicateClass = errors.New("scenario: duplicate class name")
)

// Scenario is the decoded YAML document.
type Scenario struct {
	Name       string           `yaml:"name"`
	Solver     SolverConfig     `yaml:"solver"`
	Multiclass MulticlassConfig `yaml:"multiclass"`
	Links      []LinkConfig     `yaml:"links"`
	Demand     []ODConfig       `yaml:"demand"`
	Classes    []ClassConfig    `yaml:"classes"`
}

// SolverConfig mirrors frankwolfe.Options.
type SolverConfig struct {
	Strategy        Strategy `yaml:"strategy"`
	MaxIter         int      `yaml:"max-iter"`
	Stop            float64  `yaml:"stop"`
	Q               int      `yaml:"q"`
	Past            int      `yaml:"past"`
	Workers         int      `yaml:"workers"`
	LineSearchSteps int      `yaml:"line-search-steps"`
	Display         int      `yaml:"display"`
}

// MulticlassConfig mirrors multiclass.Options.
type MulticlassConfig struct {
	Scheme     Scheme  `yaml:"scheme"`
	MaxIter    int     `yaml:"max-iter"`
	StopCycle  float64 `yaml:"stop-cycle"`
	Relaxation float64 `yaml:"relaxation"`
	Parallel   bool    `yaml:"parallel"`
	Patience   int     `yaml:"patience"`
}

// LinkConfig is one row of the link table. Alpha and Beta are ignored when
// Coefficients is set.
type LinkConfig struct {
	From         int       `yaml:"from"`
	To           int       `yaml:"to"`
	Capacity     float64   `yaml:"capacity"`
	FFTT         float64   `yaml:"fftt"`
	Alpha        *float64  `yaml:"alpha"`
	Beta         *float64  `yaml:"beta"`
	Coefficients []float64 `yaml:"coefficients"`
}

// ODConfig is one demand entry.
type ODConfig struct {
	Origin      int     `yaml:"origin"`
	Destination int     `yaml:"destination"`
	Volume      float64 `yaml:"volume"`
}

// ClassConfig is one traveler class.
type ClassConfig struct {
	Name      string           `yaml:"name"`
	Share     float64          `yaml:"share"`
	Demand    []ODConfig       `yaml:"demand"`
	Cognitive *CognitiveConfig `yaml:"cognitive"`
}

// CognitiveConfig mirrors network.Cognitive.
type CognitiveConfig struct {
	Threshold float64 `yaml:"threshold"`
	Add       float64 `yaml:"add"`
	Multiply  float64 `yaml:"multiply"`
}

//**********************************************************
// enums
//**********************************************************

// Strategy is frankwolfe.Strategy with YAML support.
type Strategy frankwolfe.Strategy

func (s Strategy) String() string {
	return frankwolfe.Strategy(s).String()
}
func (s Strategy) MarshalYAML() (any, error) {
	return s.String(), nil
}
func (s *Strategy) UnmarshalYAML(value *yaml.Node) error {
	typ, err := frankwolfe.StrategyFromString(value.Value)
	if err != nil {
		return err
	}
	*s = Strategy(typ)
	return nil
}

// Scheme is multiclass.Scheme with YAML support.
type Scheme multiclass.Scheme

func (s Scheme) String() string {
	return multiclass.Scheme(s).String()
}
func (s Scheme) MarshalYAML() (any, error) {
	return s.String(), nil
}
func (s *Scheme) UnmarshalYAML(value *yaml.Node) error {
	typ, err := multiclass.SchemeFromString(value.Value)
	if err != nil {
		return err
	}
	*s = Scheme(typ)
	return nil
}
