// Package scenario loads allocation inputs from YAML files.
//
// A scenario file looks like:
//
//	blocks: [100, 500, 200, 300, 600]
//	processes: [212, 417, 112, 426]
//	strategy: firstFit
package scenario

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/fitsim/memutils"
	"github.com/vkngwrapper/fitsim/memutils/metadata"
	"gopkg.in/yaml.v3"
)

// Scenario is one set of allocation inputs
type Scenario struct {
	Blocks    []int  `yaml:"blocks"`
	Processes []int  `yaml:"processes"`
	Strategy  string `yaml:"strategy,omitempty"`
}

// Load reads and validates the scenario file at the provided path
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open scenario %s", path)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load scenario %s", path)
	}
	return s, nil
}

// Decode reads a scenario from YAML and validates it. Blocks and processes must be
// non-negative, and the strategy, when present, must name one of the placement strategies.
// A malformed document is marked with memutils.ErrInvalidInput and keeps the yaml error as its
// cause; test for the mark with errors.Is from github.com/cockroachdb/errors.
func Decode(r io.Reader) (*Scenario, error) {
	var s Scenario

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	err := decoder.Decode(&s)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Mark(errors.Wrap(err, "invalid scenario"), memutils.ErrInvalidInput)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that the scenario's inputs can be handed to an allocator
func (s *Scenario) Validate() error {
	if err := memutils.CheckNonNegative(s.Blocks, "blocks"); err != nil {
		return err
	}
	if err := memutils.CheckNonNegative(s.Processes, "processes"); err != nil {
		return err
	}
	if s.Strategy != "" {
		if _, err := metadata.ParseStrategy(s.Strategy); err != nil {
			return err
		}
	}
	return nil
}
