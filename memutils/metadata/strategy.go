package metadata

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vkngwrapper/fitsim/memutils"
)

// Strategy selects how a PartitionTable chooses a block for each process. Every strategy
// only considers blocks whose remaining capacity is at least the process size.
type Strategy uint32

const (
	// StrategyFirstFit chooses the lowest-indexed block that can hold the process
	StrategyFirstFit Strategy = iota
	// StrategyNextFit scans circularly, starting just after the block that received the
	// previous successful placement, and chooses the first block that can hold the process
	StrategyNextFit
	// StrategyBestFit chooses the block with the smallest remaining capacity that can hold
	// the process. Ties go to the lowest index.
	StrategyBestFit
	// StrategyWorstFit chooses the block with the largest remaining capacity. Ties go to the
	// lowest index.
	StrategyWorstFit
)

// Strategies lists every strategy in comparison order
var Strategies = []Strategy{
	StrategyFirstFit,
	StrategyNextFit,
	StrategyBestFit,
	StrategyWorstFit,
}

var strategyMapping = map[Strategy]string{
	StrategyFirstFit: "firstFit",
	StrategyNextFit:  "nextFit",
	StrategyBestFit:  "bestFit",
	StrategyWorstFit: "worstFit",
}

func (s Strategy) String() string {
	name, ok := strategyMapping[s]
	if !ok {
		return fmt.Sprintf("Strategy(%d)", uint32(s))
	}
	return name
}

// IsValid returns true if the strategy is one of the four placement strategies
func (s Strategy) IsValid() bool {
	_, ok := strategyMapping[s]
	return ok
}

// ParseStrategy maps a selector such as "bestFit" to its Strategy. Unrecognized selectors
// produce memutils.ErrUnknownStrategy.
func ParseStrategy(name string) (Strategy, error) {
	for _, strategy := range Strategies {
		if strategyMapping[strategy] == name {
			return strategy, nil
		}
	}

	return 0, errors.Wrapf(memutils.ErrUnknownStrategy, "%q", name)
}
