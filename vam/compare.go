package vam

import (
	"github.com/vkngwrapper/fitsim/memutils"
	"github.com/vkngwrapper/fitsim/memutils/metadata"
	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
)

// ComparisonSummary reduces one strategy's run to the number of processes that were and were
// not allocated
type ComparisonSummary struct {
	Strategy     metadata.Strategy
	Allocated    int
	NotAllocated int
}

// Name returns the strategy's selector, such as "firstFit"
func (s ComparisonSummary) Name() string { return s.Strategy.String() }

// CompareRuns runs every strategy, in metadata.Strategies order, against its own copy of the
// provided inputs. Input is validated once, before any run begins.
func (a *Allocator) CompareRuns(blockCapacities, processSizes []int) ([]*Run, error) {
	err := a.validateInput(metadata.StrategyFirstFit, blockCapacities, processSizes)
	if err != nil {
		a.logger.Warn("rejected comparison", slog.Any("error", err))
		return nil, err
	}

	runs := make([]*Run, 0, len(metadata.Strategies))
	for _, strategy := range metadata.Strategies {
		run, err := a.Run(strategy, memutils.CloneSizes(blockCapacities), memutils.CloneSizes(processSizes))
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, nil
}

// Compare runs all four strategies against identical input and summarizes each, in the order
// first fit, next fit, best fit, worst fit. A strategy that places no process at all still
// produces a summary. The result also replaces the snapshot returned by LastComparison.
func (a *Allocator) Compare(blockCapacities, processSizes []int) ([]ComparisonSummary, error) {
	runs, err := a.CompareRuns(blockCapacities, processSizes)
	if err != nil {
		return nil, err
	}

	summaries := Summarize(runs)

	a.comparisonMutex.Lock()
	defer a.comparisonMutex.Unlock()

	a.lastComparison = summaries
	return slices.Clone(summaries), nil
}

// LastComparison returns the summaries produced by the most recent successful call to Compare,
// or nil if Compare has not succeeded yet
func (a *Allocator) LastComparison() []ComparisonSummary {
	a.comparisonMutex.RLock()
	defer a.comparisonMutex.RUnlock()

	return slices.Clone(a.lastComparison)
}

// Summarize reduces each run to a ComparisonSummary, preserving order
func Summarize(runs []*Run) []ComparisonSummary {
	summaries := make([]ComparisonSummary, 0, len(runs))
	for _, run := range runs {
		allocated := run.Allocated()
		summaries = append(summaries, ComparisonSummary{
			Strategy:     run.Strategy(),
			Allocated:    allocated,
			NotAllocated: len(run.assignments) - allocated,
		})
	}
	return summaries
}
