package vam

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/vkngwrapper/fitsim/memutils"
	"github.com/vkngwrapper/fitsim/memutils/metadata"
	"github.com/vkngwrapper/fitsim/vam/internal/utils"
	"golang.org/x/exp/slog"
)

// Allocator runs fixed-partition allocation simulations. Every run builds its own working copy
// of the block capacities, so runs never observe each other and the caller's slices are never
// modified. The only state an Allocator keeps between calls is the most recent comparison.
type Allocator struct {
	logger    *slog.Logger
	callbacks placementCallbacks

	comparisonMutex utils.OptionalRWMutex
	lastComparison  []ComparisonSummary
}

// Allocate places each process, in index order, into one of the blocks using the provided
// strategy. The result holds one entry per process: the 0-based block index, or metadata.NoBlock.
//
// memutils.ErrInvalidInput is returned if any capacity or size is negative, and
// memutils.ErrUnknownStrategy if the strategy is not recognized. No assignments are returned
// alongside an error.
func (a *Allocator) Allocate(strategy metadata.Strategy, blockCapacities, processSizes []int) ([]int, error) {
	run, err := a.Run(strategy, blockCapacities, processSizes)
	if err != nil {
		return nil, err
	}

	return run.Assignments(), nil
}

// AllocateNamed is Allocate with the strategy selected by name: one of "firstFit", "nextFit",
// "bestFit", or "worstFit"
func (a *Allocator) AllocateNamed(name string, blockCapacities, processSizes []int) ([]int, error) {
	strategy, err := metadata.ParseStrategy(name)
	if err != nil {
		a.logger.Warn("rejected allocation run", slog.String("Strategy", name), slog.Any("error", err))
		return nil, err
	}

	return a.Allocate(strategy, blockCapacities, processSizes)
}

// Run performs a single allocation run and returns the full record of it, including the
// remaining capacity of every block and the run's statistics
func (a *Allocator) Run(strategy metadata.Strategy, blockCapacities, processSizes []int) (*Run, error) {
	id := uuid.New()

	err := a.validateInput(strategy, blockCapacities, processSizes)
	if err != nil {
		a.logger.Warn("rejected allocation run",
			slog.String("RunID", id.String()),
			slog.String("Strategy", strategy.String()),
			slog.Any("error", err))
		return nil, err
	}

	table, err := metadata.NewPartitionTable(blockCapacities)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("Allocator::Run",
		slog.String("RunID", id.String()),
		slog.String("Strategy", strategy.String()),
		slog.Int("BlockCount", table.BlockCount()),
		slog.Int("ProcessCount", len(processSizes)))

	assignments, err := table.Place(strategy, processSizes, &metadata.PlacementHooks{
		Place: func(process, block, size int) {
			a.callbacks.Place(strategy, process, block, size)
		},
		Reject: func(process, size int) {
			a.callbacks.Reject(strategy, process, size)
		},
	})
	if err != nil {
		return nil, err
	}

	memutils.DebugValidate(table)

	run := &Run{
		id:           id,
		strategy:     strategy,
		processSizes: memutils.CloneSizes(processSizes),
		assignments:  assignments,
		table:        table,
	}
	run.stats.Clear()
	table.AddDetailedStatistics(&run.stats)

	a.logger.Debug("    Finished run",
		slog.String("RunID", id.String()),
		slog.Int("Allocated", run.Allocated()),
		slog.Int("NotAllocated", run.NotAllocated()))

	return run, nil
}

func (a *Allocator) validateInput(strategy metadata.Strategy, blockCapacities, processSizes []int) error {
	if !strategy.IsValid() {
		return errors.Wrapf(memutils.ErrUnknownStrategy, "%s", strategy)
	}

	err := memutils.CheckNonNegative(blockCapacities, "blockCapacities")
	if err != nil {
		return err
	}

	return memutils.CheckNonNegative(processSizes, "processSizes")
}
