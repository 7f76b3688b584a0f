package metadata

import (
	"github.com/dolthub/swiss"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/pkg/errors"
	"github.com/vkngwrapper/fitsim/memutils"
)

// PartitionTable is the working state of a single allocation run over a fixed set of memory
// blocks. It holds its own copy of the block capacities, so the caller's slice is never
// modified, and it tracks which processes have been placed in which block.
//
// A PartitionTable should be used for exactly one run. It is not safe for concurrent use.
type PartitionTable struct {
	capacities []int
	remaining  []int
	// cursor is the block after the most recent successful placement, consulted by StrategyNextFit
	cursor int

	residents *swiss.Map[int, []Suballocation]

	allocCount  int
	allocBytes  int
	failedCount int
	failedBytes int
}

// NewPartitionTable creates a table over a copy of the provided block capacities. It returns
// memutils.ErrInvalidInput if any capacity is negative.
func NewPartitionTable(blockCapacities []int) (*PartitionTable, error) {
	err := memutils.CheckNonNegative(blockCapacities, "blockCapacities")
	if err != nil {
		return nil, err
	}

	return &PartitionTable{
		capacities: memutils.CloneSizes(blockCapacities),
		remaining:  memutils.CloneSizes(blockCapacities),
		residents:  swiss.NewMap[int, []Suballocation](uint32(len(blockCapacities) + 1)),
	}, nil
}

// BlockCount returns the number of blocks in the table
func (t *PartitionTable) BlockCount() int { return len(t.capacities) }

// Capacity returns the size that the block at the provided index started the run with
func (t *PartitionTable) Capacity(block int) int { return t.capacities[block] }

// Remaining returns the capacity still free in the block at the provided index
func (t *PartitionTable) Remaining(block int) int { return t.remaining[block] }

// RemainingCapacities returns a copy of every block's remaining capacity, in block order
func (t *PartitionTable) RemainingCapacities() []int {
	return memutils.CloneSizes(t.remaining)
}

// Size returns the sum of all block capacities
func (t *PartitionTable) Size() int {
	size := 0
	for _, capacity := range t.capacities {
		size += capacity
	}
	return size
}

// SumFreeSize returns the sum of all remaining capacities
func (t *PartitionTable) SumFreeSize() int {
	free := 0
	for _, remaining := range t.remaining {
		free += remaining
	}
	return free
}

// Cursor returns the block index from which StrategyNextFit will begin its next search
func (t *PartitionTable) Cursor() int { return t.cursor }

// AllocationCount returns the number of processes placed so far
func (t *PartitionTable) AllocationCount() int { return t.allocCount }

// FailedCount returns the number of processes that were rejected so far
func (t *PartitionTable) FailedCount() int { return t.failedCount }

// IsEmpty returns true if no process has been placed in the table
func (t *PartitionTable) IsEmpty() bool { return t.allocCount == 0 }

// Residents returns the processes placed in the block at the provided index, in placement order
func (t *PartitionTable) Residents(block int) []Suballocation {
	residents, _ := t.residents.Get(block)
	return residents
}

// CreateAllocationRequest finds the block that the provided strategy would place a process
// of the given size in, measured against the current remaining capacities. The returned bool
// is false when no block can hold the process; that is a normal outcome and not an error.
//
// An error is returned if the size is negative or the strategy is unknown.
func (t *PartitionTable) CreateAllocationRequest(size int, strategy Strategy) (bool, AllocationRequest, error) {
	var request AllocationRequest

	if size < 0 {
		return false, request, errors.Wrapf(memutils.ErrInvalidInput, "process size is %d", size)
	}

	var block int
	switch strategy {
	case StrategyFirstFit:
		block = t.findFirstFit(size)
	case StrategyNextFit:
		block = t.findNextFit(size)
	case StrategyBestFit:
		block = t.findBestFit(size)
	case StrategyWorstFit:
		block = t.findWorstFit(size)
	default:
		return false, request, errors.Wrapf(memutils.ErrUnknownStrategy, "%s", strategy)
	}

	if block == NoBlock {
		return false, request, nil
	}

	request.BlockIndex = block
	request.Size = size
	request.Remaining = t.remaining[block]
	request.Strategy = strategy
	return true, request, nil
}

// Alloc commits an AllocationRequest, subtracting the full process size from the chosen block
// and moving the next-fit cursor past it. It returns an error if the request no longer fits:
// the block does not exist, or its remaining capacity has changed or is too small.
func (t *PartitionTable) Alloc(request AllocationRequest, process int) error {
	if request.BlockIndex < 0 || request.BlockIndex >= len(t.remaining) {
		return errors.Errorf("allocation request names block %d, but the table has %d blocks", request.BlockIndex, len(t.remaining))
	}
	if request.Size < 0 {
		return errors.Wrapf(memutils.ErrInvalidInput, "process size is %d", request.Size)
	}

	remaining := t.remaining[request.BlockIndex]
	if remaining != request.Remaining {
		return errors.Errorf("allocation request expected block %d to have %d remaining, but it has %d", request.BlockIndex, request.Remaining, remaining)
	}
	if remaining < request.Size {
		return errors.Errorf("block %d has %d remaining, which cannot hold a process of size %d", request.BlockIndex, remaining, request.Size)
	}

	t.remaining[request.BlockIndex] = remaining - request.Size
	t.cursor = (request.BlockIndex + 1) % len(t.remaining)

	residents, _ := t.residents.Get(request.BlockIndex)
	t.residents.Put(request.BlockIndex, append(residents, Suballocation{Process: process, Size: request.Size}))

	t.allocCount++
	t.allocBytes += request.Size
	return nil
}

// Reject records that a process of the provided size could not be placed. The next-fit cursor
// is left where it was.
func (t *PartitionTable) Reject(size int) {
	t.failedCount++
	t.failedBytes += size
}

// PlacementHooks are optional functions that Place calls as each process is handled. Either
// field may be left nil.
type PlacementHooks struct {
	// Place is called after a process has been committed to a block
	Place func(process, block, size int)
	// Reject is called after a process has been turned away from every block
	Reject func(process, size int)
}

// Place runs every process through the table in index order using the provided strategy and
// returns one assignment per process: the chosen block index, or NoBlock. Process sizes are
// validated before any placement is made. hooks may be nil.
func (t *PartitionTable) Place(strategy Strategy, processSizes []int, hooks *PlacementHooks) ([]int, error) {
	if !strategy.IsValid() {
		return nil, errors.Wrapf(memutils.ErrUnknownStrategy, "%s", strategy)
	}

	err := memutils.CheckNonNegative(processSizes, "processSizes")
	if err != nil {
		return nil, err
	}

	if hooks == nil {
		hooks = &PlacementHooks{}
	}

	assignments := make([]int, len(processSizes))
	for process, size := range processSizes {
		found, request, err := t.CreateAllocationRequest(size, strategy)
		if err != nil {
			return nil, err
		}

		if !found {
			assignments[process] = NoBlock
			t.Reject(size)
			if hooks.Reject != nil {
				hooks.Reject(process, size)
			}
			continue
		}

		err = t.Alloc(request, process)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to place process %d", process)
		}

		assignments[process] = request.BlockIndex
		if hooks.Place != nil {
			hooks.Place(process, request.BlockIndex, size)
		}
	}

	memutils.DebugCheckNonNegative(t.remaining, "remaining")
	return assignments, nil
}

// Validate performs internal consistency checks: every block's remaining capacity must be
// non-negative and equal to its original capacity minus the sizes of the processes placed in it.
func (t *PartitionTable) Validate() error {
	if len(t.capacities) != len(t.remaining) {
		return errors.Errorf("the table has %d capacities but %d remaining capacities", len(t.capacities), len(t.remaining))
	}

	if len(t.remaining) > 0 && (t.cursor < 0 || t.cursor >= len(t.remaining)) {
		return errors.Errorf("the next-fit cursor %d is outside the table's %d blocks", t.cursor, len(t.remaining))
	}

	allocCount := 0
	allocBytes := 0
	for block, capacity := range t.capacities {
		if t.remaining[block] < 0 {
			return errors.Errorf("block %d has a negative remaining capacity of %d", block, t.remaining[block])
		}

		used := 0
		for _, resident := range t.Residents(block) {
			used += resident.Size
			allocCount++
		}
		allocBytes += used

		if capacity-used != t.remaining[block] {
			return errors.Errorf("block %d has capacity %d and %d bytes of residents, but %d remaining", block, capacity, used, t.remaining[block])
		}
	}

	if allocCount != t.allocCount {
		return errors.Errorf("the allocation count of the table is %d, but the blocks only hold %d residents", t.allocCount, allocCount)
	}

	if allocBytes != t.allocBytes {
		return errors.Errorf("the allocated size of the table is %d, but the residents only added up to %d", t.allocBytes, allocBytes)
	}

	return nil
}

// AddStatistics sums this table's allocation statistics into the provided memutils.Statistics object
func (t *PartitionTable) AddStatistics(stats *memutils.Statistics) {
	stats.BlockCount += len(t.capacities)
	stats.BlockBytes += t.Size()
	stats.AllocationCount += t.allocCount
	stats.AllocationBytes += t.allocBytes
	stats.FailedCount += t.failedCount
	stats.FailedBytes += t.failedBytes
}

// AddDetailedStatistics sums this table's allocation statistics into the provided
// memutils.DetailedStatistics object
func (t *PartitionTable) AddDetailedStatistics(stats *memutils.DetailedStatistics) {
	stats.BlockCount += len(t.capacities)
	stats.BlockBytes += t.Size()
	stats.FailedCount += t.failedCount
	stats.FailedBytes += t.failedBytes

	for block := range t.capacities {
		for _, resident := range t.Residents(block) {
			stats.AddAllocation(resident.Size)
		}
		stats.AddUnusedRange(t.remaining[block])
	}
}

// BlockJsonData populates a json object with information about this table and each of its blocks
func (t *PartitionTable) BlockJsonData(json jwriter.ObjectState) {
	json.Name("TotalBytes").Int(t.Size())
	json.Name("UnusedBytes").Int(t.SumFreeSize())
	json.Name("Allocations").Int(t.allocCount)
	json.Name("FailedAllocations").Int(t.failedCount)

	blocks := json.Name("Blocks").Array()
	defer blocks.End()

	for block, capacity := range t.capacities {
		obj := blocks.Object()

		obj.Name("Block").Int(DisplayIndex(block))
		obj.Name("Capacity").Int(capacity)
		obj.Name("Remaining").Int(t.remaining[block])

		processes := obj.Name("Processes").Array()
		for _, resident := range t.Residents(block) {
			p := processes.Object()
			p.Name("Process").Int(resident.Process + 1)
			p.Name("Size").Int(resident.Size)
			p.End()
		}
		processes.End()

		obj.End()
	}
}
