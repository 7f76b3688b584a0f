package vam

import (
	"github.com/google/uuid"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/fitsim/memutils"
	"github.com/vkngwrapper/fitsim/memutils/metadata"
)

// Run is the record of a single allocation run, produced by Allocator.Run
type Run struct {
	id           uuid.UUID
	strategy     metadata.Strategy
	processSizes []int
	assignments  []int

	table *metadata.PartitionTable
	stats memutils.DetailedStatistics
}

// ID uniquely identifies this run in logs and reports
func (r *Run) ID() uuid.UUID { return r.id }

// Strategy is the strategy this run placed processes with
func (r *Run) Strategy() metadata.Strategy { return r.strategy }

// ProcessSizes returns a copy of the process sizes this run was given
func (r *Run) ProcessSizes() []int { return memutils.CloneSizes(r.processSizes) }

// Assignments returns a copy of the per-process assignments: a 0-based block index, or metadata.NoBlock
func (r *Run) Assignments() []int { return memutils.CloneSizes(r.assignments) }

// Remaining returns the remaining capacity of every block at the end of the run
func (r *Run) Remaining() []int { return r.table.RemainingCapacities() }

// Residents returns the processes placed in the block at the provided index
func (r *Run) Residents(block int) []metadata.Suballocation { return r.table.Residents(block) }

// Allocated returns the number of processes that received a block
func (r *Run) Allocated() int { return metadata.CountAllocated(r.assignments) }

// NotAllocated returns the number of processes that did not receive a block
func (r *Run) NotAllocated() int { return len(r.assignments) - r.Allocated() }

// Statistics returns the detailed statistics of the run
func (r *Run) Statistics() memutils.DetailedStatistics { return r.stats }

func (r *Run) printParameters(json *jwriter.ObjectState) {
	json.Name("RunID").String(r.id.String())
	json.Name("Strategy").String(r.strategy.String())
	json.Name("Allocated").Int(r.Allocated())
	json.Name("NotAllocated").Int(r.NotAllocated())

	processes := json.Name("Processes").Array()
	for process, size := range r.processSizes {
		obj := processes.Object()
		obj.Name("Process").Int(process + 1)
		obj.Name("Size").Int(size)
		obj.Name("Block").Int(metadata.DisplayIndex(r.assignments[process]))
		obj.End()
	}
	processes.End()

	stats := json.Name("Statistics").Object()
	stats.Name("BlockCount").Int(r.stats.BlockCount)
	stats.Name("BlockBytes").Int(r.stats.BlockBytes)
	stats.Name("AllocationCount").Int(r.stats.AllocationCount)
	stats.Name("AllocationBytes").Int(r.stats.AllocationBytes)
	stats.Name("FailedCount").Int(r.stats.FailedCount)
	stats.Name("FailedBytes").Int(r.stats.FailedBytes)
	stats.Name("UnusedRangeCount").Int(r.stats.UnusedRangeCount)
	stats.Name("Utilization").Float64(r.stats.Utilization())

	if r.stats.AllocationCount > 0 {
		stats.Name("AllocationSizeMin").Int(r.stats.AllocationSizeMin)
		stats.Name("AllocationSizeMax").Int(r.stats.AllocationSizeMax)
	}

	if r.stats.UnusedRangeCount > 0 {
		stats.Name("UnusedRangeSizeMin").Int(r.stats.UnusedRangeSizeMin)
		stats.Name("UnusedRangeSizeMax").Int(r.stats.UnusedRangeSizeMax)
	}
	stats.End()
}
