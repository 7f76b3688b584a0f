package memutils

import "math"

// Statistics sums the outcome of one or more allocation runs: how many blocks took part, how
// many processes were placed or turned away, and the bytes on each side
type Statistics struct {
	BlockCount      int
	AllocationCount int
	FailedCount     int
	BlockBytes      int
	AllocationBytes int
	FailedBytes     int
}

func (s *Statistics) Clear() {
	s.BlockCount = 0
	s.AllocationCount = 0
	s.FailedCount = 0
	s.BlockBytes = 0
	s.AllocationBytes = 0
	s.FailedBytes = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.BlockCount += other.BlockCount
	s.AllocationCount += other.AllocationCount
	s.FailedCount += other.FailedCount
	s.BlockBytes += other.BlockBytes
	s.AllocationBytes += other.AllocationBytes
	s.FailedBytes += other.FailedBytes
}

// ProcessCount is the number of processes considered: every process is either allocated or failed
func (s *Statistics) ProcessCount() int {
	return s.AllocationCount + s.FailedCount
}

// Utilization is the fraction of block bytes handed out to processes, or 0 when there are no block bytes
func (s *Statistics) Utilization() float64 {
	if s.BlockBytes == 0 {
		return 0
	}
	return float64(s.AllocationBytes) / float64(s.BlockBytes)
}

// DetailedStatistics extends Statistics with size ranges. An unused range is the capacity left
// over in a block at the end of a run; blocks that were filled exactly do not count.
type DetailedStatistics struct {
	Statistics
	UnusedRangeCount   int
	AllocationSizeMin  int
	AllocationSizeMax  int
	UnusedRangeSizeMin int
	UnusedRangeSizeMax int
}

func (s *DetailedStatistics) Clear() {
	s.Statistics.Clear()
	s.UnusedRangeCount = 0
	s.AllocationSizeMin = math.MaxInt
	s.AllocationSizeMax = 0
	s.UnusedRangeSizeMin = math.MaxInt
	s.UnusedRangeSizeMax = 0
}

func (s *DetailedStatistics) AddUnusedRange(size int) {
	if size == 0 {
		return
	}

	s.UnusedRangeCount++

	if size < s.UnusedRangeSizeMin {
		s.UnusedRangeSizeMin = size
	}

	if size > s.UnusedRangeSizeMax {
		s.UnusedRangeSizeMax = size
	}
}

func (s *DetailedStatistics) AddAllocation(size int) {
	s.AllocationCount++
	s.AllocationBytes += size

	if size < s.AllocationSizeMin {
		s.AllocationSizeMin = size
	}

	if size > s.AllocationSizeMax {
		s.AllocationSizeMax = size
	}
}

func (s *DetailedStatistics) AddDetailedStatistics(other *DetailedStatistics) {
	s.Statistics.AddStatistics(&other.Statistics)
	s.UnusedRangeCount += other.UnusedRangeCount

	if other.UnusedRangeSizeMin < s.UnusedRangeSizeMin {
		s.UnusedRangeSizeMin = other.UnusedRangeSizeMin
	}

	if other.UnusedRangeSizeMax > s.UnusedRangeSizeMax {
		s.UnusedRangeSizeMax = other.UnusedRangeSizeMax
	}

	if other.AllocationSizeMin < s.AllocationSizeMin {
		s.AllocationSizeMin = other.AllocationSizeMin
	}

	if other.AllocationSizeMax > s.AllocationSizeMax {
		s.AllocationSizeMax = other.AllocationSizeMax
	}
}
