package metadata

func (t *PartitionTable) findFirstFit(size int) int {
	for block, remaining := range t.remaining {
		if remaining >= size {
			return block
		}
	}

	return NoBlock
}

func (t *PartitionTable) findNextFit(size int) int {
	blockCount := len(t.remaining)
	for i := 0; i < blockCount; i++ {
		block := (t.cursor + i) % blockCount
		if t.remaining[block] >= size {
			return block
		}
	}

	return NoBlock
}

func (t *PartitionTable) findBestFit(size int) int {
	best := NoBlock
	for block, remaining := range t.remaining {
		if remaining < size {
			continue
		}

		if best == NoBlock || remaining < t.remaining[best] {
			best = block
		}
	}

	return best
}

func (t *PartitionTable) findWorstFit(size int) int {
	worst := NoBlock
	for block, remaining := range t.remaining {
		if remaining < size {
			continue
		}

		if worst == NoBlock || remaining > t.remaining[worst] {
			worst = block
		}
	}

	return worst
}

// Run places every process, in index order, into a fresh PartitionTable built from the
// provided block capacities and returns one assignment per process. Neither input slice is
// modified. memutils.ErrInvalidInput is returned, with no assignments, if any capacity or size
// is negative, and memutils.ErrUnknownStrategy if the strategy is not recognized.
func Run(strategy Strategy, blockCapacities, processSizes []int) ([]int, error) {
	table, err := NewPartitionTable(blockCapacities)
	if err != nil {
		return nil, err
	}

	return table.Place(strategy, processSizes, nil)
}

// FirstFit runs StrategyFirstFit. See Run.
func FirstFit(blockCapacities, processSizes []int) ([]int, error) {
	return Run(StrategyFirstFit, blockCapacities, processSizes)
}

// NextFit runs StrategyNextFit. See Run.
func NextFit(blockCapacities, processSizes []int) ([]int, error) {
	return Run(StrategyNextFit, blockCapacities, processSizes)
}

// BestFit runs StrategyBestFit. See Run.
func BestFit(blockCapacities, processSizes []int) ([]int, error) {
	return Run(StrategyBestFit, blockCapacities, processSizes)
}

// WorstFit runs StrategyWorstFit. See Run.
func WorstFit(blockCapacities, processSizes []int) ([]int, error) {
	return Run(StrategyWorstFit, blockCapacities, processSizes)
}
