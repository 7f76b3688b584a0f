package metadata

// NoBlock is the assignment recorded for a process that could not be placed in any block
const NoBlock int = -1

// Suballocation is a single process resident in a block
type Suballocation struct {
	Process int
	Size    int
}

// DisplayIndex converts an assignment into a 1-based block number, with 0 meaning the process
// was not allocated
func DisplayIndex(assignment int) int {
	if assignment == NoBlock {
		return 0
	}
	return assignment + 1
}

// CountAllocated returns the number of assignments that name a block
func CountAllocated(assignments []int) int {
	count := 0
	for _, assignment := range assignments {
		if assignment != NoBlock {
			count++
		}
	}
	return count
}
