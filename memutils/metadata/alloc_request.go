package metadata

// AllocationRequest is a type returned from PartitionTable.CreateAllocationRequest which indicates
// which block the table intends to place a process in. It can be committed with PartitionTable.Alloc.
type AllocationRequest struct {
	// BlockIndex is the 0-based index of the chosen block
	BlockIndex int
	// Size is the size of the process being placed
	Size int
	// Remaining is the chosen block's remaining capacity at the time the request was created
	Remaining int
	// Strategy is the strategy that produced this request
	Strategy Strategy
}
