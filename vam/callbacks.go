package vam

import "github.com/vkngwrapper/fitsim/memutils/metadata"

// PlaceProcessCallback is called when a process has been placed in a block during a run
type PlaceProcessCallback func(
	allocator *Allocator,
	strategy metadata.Strategy,
	process int,
	block int,
	size int,
	userData interface{},
)

// RejectProcessCallback is called when no block could hold a process during a run
type RejectProcessCallback func(
	allocator *Allocator,
	strategy metadata.Strategy,
	process int,
	size int,
	userData interface{},
)

// PlacementCallbackOptions are optional callbacks that an Allocator invokes during each run.
// UserData is passed through to both callbacks unchanged.
type PlacementCallbackOptions struct {
	Place    PlaceProcessCallback
	Reject   RejectProcessCallback
	UserData interface{}
}

type placementCallbacks struct {
	Callbacks *PlacementCallbackOptions
	Allocator *Allocator
}

func (c *placementCallbacks) Place(
	strategy metadata.Strategy,
	process int,
	block int,
	size int,
) {
	if c.Callbacks != nil && c.Callbacks.Place != nil {
		c.Callbacks.Place(c.Allocator, strategy, process, block, size, c.Callbacks.UserData)
	}
}

func (c *placementCallbacks) Reject(
	strategy metadata.Strategy,
	process int,
	size int,
) {
	if c.Callbacks != nil && c.Callbacks.Reject != nil {
		c.Callbacks.Reject(c.Allocator, strategy, process, size, c.Callbacks.UserData)
	}
}
