package vam

import (
	"io"
	"strings"

	"github.com/vkngwrapper/fitsim/vam/internal/utils"
	"golang.org/x/exp/slog"
)

// CreateFlags indicate specific allocator behaviors to activate or deactivate
type CreateFlags int32

const (
	// AllocatorCreateExternallySynchronized ensures that the allocator will not be synchronized
	// internally. Allocation runs never share state, but the comparison snapshot retained by
	// Compare does; with this flag the consumer must guarantee that Compare and LastComparison
	// are not called concurrently.
	AllocatorCreateExternallySynchronized CreateFlags = 1 << iota
)

var createFlagsMapping = map[CreateFlags]string{
	AllocatorCreateExternallySynchronized: "AllocatorCreateExternallySynchronized",
}

func (f CreateFlags) String() string {
	var names []string
	for flag, name := range createFlagsMapping {
		if f&flag != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// CreateOptions contains optional settings when creating an allocator
type CreateOptions struct {
	// Flags indicates specific allocator behaviors to activate or deactivate
	Flags CreateFlags

	// PlacementCallbacks is an optional set of callbacks that will be executed as each process
	// is placed in, or turned away from, a block during a run
	PlacementCallbacks *PlacementCallbackOptions
}

// New creates a new Allocator
//
// logger - Receives debug output for each run. If nil, output is discarded.
//
// options - Optional parameters: it is valid to leave all the fields blank
func New(logger *slog.Logger, options CreateOptions) *Allocator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	allocator := &Allocator{
		logger: logger,
		comparisonMutex: utils.OptionalRWMutex{
			UseMutex: options.Flags&AllocatorCreateExternallySynchronized == 0,
		},
	}
	allocator.callbacks = placementCallbacks{
		Callbacks: options.PlacementCallbacks,
		Allocator: allocator,
	}

	logger.Debug("Allocator::New", slog.String("Flags", options.Flags.String()))
	return allocator
}
