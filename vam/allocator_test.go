package vam

import (
	"bytes"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/fitsim/memutils"
	"github.com/vkngwrapper/fitsim/memutils/metadata"
	"golang.org/x/exp/slog"
)

func readyAllocator(t *testing.T, options CreateOptions) *Allocator {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	allocator := New(logger, options)
	require.NotNil(t, allocator)
	return allocator
}

func TestAllocate(t *testing.T) {
	allocator := readyAllocator(t, CreateOptions{})

	blocks := []int{100, 500, 200, 300, 600}
	processes := []int{212, 417, 112, 426}

	expected := map[metadata.Strategy][]int{
		metadata.StrategyFirstFit: {1, 4, 1, metadata.NoBlock},
		metadata.StrategyNextFit:  {1, 4, 1, metadata.NoBlock},
		metadata.StrategyBestFit:  {3, 1, 2, 4},
		metadata.StrategyWorstFit: {4, 1, 4, metadata.NoBlock},
	}

	for strategy, assignments := range expected {
		t.Run(strategy.String(), func(t *testing.T) {
			result, err := allocator.Allocate(strategy, blocks, processes)
			require.NoError(t, err)
			require.Equal(t, assignments, result)

			named, err := allocator.AllocateNamed(strategy.String(), blocks, processes)
			require.NoError(t, err)
			require.Equal(t, assignments, named)

			require.Equal(t, []int{100, 500, 200, 300, 600}, blocks)
			require.Equal(t, []int{212, 417, 112, 426}, processes)
		})
	}
}

func TestAllocateUnknownStrategy(t *testing.T) {
	var logs bytes.Buffer
	allocator := New(slog.New(slog.NewTextHandler(&logs, nil)), CreateOptions{})

	result, err := allocator.AllocateNamed("buddySystem", []int{100}, []int{10})
	require.ErrorIs(t, err, memutils.ErrUnknownStrategy)
	require.Nil(t, result)
	require.Contains(t, logs.String(), "rejected allocation run")

	result, err = allocator.Allocate(metadata.Strategy(12), []int{100}, []int{10})
	require.ErrorIs(t, err, memutils.ErrUnknownStrategy)
	require.Nil(t, result)
}

func TestAllocateInvalidInput(t *testing.T) {
	allocator := readyAllocator(t, CreateOptions{})

	result, err := allocator.Allocate(metadata.StrategyFirstFit, []int{100, -100}, []int{10})
	require.ErrorIs(t, err, memutils.ErrInvalidInput)
	require.Nil(t, result)

	result, err = allocator.Allocate(metadata.StrategyWorstFit, []int{100}, []int{10, 20, -1})
	require.ErrorIs(t, err, memutils.ErrInvalidInput)
	require.Nil(t, result)
}

func TestAllocateEmptyInputs(t *testing.T) {
	allocator := readyAllocator(t, CreateOptions{})

	for _, strategy := range metadata.Strategies {
		result, err := allocator.Allocate(strategy, []int{1, 2, 3}, nil)
		require.NoError(t, err)
		require.NotNil(t, result)
		require.Empty(t, result)

		result, err = allocator.Allocate(strategy, nil, []int{1, 2})
		require.NoError(t, err)
		require.Equal(t, []int{metadata.NoBlock, metadata.NoBlock}, result)
	}
}

func TestAllocateZeroSize(t *testing.T) {
	allocator := readyAllocator(t, CreateOptions{})

	for _, strategy := range metadata.Strategies {
		result, err := allocator.Allocate(strategy, []int{0, 0}, []int{0, 0, 0})
		require.NoError(t, err)
		require.Equal(t, 3, metadata.CountAllocated(result))
	}
}

func TestRunRecord(t *testing.T) {
	allocator := readyAllocator(t, CreateOptions{})

	run, err := allocator.Run(metadata.StrategyBestFit, []int{100, 50, 200}, []int{60, 40, 300})
	require.NoError(t, err)

	require.Equal(t, metadata.StrategyBestFit, run.Strategy())
	require.Equal(t, []int{0, 0, metadata.NoBlock}, run.Assignments())
	require.Equal(t, []int{0, 50, 200}, run.Remaining())
	require.Equal(t, []int{60, 40, 300}, run.ProcessSizes())
	require.Equal(t, 2, run.Allocated())
	require.Equal(t, 1, run.NotAllocated())
	require.Equal(t, []metadata.Suballocation{{Process: 0, Size: 60}, {Process: 1, Size: 40}}, run.Residents(0))

	stats := run.Statistics()
	require.Equal(t, 3, stats.BlockCount)
	require.Equal(t, 350, stats.BlockBytes)
	require.Equal(t, 2, stats.AllocationCount)
	require.Equal(t, 100, stats.AllocationBytes)
	require.Equal(t, 1, stats.FailedCount)
	require.Equal(t, 300, stats.FailedBytes)
	require.Equal(t, 2, stats.UnusedRangeCount)

	other, err := allocator.Run(metadata.StrategyBestFit, []int{100, 50, 200}, []int{60, 40, 300})
	require.NoError(t, err)
	require.NotEqual(t, run.ID(), other.ID())

	assignments := run.Assignments()
	assignments[0] = 99
	require.Equal(t, 0, run.Assignments()[0])
}

func TestPlacementCallbacks(t *testing.T) {
	type placement struct {
		Strategy metadata.Strategy
		Process  int
		Block    int
		Size     int
	}

	var placed []placement
	var rejected []placement
	var allocator *Allocator

	allocator = readyAllocator(t, CreateOptions{
		PlacementCallbacks: &PlacementCallbackOptions{
			Place: func(a *Allocator, strategy metadata.Strategy, process, block, size int, userData interface{}) {
				require.Same(t, allocator, a)
				require.Equal(t, "user data", userData)
				placed = append(placed, placement{strategy, process, block, size})
			},
			Reject: func(a *Allocator, strategy metadata.Strategy, process, size int, userData interface{}) {
				require.Equal(t, "user data", userData)
				rejected = append(rejected, placement{strategy, process, metadata.NoBlock, size})
			},
			UserData: "user data",
		},
	})

	_, err := allocator.Allocate(metadata.StrategyNextFit, []int{10, 10}, []int{2, 20, 2})
	require.NoError(t, err)

	require.Equal(t, []placement{
		{metadata.StrategyNextFit, 0, 0, 2},
		{metadata.StrategyNextFit, 2, 1, 2},
	}, placed)
	require.Equal(t, []placement{
		{metadata.StrategyNextFit, 1, metadata.NoBlock, 20},
	}, rejected)
}

func TestNilLogger(t *testing.T) {
	allocator := New(nil, CreateOptions{})

	result, err := allocator.Allocate(metadata.StrategyFirstFit, []int{10}, []int{5})
	require.NoError(t, err)
	require.Equal(t, []int{0}, result)
}

func TestConcurrentRuns(t *testing.T) {
	allocator := readyAllocator(t, CreateOptions{})
	blocks := []int{100, 500, 200, 300, 600}
	processes := []int{212, 417, 112, 426}

	var wg sync.WaitGroup
	results := make([][]ComparisonSummary, 16)
	errs := make([]error, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = allocator.Compare(blocks, processes)
		}(i)
	}
	wg.Wait()

	for i, summaries := range results {
		require.NoError(t, errs[i])
		require.Equal(t, results[0], summaries)
	}
	require.Equal(t, results[0], allocator.LastComparison())
}

func TestCreateFlagsString(t *testing.T) {
	require.Equal(t, "AllocatorCreateExternallySynchronized", AllocatorCreateExternallySynchronized.String())
	require.Equal(t, "", CreateFlags(0).String())
}
