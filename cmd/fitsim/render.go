package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/vkngwrapper/fitsim/memutils/metadata"
	"github.com/vkngwrapper/fitsim/vam"
)

// renderAllocation prints the per-process table followed by a bar chart of block numbers
func renderAllocation(out io.Writer, run *vam.Run) error {
	fmt.Fprintf(out, "Memory Allocation Result (%s):\n\n", run.Strategy())

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Process No.\tProcess Size\tBlock No.")

	sizes := run.ProcessSizes()
	assignments := run.Assignments()
	for process, block := range assignments {
		blockNo := "Not Allocated"
		if block != metadata.NoBlock {
			blockNo = fmt.Sprint(metadata.DisplayIndex(block))
		}
		fmt.Fprintf(w, "%d\t%d\t%s\n", process+1, sizes[process], blockNo)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(assignments) == 0 {
		return nil
	}

	fmt.Fprintln(out, "\nBlock No.")
	for process, block := range assignments {
		display := metadata.DisplayIndex(block)
		_, err := fmt.Fprintf(out, "Process %-4d|%s %d\n", process+1, strings.Repeat("#", display*2), display)
		if err != nil {
			return err
		}
	}
	return nil
}

func renderComparison(out io.Writer, summaries []vam.ComparisonSummary) error {
	fmt.Fprint(out, "Comparison Result:\n\n")

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Algorithm\tAllocated Processes\tNot Allocated Processes")
	for _, summary := range summaries {
		fmt.Fprintf(w, "%s\t%d\t%d\n", summary.Name(), summary.Allocated, summary.NotAllocated)
	}
	return w.Flush()
}
