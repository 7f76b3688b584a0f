package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vkngwrapper/fitsim/vam"
)

func newCompareCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Compare all four strategies on the same input",
		Long: `The compare command runs first fit, next fit, best fit, and worst fit against
the same blocks and processes and reports how many processes each placed.

Example:
  fitsim compare --blocks 100,500,200,300,600 --processes 212,417,112,426`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := opts.loadInput(cmd)
			if err != nil {
				return err
			}

			allocator := opts.newAllocator(cmd.ErrOrStderr())
			summaries, err := allocator.Compare(input.Blocks, input.Processes)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.jsonOut {
				_, err = fmt.Fprintln(out, vam.BuildComparisonString(summaries))
				return err
			}

			return renderComparison(out, summaries)
		},
	}
}
