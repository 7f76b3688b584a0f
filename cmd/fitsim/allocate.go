package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vkngwrapper/fitsim/memutils/metadata"
	"github.com/vkngwrapper/fitsim/vam"
)

func newAllocateCmd(opts *options) *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "allocate",
		Short: "Place processes into blocks with one strategy",
		Long: `The allocate command places each process, in order, into a block chosen by
the selected strategy and prints the block each process received.

Example:
  fitsim allocate --blocks 100,500,200,300,600 --processes 212,417,112,426 --strategy bestFit
  fitsim allocate --scenario scenario.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := opts.loadInput(cmd)
			if err != nil {
				return err
			}

			name := input.Strategy
			if cmd.Flags().Changed("strategy") || name == "" {
				name = strategy
			}

			allocator := opts.newAllocator(cmd.ErrOrStderr())
			selected, err := metadata.ParseStrategy(name)
			if err != nil {
				return err
			}

			run, err := allocator.Run(selected, input.Blocks, input.Processes)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.jsonOut {
				_, err = fmt.Fprintln(out, vam.BuildStatsString(run, true))
				return err
			}

			return renderAllocation(out, run)
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", "firstFit", "One of firstFit, nextFit, bestFit, worstFit")
	return cmd
}
