package main

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/vkngwrapper/fitsim/internal/scenario"
	"github.com/vkngwrapper/fitsim/memutils"
	"github.com/vkngwrapper/fitsim/vam"
	"golang.org/x/exp/slog"
)

type options struct {
	verbose   bool
	jsonOut   bool
	scenario  string
	blocks    string
	processes string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "fitsim",
		Short: "Simulate fixed-partition memory allocation",
		Long: `fitsim places processes into fixed memory blocks using first fit, next fit,
best fit, or worst fit, and compares how many processes each strategy manages
to place.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&opts.scenario, "scenario", "", "YAML file holding blocks, processes, and strategy")
	rootCmd.PersistentFlags().StringVar(&opts.blocks, "blocks", "", "Comma-separated block sizes, e.g. 100,500,200")
	rootCmd.PersistentFlags().StringVar(&opts.processes, "processes", "", "Comma-separated process sizes, e.g. 212,417")

	rootCmd.AddCommand(newAllocateCmd(opts))
	rootCmd.AddCommand(newCompareCmd(opts))
	return rootCmd
}

func (o *options) newAllocator(stderr io.Writer) *vam.Allocator {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	return vam.New(logger, vam.CreateOptions{})
}

// loadInput resolves blocks, processes, and strategy from the scenario file and flags. Flags
// take precedence over the scenario file.
func (o *options) loadInput(cmd *cobra.Command) (*scenario.Scenario, error) {
	input := &scenario.Scenario{Blocks: []int{}, Processes: []int{}}
	if o.scenario != "" {
		loaded, err := scenario.Load(o.scenario)
		if err != nil {
			return nil, err
		}
		input = loaded
	}

	if cmd.Flags().Changed("blocks") {
		blocks, err := memutils.ParseSizes(o.blocks, "blocks")
		if err != nil {
			return nil, err
		}
		input.Blocks = blocks
	}

	if cmd.Flags().Changed("processes") {
		processes, err := memutils.ParseSizes(o.processes, "processes")
		if err != nil {
			return nil, err
		}
		input.Processes = processes
	}

	if o.scenario == "" && !cmd.Flags().Changed("blocks") && !cmd.Flags().Changed("processes") {
		return nil, errors.New("either --scenario or --blocks and --processes must be provided")
	}

	return input, nil
}
