// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/spf13/cobra"

	"github.com/cybrota/arbor/avl"
	"github.com/cybrota/arbor/formats"
)

const asciiLogo = `
 █████╗ ██████╗ ██████╗  ██████╗ ██████╗
██╔══██╗██╔══██╗██╔══██╗██╔═══██╗██╔══██╗
███████║██████╔╝██████╔╝██║   ██║██████╔╝
██╔══██║██╔══██╗██╔══██╗██║   ██║██╔══██╗
██║  ██║██║  ██║██████╔╝╚██████╔╝██║  ██║
╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═╝  ╚═╝
Balanced tree traversals from a bracketed tree description [Version: %s%s%s]

Copyright @ Naren Yellavula
`

var mainLog = newChannel(tagMain)

// cliOptions holds the flags shared by every command
type cliOptions struct {
	format    string
	orders    []string
	separator string
	noColor   bool
	progress  bool
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	config, _ := LoadConfig()
	InitializeColors(config.Output.Color)

	if err := setupLogging(config.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  logging disabled: %v\n", err)
	}
	defer finaliseLogging()

	mainLog.Infof("arbor %s starting: %s", version, strings.Join(os.Args[1:], " "))

	if err := newRootCommand(config).Execute(); err != nil {
		mainLog.Errorf("%v", err)
		finaliseLogging()
		exitwithstatus.Message("Error: %s\n", err)
	}
}

func newRootCommand(config *Config) *cobra.Command {
	opts := &cliOptions{}
	logo := fmt.Sprintf(asciiLogo, Green, version, Reset)

	// effective merges the flags over the loaded configuration
	effective := func() (*Config, []avl.Order, error) {
		cfg := *config
		cfg.Output.Format = opts.format
		cfg.Output.Orders = opts.orders
		cfg.Output.Separator = opts.separator
		cfg.Output.Color = config.Output.Color && !opts.noColor
		cfg.Ingest.ShowProgress = opts.progress
		cfg.normalise()

		orders, err := cfg.orders()
		if err != nil {
			return nil, nil, err
		}
		return &cfg, orders, nil
	}

	load := func(args []string) (*Config, []avl.Order, *avl.Tree, IngestStats, error) {
		cfg, orders, err := effective()
		if err != nil {
			return nil, nil, nil, IngestStats{}, err
		}
		tree, stats, err := loadTree(inputPath(cfg, args), cfg)
		return cfg, orders, tree, stats, err
	}

	runTraversals := func(cmd *cobra.Command, args []string) error {
		cfg, orders, tree, stats, err := load(args)
		if err != nil {
			return err
		}
		return printTraversals(cmd.OutOrStdout(), tree, stats, cfg, orders)
	}

	var rootCmd = &cobra.Command{
		Use:           "arbor [file]",
		Version:       version,
		Long:          logo,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			InitializeColors(config.Output.Color && !opts.noColor)
		},
		// Default to the run command when no subcommand is provided
		RunE: runTraversals,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.format, "format", "f", config.Output.Format, "output format: text, plain, json or markdown")
	flags.StringSliceVar(&opts.orders, "orders", config.Output.Orders, "traversals to print: pre, in, post, level")
	flags.StringVar(&opts.separator, "separator", config.Output.Separator, "separator between keys")
	flags.BoolVar(&opts.noColor, "no-color", !config.Output.Color, "disable coloured output")
	flags.BoolVar(&opts.progress, "progress", config.Ingest.ShowProgress, "show a progress bar for large inputs")

	var cmdRun = &cobra.Command{
		Use:   "run [file]",
		Short: "Print the traversals of the balanced tree",
		Long:  fmt.Sprintf("%s\n%s", logo, `Run reads the first line of the input file, balances its keys and prints the configured traversals`),
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTraversals,
	}

	var order string
	var cmdTraverse = &cobra.Command{
		Use:   "traverse [file]",
		Short: "Print a single traversal",
		Long:  fmt.Sprintf("%s\n%s", logo, `Traverse prints one traversal order, keys only`),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := avl.ParseOrder(order)
			if err != nil {
				return err
			}
			cfg, _, tree, _, err := load(args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formats.JoinKeys(avl.Collect(tree.Walk(o)), cfg.Output.Separator))
			return err
		},
	}
	cmdTraverse.Flags().StringVarP(&order, "order", "o", "in", "traversal order: pre, in, post or level")

	var cmdDiagram = &cobra.Command{
		Use:   "diagram [file]",
		Short: "Draw the balanced tree",
		Long:  fmt.Sprintf("%s\n%s", logo, `Diagram draws the balanced tree sideways, right subtree on top, with each node's height and balance factor`),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, tree, _, err := load(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if tree.IsEmpty() {
				return nil
			}
			tree.Print(out)
			fmt.Fprintln(out)
			_, err = io.WriteString(out, describeLevels(tree, cfg.Output.Separator))
			return err
		},
	}

	var cmdCheck = &cobra.Command{
		Use:   "check [file]",
		Short: "Verify the tree invariants and print build statistics",
		Long:  fmt.Sprintf("%s\n%s", logo, `Check verifies ordering, balance, heights and node count of the balanced tree`),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, tree, stats, err := load(args)
			if err != nil {
				return err
			}
			return printCheck(cmd.OutOrStdout(), tree, stats)
		},
	}

	var cmdExplore = &cobra.Command{
		Use:   "explore [file]",
		Short: "Launch the interactive tree explorer",
		Long:  fmt.Sprintf("%s\n%s", logo, `Explore opens a terminal UI to insert keys and browse traversals`),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, tree, stats, err := load(args)
			if err != nil {
				// without an explicit file the explorer may start empty
				if len(args) > 0 || !errors.Is(err, os.ErrNotExist) {
					return err
				}
				tree, stats = avl.New(), IngestStats{}
			}
			return runBubbleTeaApp(tree, stats, cfg)
		},
	}

	var cmdDashboard = &cobra.Command{
		Use:   "dashboard [file]",
		Short: "Show the tree in a terminal dashboard",
		Long:  fmt.Sprintf("%s\n%s", logo, `Dashboard shows node counts per depth, traversals and build statistics`),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, tree, stats, err := load(args)
			if err != nil {
				return err
			}
			return runDashboard(tree, stats, cfg)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Arbor usage guide",
		Long:  fmt.Sprintf("%s\n%s", logo, `Usage displays the arbor CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Arbor version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating ~/.arbor.yaml when missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	rootCmd.AddCommand(cmdRun, cmdTraverse, cmdDiagram, cmdCheck, cmdExplore, cmdDashboard, cmdUsage, cmdVersion, cmdSettings)
	return rootCmd
}

func inputPath(cfg *Config, args []string) string {
	if len(args) > 0 && args[0] != "" {
		return expandHome(args[0])
	}
	return expandHome(cfg.Input.DefaultFile)
}

// printTraversals writes the requested orders in the configured format.
// An empty tree prints nothing.
func printTraversals(w io.Writer, tree *avl.Tree, stats IngestStats, cfg *Config, orders []avl.Order) error {
	if tree.IsEmpty() {
		return nil
	}

	manager := formats.NewFormatterManager(formats.Options{
		Separator: cfg.Output.Separator,
		Color:     cfg.Output.Color,
		Render:    cfg.Output.Color,
		Width:     80,
	})
	formatter, err := manager.Get(cfg.Output.Format)
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(manager.Names(), ", "))
	}

	report := formats.NewReport(tree, orders)
	report.Stats = stats.report()
	return formatter.Format(w, report)
}

func printCheck(w io.Writer, tree *avl.Tree, stats IngestStats) error {
	fmt.Fprintf(w, "📥 Keys read:          %d\n", stats.Keys)
	fmt.Fprintf(w, "🌳 Inserted:           %d\n", stats.Inserted)
	fmt.Fprintf(w, "♻️  Duplicates dropped: %d\n", stats.Duplicates)
	fmt.Fprintf(w, "📏 Height:             %d\n", tree.Height())
	fmt.Fprintf(w, "🔢 Nodes:              %d\n", tree.Len())
	fmt.Fprintf(w, "⏱️  Built in:           %s\n", FormatElapsed(stats.Elapsed))

	if err := tree.Check(); err != nil {
		fmt.Fprintf(w, "%s❌ %v%s\n", Red, err, Reset)
		return fmt.Errorf("invariant check failed: %w", err)
	}
	fmt.Fprintf(w, "%s✅ ordering, balance and heights hold%s\n", Green, Reset)
	return nil
}
