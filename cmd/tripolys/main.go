// Command tripolys generates and analyses triads: orientations of a tree
// with a single degree-3 vertex, the minimal structural probes used to
// study the complexity of constraint satisfaction over a target digraph.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/WhatDothLife/triads-sub000/consistency"
	"github.com/WhatDothLife/triads-sub000/digraph"
	"github.com/WhatDothLife/triads-sub000/polymorphism"
	"github.com/WhatDothLife/triads-sub000/triad"
)

// ErrArguments reports a configuration error: mutually exclusive inputs
// given together, an unparsable range, or an unknown polymorphism or
// engine name.
var ErrArguments = errors.New("tripolys: invalid arguments")

var (
	flagLength  string
	flagNodes   string
	flagDataDir string
	flagDOT     bool
	flagIsCore  bool
	flagPoly    string
	flagEngine  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, ErrArguments) {
		return 2
	}

	return 1
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tripolys [triad]",
		Short:         "Generate and analyse triads",
		Args:          cobra.MaximumNArgs(1),
		RunE:          runRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagLength, "length", "", "maximum arm length (number or N-M range)")
	cmd.Flags().StringVar(&flagNodes, "nodes", "", "total node count (number or N-M range)")
	cmd.Flags().StringVar(&flagDataDir, "data", "./data", "cache data directory")
	cmd.Flags().BoolVar(&flagDOT, "dot", false, "print the triad's digraph in DOT format")
	cmd.Flags().BoolVar(&flagIsCore, "is-core", false, "test whether the triad is a core")
	cmd.Flags().StringVar(&flagPoly, "polymorphism", "", "polymorphism identity to search for (commutative, majority, siggers, wnu3, wnu34)")
	cmd.Flags().StringVar(&flagEngine, "engine", "ac3", "consistency engine for --is-core (ac1, ac3, sac1, sac2)")

	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	inputs := 0
	if len(args) == 1 {
		inputs++
	}
	if flagLength != "" {
		inputs++
	}
	if flagNodes != "" {
		inputs++
	}
	if inputs != 1 {
		return fmt.Errorf("%w: exactly one of a triad literal, --length, or --nodes is required", ErrArguments)
	}

	switch {
	case len(args) == 1:
		return runLiteral(cmd, args[0])
	case flagLength != "":
		return runGenerate(cmd, flagLength, triad.ByLength)
	default:
		return runGenerate(cmd, flagNodes, triad.ByNodes)
	}
}

func runLiteral(cmd *cobra.Command, literal string) error {
	tr, err := triad.Parse(literal)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArguments, err)
	}

	g := tr.Digraph()

	if flagDOT {
		if err := digraph.WriteDOT(cmd.OutOrStdout(), g, strconv.Itoa); err != nil {
			return err
		}
	}

	if flagIsCore {
		engine, err := parseEngine(flagEngine)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), isCoreWithEngine(g, engine))
	}

	if flagPoly != "" {
		return runPolymorphism(cmd, g, flagPoly)
	}

	return nil
}

func runPolymorphism(cmd *cobra.Command, g *digraph.Digraph[int], name string) error {
	kind, err := parsePolymorphismKind(name)
	if err != nil {
		return err
	}

	p, ok := polymorphism.Find(g, kind)
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "no polymorphism found")

		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), p.String())

	return nil
}

func runGenerate(cmd *cobra.Command, spec string, constraint triad.Constraint) error {
	lo, hi, err := parseRange(spec)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrArguments, err)
	}

	gen := triad.NewGenerator(flagDataDir)

	lists, err := gen.GenerateRange(lo, hi, constraint)
	if err != nil {
		return err
	}

	for i, list := range lists {
		for _, tr := range list {
			fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", lo+i, tr.String())
		}
	}

	return nil
}

func isCoreWithEngine(g *digraph.Digraph[int], engine consistency.Engine[int, int]) bool {
	d, ok := engine(g, g, nil)
	if !ok {
		return false
	}
	for _, v := range g.Vertices() {
		if d.Size(v) != 1 {
			return false
		}
	}

	return true
}

func parseRange(spec string) (int, int, error) {
	parts := strings.SplitN(spec, "-", 2)

	lo, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, err
	}
	if len(parts) == 1 {
		return lo, lo, nil
	}

	hi, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, err
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("empty range %q", spec)
	}

	return lo, hi, nil
}

func parsePolymorphismKind(name string) (polymorphism.Kind, error) {
	switch name {
	case "commutative":
		return polymorphism.Commutative, nil
	case "majority":
		return polymorphism.Majority, nil
	case "siggers":
		return polymorphism.Siggers, nil
	case "wnu3":
		return polymorphism.WNU3, nil
	case "wnu34":
		return polymorphism.WNU34, nil
	default:
		return 0, fmt.Errorf("%w: unknown polymorphism %q", ErrArguments, name)
	}
}

func parseEngine(name string) (consistency.Engine[int, int], error) {
	switch name {
	case "ac1":
		return consistency.AC1Precolour[int, int], nil
	case "ac3":
		return consistency.AC3Precolour[int, int], nil
	case "sac1":
		return consistency.SAC1Precolour[int, int], nil
	case "sac2":
		return consistency.SACOptPrecolour[int, int], nil
	default:
		return nil, fmt.Errorf("%w: unknown engine %q", ErrArguments, name)
	}
}
