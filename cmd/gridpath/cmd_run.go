package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/animate"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/layout"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/session"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		algo    string
		in      string
		delayMs int
		frames  bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one search headlessly over a layout and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if algo == "" {
				algo = a.cfg.Algorithm
			}
			delay := a.cfg.StepDelay()
			if cmd.Flags().Changed("delay") {
				delay = time.Duration(delayMs) * time.Millisecond
			}

			l, err := readLayout(in)
			if err != nil {
				return err
			}
			g, err := grid.New(grid.WithDimensions(a.cfg.Grid.Rows, a.cfg.Grid.Cols))
			if err != nil {
				return err
			}
			if err := layout.Import(l, g); err != nil {
				return err
			}
			sched, err := animate.New(animate.WithDelay(delay), animate.WithLogger(a.log))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			term := render.NewTerminal(out, g.Snapshot(), frames)
			sess := session.New(g, sched, session.WithSink(term), session.WithLogger(a.log))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			rep, err := sess.Run(ctx, search.Algorithm(algo))
			if err != nil {
				return err
			}
			if !frames {
				term.Flush()
			}
			fmt.Fprintf(out, "%s: %s, visited %d, path length %d\n", rep.Algorithm, rep.Result, rep.Visited, rep.PathLen())
			return nil
		},
	}
	cmd.Flags().StringVarP(&algo, "algorithm", "a", "", "bfs, dfs, dijkstra or astar (default from config)")
	cmd.Flags().StringVarP(&in, "layout", "l", "", "layout file to load (.json, .yaml or .yml)")
	cmd.Flags().IntVarP(&delayMs, "delay", "d", 0, "pause after each event in milliseconds (default from config)")
	cmd.Flags().BoolVar(&frames, "frames", false, "print a frame after every event")
	_ = cmd.MarkFlagRequired("layout")
	return cmd
}
