package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/animate"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/server"
	"github.com/katalvlaran/gridpath/session"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the grid over HTTP and stream animations over a websocket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if listen == "" {
				listen = a.cfg.Server.Listen
			}
			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			g, err := grid.New(grid.WithDimensions(a.cfg.Grid.Rows, a.cfg.Grid.Cols))
			if err != nil {
				return err
			}
			sched, err := animate.New(
				animate.WithDelay(a.cfg.StepDelay()),
				animate.WithLogger(a.log),
				animate.WithMetrics(animate.NewMetrics(reg)),
			)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			hub := server.NewHub(a.log)
			sess := session.New(g, sched, session.WithSink(hub), session.WithLogger(a.log))
			httpSrv := &http.Server{
				Addr:              listen,
				Handler:           server.New(ctx, sess, hub, reg, a.log),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errc := make(chan error, 1)
			go func() { errc <- httpSrv.ListenAndServe() }()
			a.log.WithField("listen", listen).Info("gridpath serving")

			select {
			case err := <-errc:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}
			a.log.Info("shutting down")
			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return httpSrv.Shutdown(sctx)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default from config)")
	return cmd
}
