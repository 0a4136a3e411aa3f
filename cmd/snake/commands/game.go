package commands

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/battlesnakeio/snake/api"
	"github.com/battlesnakeio/snake/highscore/backend"
	"github.com/battlesnakeio/snake/highscore/filestore"
	"github.com/battlesnakeio/snake/rules"
	"github.com/battlesnakeio/snake/session"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// newSession wires the store, the simulation and the optional servers
// around one session. The returned func tears everything down.
func newSession(ctx context.Context) (*session.Session, func(), error) {
	store, release, err := backend.Open(cfg.Backend, cfg.BackendArgs)
	if err != nil {
		return nil, nil, err
	}

	sim := rules.NewSimulation(ctx, rules.Config{Store: store})
	sess := session.New(sim, cfg.TickInterval())

	cleanups := []func(){release}
	if cfg.API.Listen != "" {
		srv := api.New(cfg.API.Listen, sess, sim.Grid(), cfg.Limiter())
		go srv.WaitForExit()
		cleanups = append(cleanups, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				log.WithError(err).Warn("status api did not shut down cleanly")
			}
		})
	}
	prometheus()

	teardown := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}
	return sess, teardown, nil
}

func prometheus() {
	if !cfg.Prometheus.Enabled {
		log.Debug("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", cfg.Prometheus.Listen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(cfg.Prometheus.Listen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}

// logToFile sends logs to path, or the default log file when path is empty.
func logToFile(path string) (func(), error) {
	if path == "" {
		path = filepath.Join(filestore.DefaultDir(), "snake.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, errors.Wrap(err, "unable to create log directory")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open log file")
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}
