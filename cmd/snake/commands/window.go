package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/battlesnakeio/snake/window"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "play snake in a graphical window",
	Run: func(c *cobra.Command, args []string) {
		if cfg.LogFile != "" {
			closeLog, err := logToFile(cfg.LogFile)
			if err != nil {
				log.WithError(err).Fatal("unable to set up logging")
			}
			defer closeLog()
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		sess, teardown, err := newSession(ctx)
		if err != nil {
			log.WithError(err).Error("unable to start game")
			os.Exit(1)
		}
		defer teardown()

		ctx, cancel := context.WithCancel(ctx)
		done := make(chan error, 1)
		go func() { done <- sess.Run(ctx) }()

		if err := window.Run(ctx, sess); err != nil {
			log.WithError(err).Error("window failed")
		}
		cancel()
		if err := <-done; err != nil && err != context.Canceled {
			log.WithError(err).Error("session failed")
		}
	},
}
