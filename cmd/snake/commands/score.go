package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/battlesnakeio/snake/highscore"
	"github.com/battlesnakeio/snake/highscore/backend"
	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	scoreKey     = highscore.DefaultKey
	scoreVerbose = false
)

func init() {
	scoreCmd.PersistentFlags().StringVarP(&scoreKey, "key", "k", scoreKey, "key the high score is stored under")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", scoreVerbose, "dump the backend settings too")
	scoreCmd.AddCommand(scoreResetCmd)
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "prints the stored high score",
	Run: func(c *cobra.Command, args []string) {
		store, release, err := backend.Open(cfg.Backend, cfg.BackendArgs)
		if err != nil {
			log.WithError(err).Error("unable to open store")
			os.Exit(1)
		}
		defer release()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		score, err := store.Get(ctx, scoreKey)
		if err == highscore.ErrNotFound {
			score, err = 0, nil
		}
		if err != nil {
			log.WithError(err).Error("unable to read high score")
			os.Exit(1)
		}
		if scoreVerbose {
			spew.Dump(cfg)
		}
		fmt.Println(score)
	},
}

var scoreResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "sets the stored high score back to zero",
	Run: func(c *cobra.Command, args []string) {
		store, release, err := backend.Open(cfg.Backend, cfg.BackendArgs)
		if err != nil {
			log.WithError(err).Error("unable to open store")
			os.Exit(1)
		}
		defer release()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := store.Set(ctx, scoreKey, 0); err != nil {
			log.WithError(err).Error("unable to reset high score")
			os.Exit(1)
		}
		log.WithField("key", scoreKey).Info("high score reset")
	},
}
