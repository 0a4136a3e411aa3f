package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/battlesnakeio/snake/input"
	"github.com/battlesnakeio/snake/render"
	"github.com/battlesnakeio/snake/rules"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play snake in the terminal",
	Run: func(c *cobra.Command, args []string) {
		if err := play(); err != nil {
			log.WithError(err).Error("game failed")
			c.PrintErrln(err)
			os.Exit(1)
		}
	},
}

func play() error {
	// termbox owns the terminal, logs go to a file instead.
	closeLog, err := logToFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sess, teardown, err := newSession(ctx)
	if err != nil {
		return err
	}
	defer teardown()

	if err = termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	term := render.NewTerminal(render.TermboxScreen(), sess.Sim.Grid())
	unsubscribe := sess.Subscribe(func(st rules.GameState) {
		if err := term.Draw(st); err != nil {
			log.WithError(err).Error("unable to draw")
		}
	})
	defer unsubscribe()

	done := make(chan struct{})
	defer close(done)
	go pollEvents(sess.Send, done)

	err = sess.Run(ctx)
	termbox.Interrupt()
	if err == context.Canceled {
		return nil
	}
	return err
}

// pollEvents feeds key presses to send until done is closed.
func pollEvents(send func(input.Action) bool, done <-chan struct{}) {
	for {
		ev := termbox.PollEvent()
		select {
		case <-done:
			return
		default:
		}
		if ev.Type == termbox.EventInterrupt {
			return
		}
		send(input.FromTermbox(ev))
	}
}
