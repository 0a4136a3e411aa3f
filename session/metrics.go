package session

import (
	"github.com/battlesnakeio/snake/rules"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ticksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "game",
		Name:      "ticks_total",
		Help:      "Ticks that advanced the snake or ended a round.",
	})
	foodEaten = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "game",
		Name:      "food_eaten_total",
		Help:      "Food items eaten.",
	})
	roundsEnded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "snake",
		Subsystem: "game",
		Name:      "rounds_ended_total",
		Help:      "Rounds that ended, by cause of death.",
	}, []string{"cause"})
)

func init() {
	prometheus.MustRegister(ticksTotal, foodEaten, roundsEnded)
}

func observeOutcome(o rules.Outcome, st rules.GameState) {
	if o == rules.OutcomeNone {
		return
	}
	ticksTotal.Inc()
	switch o {
	case rules.OutcomeAte:
		foodEaten.Inc()
	case rules.OutcomeDied:
		cause := "unknown"
		if st.Death != nil {
			cause = st.Death.Cause
		}
		roundsEnded.WithLabelValues(cause).Inc()
	}
}
