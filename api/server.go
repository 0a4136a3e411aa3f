// Package api serves a read only view of the running game over HTTP.
package api

import (
	"context"
	"encoding/json"
	"image/png"
	"net/http"

	"github.com/battlesnakeio/snake/board"
	"github.com/battlesnakeio/snake/render"
	"github.com/battlesnakeio/snake/rules"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Source is where the server reads game state from.
type Source interface {
	Snapshot() rules.GameState
	Subscribe(fn func(rules.GameState)) func()
}

// Server is the status API.
type Server struct {
	hs       *http.Server
	source   Source
	grid     board.Grid
	limiter  *rate.Limiter
	upgrader websocket.Upgrader
}

// New builds a server listening on addr. A nil limiter disables rate
// limiting.
func New(addr string, source Source, grid board.Grid, limiter *rate.Limiter) *Server {
	s := &Server{
		source:  source,
		grid:    grid,
		limiter: limiter,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Spectating is read only, any page may watch.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	router := httprouter.New()
	router.GET("/status", s.status)
	router.GET("/highscore", s.highScore)
	router.GET("/board.png", s.boardPNG)
	router.GET("/stream", s.stream)

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	}).Handler(router)

	s.hs = &http.Server{
		Addr:    addr,
		Handler: s.rateLimit(handler),
	}
	return s
}

// Handler returns the root handler, routes and middleware included.
func (s *Server) Handler() http.Handler {
	return s.hs.Handler
}

// WaitForExit serves until the server is shut down.
func (s *Server) WaitForExit() {
	log.WithField("addr", s.hs.Addr).Info("status api listening")
	err := s.hs.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.WithError(err).Error("error while listening")
	}
}

// Shutdown stops the server, waiting for requests in flight.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.hs.Shutdown(ctx)
}

func (s *Server) rateLimit(next http.Handler) http.Handler {
	if s.limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, s.source.Snapshot())
}

type highScoreResponse struct {
	HighScore int `json:"highScore"`
}

func (s *Server) highScore(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, highScoreResponse{HighScore: s.source.Snapshot().HighScore})
}

func (s *Server) boardPNG(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	img := render.Raster{Grid: s.grid}.Draw(s.source.Snapshot())
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := png.Encode(w, img); err != nil {
		log.WithError(err).Error("unable to encode board")
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("unable to write response")
	}
}
