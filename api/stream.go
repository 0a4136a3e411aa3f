package api

import (
	"net/http"
	"time"

	"github.com/battlesnakeio/snake/rules"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"
)

const (
	streamBuffer = 8
	writeWait    = 5 * time.Second
)

// stream sends the current snapshot and then every change until the client
// goes away. Slow clients miss intermediate states.
func (s *Server) stream(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.WithError(err).Debug("unable to close websocket stream")
		}
	}()

	updates := make(chan rules.GameState, streamBuffer)
	cancel := s.source.Subscribe(func(st rules.GameState) {
		select {
		case updates <- st:
		default:
		}
	})
	defer cancel()

	// The read side only exists to notice the client closing.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if !writeState(conn, s.source.Snapshot()) {
		return
	}
	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case st := <-updates:
			if !writeState(conn, st) {
				return
			}
		}
	}
}

func writeState(conn *websocket.Conn, st rules.GameState) bool {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return false
	}
	if err := conn.WriteJSON(st); err != nil {
		log.WithError(err).Debug("websocket write failed")
		return false
	}
	return true
}
