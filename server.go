package papertrade

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

// Server exposes a read-only HTTP view over a running session: JSON
// snapshots of the market and holdings, and a websocket stream that pushes
// an update on every tick and trade. It is a presentation adapter; all
// mutations still go through the session's command surface.
type Server struct {
	session  *Session
	upgrader websocket.Upgrader
}

// NewServer creates a server over the session.
func NewServer(s *Session) *Server {
	return &Server{session: s}
}

// Handler returns the routes of the server.
func (srv *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/market", srv.handleMarket)
	mux.HandleFunc("GET /api/holdings", srv.handleHoldings)
	mux.HandleFunc("GET /api/watchlist", srv.handleWatchlist)
	mux.HandleFunc("/ws", srv.handleStream)
	return mux
}

func (srv *Server) handleMarket(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, Update{Securities: srv.session.Securities(), Wallet: srv.session.Balance()})
}

func (srv *Server) handleHoldings(w http.ResponseWriter, r *http.Request) {
	type holding struct {
		Ticker      string `json:"ticker"`
		Quantity    int64  `json:"quantity"`
		AverageCost Money  `json:"avgCost"`
	}
	var holdings []holding
	for _, p := range srv.session.Positions() {
		holdings = append(holdings, holding{Ticker: p.Ticker(), Quantity: p.Quantity(), AverageCost: p.AverageCost()})
	}
	writeJSON(w, holdings)
}

func (srv *Server) handleWatchlist(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, srv.session.Watchlist())
}

// handleStream upgrades to a websocket and forwards session updates until
// the peer goes away.
func (srv *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := srv.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("warning: websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	updates, cancel := srv.session.Subscribe()
	defer cancel()

	// drain the reader so close frames are processed
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if err := conn.WriteJSON(update); err != nil {
				return
			}
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("warning: could not write response: %v", err)
	}
}
