package papertrade

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestServerMarketEndpoint(t *testing.T) {
	s := newTestSession(NewMemStore())
	srv := httptest.NewServer(NewServer(s).Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/api/market")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var update struct {
		Securities []json.RawMessage `json:"securities"`
		Wallet     Money             `json:"wallet"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&update); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(update.Securities) != 25 {
		t.Errorf("market carries %d securities, want 25", len(update.Securities))
	}
	if !update.Wallet.Equal(DefaultOpeningBalance) {
		t.Errorf("wallet = %s, want the opening balance", update.Wallet)
	}
}

func TestServerHoldingsEndpoint(t *testing.T) {
	s := newTestSession(NewMemStore())
	if _, err := s.Buy("TCS", 2); err != nil {
		t.Fatalf("buy: %v", err)
	}
	srv := httptest.NewServer(NewServer(s).Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/api/holdings")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	var holdings []struct {
		Ticker   string `json:"ticker"`
		Quantity int64  `json:"quantity"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&holdings); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(holdings) != 1 || holdings[0].Ticker != "TCS" || holdings[0].Quantity != 2 {
		t.Errorf("holdings = %+v", holdings)
	}
}

func TestServerStreamPushesTicks(t *testing.T) {
	s := newTestSession(NewMemStore())
	srv := httptest.NewServer(NewServer(s).Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// the handler may not have subscribed yet right after the handshake,
	// so keep ticking until an update comes through
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-done:
				return
			case <-time.After(10 * time.Millisecond):
				s.Tick()
			}
		}
	}()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var update Update
	if err := conn.ReadJSON(&update); err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(update.Securities) != 25 {
		t.Errorf("update carries %d securities, want 25", len(update.Securities))
	}
}
