package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestBroadcastReachesEveryConnection(t *testing.T) {
	hub := NewRealtimeHub()
	upgrader := websocket.Upgrader{}
	registered := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		hub.Register(&WSClient{UserID: 1, Conn: conn})
		registered <- struct{}{}
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	<-registered

	// concurrent broadcasters must not interleave frames on the single
	// connection; every event arrives intact
	const writers, perWriter = 4, 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				hub.Broadcast(1, SessionEvent{Type: EventAnalyzing})
			}
		}()
	}

	for i := 0; i < writers*perWriter; i++ {
		conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if !strings.Contains(string(msg), EventAnalyzing) {
			t.Fatalf("unexpected frame: %s", msg)
		}
	}
	wg.Wait()
}

func TestUnregisterStopsDelivery(t *testing.T) {
	hub := NewRealtimeHub()
	upgrader := websocket.Upgrader{}
	clients := make(chan *WSClient, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		client := &WSClient{UserID: 2, Conn: conn}
		hub.Register(client)
		clients <- client
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	client := <-clients
	hub.Unregister(client)
	hub.Broadcast(2, SessionEvent{Type: EventProgressSaved})

	conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatal("unregistered connection still received a broadcast")
	}
}
