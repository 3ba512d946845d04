package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quizhub/models"

	"github.com/gorilla/websocket"
)

// startRatingServer upgrades inbound connections and registers them on the
// hub, the way the production handler does
func startRatingServer(t *testing.T) (string, chan *RatingClient) {
	registered := make(chan *RatingClient, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := &RatingClient{Conn: conn}
		RegisterRatingClient(client)
		registered <- client
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http"), registered
}

func clientRegistered(client *RatingClient) bool {
	ratingMutex.RLock()
	defer ratingMutex.RUnlock()
	return ratingClients[client]
}

func TestBroadcastDeliversUpdate(t *testing.T) {
	url, registered := startRatingServer(t)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Failed to dial test server: %v", err)
	}
	defer conn.Close()
	client := <-registered
	defer UnregisterRatingClient(client)

	BroadcastRatingUpdate([]models.RatingEntry{{Rank: 1, Name: "Мария", Score: 2}})

	conn.SetReadDeadline(time.Now().Add(time.Second))
	var update models.RatingUpdate
	if err := conn.ReadJSON(&update); err != nil {
		t.Fatalf("Failed to read broadcast: %v", err)
	}
	if update.Type != "rating" || len(update.Items) != 1 || update.Items[0].Name != "Мария" {
		t.Errorf("Unexpected update: %+v", update)
	}
}

func TestBroadcastUnregistersDeadClients(t *testing.T) {
	url, registered := startRatingServer(t)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Failed to dial test server: %v", err)
	}
	defer conn.Close()
	client := <-registered

	// Closing the registered connection makes the next hub write fail
	client.Conn.Close()

	BroadcastRatingUpdate([]models.RatingEntry{{Rank: 1, Name: "Мария", Score: 2}})

	// Removal runs in its own goroutine
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if !clientRegistered(client) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Error("Expected dead client to be unregistered after a failed broadcast")
}
