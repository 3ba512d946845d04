package websocket

import (
	"log"
	"sync"

	"quizhub/models"

	"github.com/gorilla/websocket"
)

// RatingClient represents a client connected for live leaderboard updates
type RatingClient struct {
	Conn    *websocket.Conn
	writeMu sync.Mutex
}

// SafeWriteJSON safely writes JSON data to the client's WebSocket connection
func (rc *RatingClient) SafeWriteJSON(v interface{}) error {
	rc.writeMu.Lock()
	defer rc.writeMu.Unlock()
	return rc.Conn.WriteJSON(v)
}

// Global rating hub for broadcasting leaderboard changes to all connected clients
var (
	ratingClients = make(map[*RatingClient]bool)
	ratingMutex   sync.RWMutex
)

// RegisterRatingClient registers a client for leaderboard updates
func RegisterRatingClient(client *RatingClient) {
	ratingMutex.Lock()
	defer ratingMutex.Unlock()
	ratingClients[client] = true
	log.Printf("Rating client registered. Total clients: %d", len(ratingClients))
}

// UnregisterRatingClient removes a client from leaderboard updates
func UnregisterRatingClient(client *RatingClient) {
	ratingMutex.Lock()
	defer ratingMutex.Unlock()
	delete(ratingClients, client)
	client.Conn.Close()
	log.Printf("Rating client unregistered. Total clients: %d", len(ratingClients))
}

// BroadcastRatingUpdate pushes the current leaderboard to all connected clients
func BroadcastRatingUpdate(entries []models.RatingEntry) {
	ratingMutex.RLock()
	defer ratingMutex.RUnlock()

	update := models.RatingUpdate{Type: "rating", Items: entries}
	for client := range ratingClients {
		if err := client.SafeWriteJSON(update); err != nil {
			log.Printf("Failed to push rating update: %v", err)
			go UnregisterRatingClient(client)
		}
	}
}
