package entities

import "time"

// Revision is one saved version of a player document.
type Revision struct {
	PlayerID string    `json:"playerId"`
	Revision int       `json:"revision"`
	SavedBy  string    `json:"savedBy"`
	SavedAt  time.Time `json:"savedAt"`
	// Player is only populated when a single revision is fetched
	Player *Player `json:"player,omitempty"`
}
