package pkg

import "github.com/google/uuid"

// GenerateMatchID returns a random identifier for a new match.
func GenerateMatchID() string {
	return uuid.NewString()
}
