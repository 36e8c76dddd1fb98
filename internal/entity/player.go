package entity

// Player is a seated peer of a match.
type Player struct {
	Mark Mark   `json:"mark"`
	Addr string `json:"addr,omitempty"`
}

func NewPlayer(mark Mark, addr string) *Player {
	return &Player{
		Mark: mark,
		Addr: addr,
	}
}
