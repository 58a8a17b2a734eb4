package player

import (
	"time"
)

// Player is an account holding exactly one city-state save. Code is the
// short join code handed out at creation; it is the only credential a
// guest session needs.
type Player struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Email     *string   `json:"email,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
