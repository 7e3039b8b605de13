package domain

import "time"

// Roles válidos para un mensaje persistido.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

type Message struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	Role      string    `json:"role"`
	Seq       int64     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
