package domain

import "time"

type Message struct {
	ID        int
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}
