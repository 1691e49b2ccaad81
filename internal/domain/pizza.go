package domain

import "time"

type Pizza struct {
	ID        int
	Name      string
	Price     float64
	Image     string
	CreatedAt time.Time
}
