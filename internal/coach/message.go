package coach

import "time"

// Message is a short note between coach and athlete, shown on the
// dashboard next to the weekly summary.
type Message struct {
	Id        int       `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
