package entity

import "time"

// Message documents are immutable once written; createdAt is the sole ordering
// key for pagination.
type Message struct {
	ID        string    `json:"id" firestore:"id"`
	SenderID  string    `json:"sender_id" firestore:"senderId"`
	Content   string    `json:"content" firestore:"content"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
