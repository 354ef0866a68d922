package entity

import (
	"time"
)

type User struct {
	ID       string `json:"id" firestore:"id"`
	Username string `json:"username" firestore:"username"`
	Email    string `json:"email" firestore:"email"`
	PhotoURL string `json:"photo_url,omitempty" firestore:"photoURL,omitempty"`

	// ChatRefs holds the IDs of every chat this user participates in. Entries
	// are added with an atomic array-union, never removed.
	ChatRefs []string `json:"chat_refs" firestore:"chatRefs"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
