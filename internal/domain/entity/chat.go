package entity

import "time"

// ChatMember is a denormalized snapshot of a participant's profile at the time
// the chat was created.
type ChatMember struct {
	ID       string `json:"id" firestore:"id"`
	Username string `json:"username" firestore:"username"`
	PhotoURL string `json:"photo_url,omitempty" firestore:"photoURL,omitempty"`
}

type Chat struct {
	ID          string                `json:"id" firestore:"id"`
	Members     map[string]ChatMember `json:"members" firestore:"members"`
	LastMessage *Message              `json:"last_message,omitempty" firestore:"lastMessage,omitempty"`
	CreatedAt   time.Time             `json:"created_at" firestore:"createdAt"`
}

// CombinedChatID derives the natural key of a two-party chat from its member
// IDs: the lexicographically larger ID is concatenated first. The result is the
// same regardless of argument order, so the same pair of users always resolves
// to the same chat document.
func CombinedChatID(a, b string) string {
	if a > b {
		return a + b
	}
	return b + a
}
