package core

import "time"

// Identity is the (user id, username) pair bound to an active session.
type Identity struct {
	UserID   uint
	Username string
}

type RegisterMessage struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ArticleRecord struct {
	ID        uint
	Title     string
	Content   string
	Author    string
	OwnerID   uint
	CreatedOn time.Time
}
