package entity

type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	Online       bool   `json:"online"`
	LastActive   string `json:"lastActive"`
}

// PublicUser is the listing shape: username only, never the digest.
type PublicUser struct {
	Username string `json:"username"`
}
