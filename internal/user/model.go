package user

import "time"

type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
