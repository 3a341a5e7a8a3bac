package users

import "time"

// User es una cuenta local. El original guardaba SHA-256 sin salt;
// acá se usa bcrypt, el hash nunca sale por la API.
type User struct {
	ID           string
	Username     string
	PasswordHash string

	CreatedAt time.Time
}
