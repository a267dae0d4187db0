package models

// RoleUser is the default role assigned at registration.
const RoleUser = "user"

// RoleAdmin can create movies and inspect user records.
const RoleAdmin = "admin"

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// ValidRole reports whether role is one of the known role strings.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
