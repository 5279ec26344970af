package domain

type Role string

const (
	// User can register assistance requests and manage their own profile
	RoleUser Role = "user"
	// Admin additionally sees platform-wide analytics and can deactivate any request
	RoleAdmin Role = "admin"
)

func IsValidRole(r string) bool {
	return r == string(RoleUser) || r == string(RoleAdmin)
}
