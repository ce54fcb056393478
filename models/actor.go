package models

// Actor is the authenticated identity performing a request. It is resolved
// once by the auth middleware and passed explicitly to services and
// permission checks instead of re-reading the session per call site.
type Actor struct {
	ID         string
	Email      string
	Name       string
	Role       Role
	Department *string
}

// IsAdmin reports whether the actor holds the global admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// ActorFromUser builds an Actor from a freshly loaded user row.
func ActorFromUser(u User) Actor {
	return Actor{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		Department: u.Department,
	}
}
