package models

// AuthorityUser is the single capability granted to every authenticated caller.
const AuthorityUser = "ROLE_USER"

// Principal is the authenticated identity attached to a request by the
// authentication middleware. It lives only for the duration of one request.
type Principal struct {
	UserID      int64
	Email       string
	Name        string
	Authorities []string
}

// NewPrincipal derives a Principal from a stored user.
func NewPrincipal(u User) Principal {
	return Principal{
		UserID:      u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Authorities: []string{AuthorityUser},
	}
}

// HasAuthority reports whether the principal was granted authority.
func (p Principal) HasAuthority(authority string) bool {
	for _, a := range p.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}
