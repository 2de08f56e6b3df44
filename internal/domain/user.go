package domain

// Identity is the authenticated principal behind a session token.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Profile is the durable user-attribute row keyed by identity.
type Profile struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// FullName joins first and last name the way the screens render it.
func (p Profile) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// Session is the result of a password sign-in.
type Session struct {
	AccessToken string   `json:"access_token"`
	User        Identity `json:"user"`
}
