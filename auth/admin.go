package auth

import "github.com/Waleedkhan5609/Online-Shopping-cart/models"

// Authenticator checks terminal logins against the admin credentials
// supplied by configuration at startup.
type Authenticator struct {
	admin models.Admin
}

func New(admin models.Admin) *Authenticator {
	return &Authenticator{admin: admin}
}

// Login returns the admin profile when both username and password match.
func (a *Authenticator) Login(username, password string) (*models.Admin, bool) {
	if username != a.admin.Username || password != a.admin.Password {
		return nil, false
	}
	admin := a.admin
	return &admin, true
}
