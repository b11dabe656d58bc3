package domain

import "slices"

// Identity holds the attributes of an authenticated user as attested by the
// external authentication service. It is constructed once from a successful
// login response and never mutated afterwards.
type Identity struct {
	ID                 int      `json:"id"`
	Username           string   `json:"username"`
	FirstName          string   `json:"firstName"`
	LastName           string   `json:"lastName"`
	Admin              bool     `json:"isAdmin"`
	MustChangePassword bool     `json:"shouldChangePassword"`
	Customers          []string `json:"customers"`
}

// HasCustomer reports whether the identity is entitled to act on the given
// customer. Every tenant-scoped operation funnels through this check.
func (i Identity) HasCustomer(customer string) bool {
	return slices.Contains(i.Customers, customer)
}

// DisplayName returns the user's full name, falling back to the username.
func (i Identity) DisplayName() string {
	if i.FirstName == "" && i.LastName == "" {
		return i.Username
	}
	if i.FirstName == "" {
		return i.LastName
	}
	if i.LastName == "" {
		return i.FirstName
	}
	return i.FirstName + " " + i.LastName
}

// SessionContext binds a session token to the identity it was issued for.
// Exactly one SessionContext is live per session handle at a time.
type SessionContext struct {
	Token    string   `json:"-"`
	Identity Identity `json:"user"`
}
