package models

// DemoUser describes an account the seed job provisions through the external
// identity service. The service answers with an opaque user id; nothing about
// the account is persisted locally.
type DemoUser struct {
	// EmailAddresses lists the addresses registered for the account.
	// The identity service expects at least one.
	EmailAddresses []string `json:"email_address"`

	// Password is the initial password for the demo account.
	Password string `json:"password"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
