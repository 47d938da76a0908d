package credential

// Account describes a caller-declared desire to fetch credentials for a
// service URL within an authentication realm. Username is optional; when
// set it is forwarded to the helper so multi-account stores can pick the
// right entry.
type Account struct {
	Realm    string
	Address  string
	Username string
}

// Credential is the terminal success value for one resolved account. The
// realm comes from the account, the host from its parsed address; both
// username and password come from the helper response.
type Credential struct {
	Realm    string
	Host     string
	Username string
	Password string
}
