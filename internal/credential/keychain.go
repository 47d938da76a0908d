package credential

// KeychainLookup is the OS-native keychain backend. No platform
// implementation exists; every call must keep reporting the backend as
// unsupported rather than pretending to resolve anything.
type KeychainLookup struct{}

// Lookup always fails with an UnsupportedKeychain error.
func (KeychainLookup) Lookup(account Account) (Credential, error) {
	return Credential{}, UnsupportedKeychain("native keychain lookup is not implemented")
}
