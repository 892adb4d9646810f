package entity

// ProviderType identifies how a credential was established.
type ProviderType = string

const (
	// ProviderTypeEmail is the local email/password credential.
	ProviderTypeEmail ProviderType = "email"
	// ProviderTypeGoogle is the Google Sign-In federated credential.
	ProviderTypeGoogle ProviderType = "google"
)
