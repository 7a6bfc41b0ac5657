package entity

// Identity is the caller resolved from a bearer token by the identity
// provider. It is not the profile row; see User.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}

// Session is an access/refresh token pair issued by the identity provider.
// Tokens are opaque; this process only forwards them.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
}
