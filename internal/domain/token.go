package domain

// TokenKind tags a signed token as an access or a refresh credential.
type TokenKind string

const (
	TokenAccess  TokenKind = "access"
	TokenRefresh TokenKind = "refresh"
)

// TokenPair is returned once at login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UpdateToken is returned once at refresh.
type UpdateToken struct {
	AccessToken string `json:"access_token"`
}
