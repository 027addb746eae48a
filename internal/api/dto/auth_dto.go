package dto

// LoginRequest is the form-encoded login submission. The username field
// carries the account email, OAuth2 password-grant style.
type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// TokenResponse is returned on successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
