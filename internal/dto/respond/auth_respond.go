package respond

// RegisterRespond
type RegisterRespond struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// LoginRespond carries both tokens; the client sends the access token as a bearer
type LoginRespond struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshRespond
type RefreshRespond struct {
	AccessToken string `json:"access_token"`
}

// RedirectRespond tells the client where to navigate
type RedirectRespond struct {
	Redirect string `json:"redirect"`
}
