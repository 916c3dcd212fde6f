package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UID         uint   `json:"user_id"`
	Username    string `json:"username"`
	IsAdmin     bool   `json:"is_admin"`
}

// WarningResponse wraps a committed result whose follow-up step failed.
type WarningResponse struct {
	Data    any    `json:"data"`
	Warning string `json:"warning"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
