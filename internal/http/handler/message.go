package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

const invalidCredentialsErr = "invalid credentials"

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
	Errors  interface{} `json:"errors,omitempty"`  // field level validation failures
}

type userData struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	SessionToken string `json:"session_token,omitempty"`
}

type sessionData struct {
	SessionToken string `json:"session_token"`
}
