package model

type SignupRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	ProfilePicture string `json:"profile_picture"`
}

type SignupResponse struct {
	User User `json:"user"`
}

type LoginRequest struct {
	// Account accepts either the username or the email address.
	Account  string `json:"account"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

type PingRequest struct{}

type PingResponse struct {
	Message string `json:"message"`
}
