package model

type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	ProfilePicture string `json:"profile_picture"`
	Role           string `json:"role"`
}

type GetUserRequest struct{}

type GetUserResponse struct {
	User User `json:"user"`
}
