package model

// SignInRequest is the body of POST /admin/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResponse is the backend's answer to a successful sign in.
type SignInResponse struct {
	Token string `json:"token"`
}
