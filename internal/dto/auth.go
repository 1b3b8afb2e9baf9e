package dto

// CredentialsDTO is the body of both the register and the login calls.
type CredentialsDTO struct {
	Login    string `json:"login" example:"alice"`
	Password string `json:"password" example:"password1"`
}

// AuthResponseDTO accompanies the bearer token set in the Authorization header.
type AuthResponseDTO struct {
	Message string `json:"message" example:"User successfully registered"`
	UserID  int    `json:"userId" example:"1"`
}
