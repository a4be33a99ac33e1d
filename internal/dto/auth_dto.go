package dto

type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Credential string `json:"credential" binding:"required"`
}

// LoginResponse carries the matched profile row. Profile is the entity for
// the role that logged in (Administrator, Assistant or Supervisor).
type LoginResponse struct {
	Status  string      `json:"status"`
	Role    string      `json:"role"`
	Profile interface{} `json:"profile"`
}
