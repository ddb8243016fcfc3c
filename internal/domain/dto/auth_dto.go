package dto

type TokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
