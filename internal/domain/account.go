package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

// Credentials são os dados enviados pela tela de entrada
type Credentials struct {
	Provider string `json:"provider"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Claims identificam a conta ativa dentro do token de sessão
type Claims struct {
	Account  string `json:"account"`
	Provider string `json:"provider"`
	jwt.RegisteredClaims
}

// SessionState descreve o portão de sessão: autenticado ou não
type SessionState struct {
	Authenticated bool   `json:"authenticated"`
	Account       string `json:"account,omitempty"`
}
