package models

import (
	"strings"
	"time"
)

type Usuario struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DateJoined   time.Time `json:"date_joined"`
}

// UsuarioSummary is returned after registration. It never carries the password.
type UsuarioSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type CadastroInput struct {
	Username string `json:"username" validate:"required,max=150,username" fake:"{lettern:10}"`
	Password string `json:"password" validate:"required" fake:"{uuid}"`
	Email    string `json:"email" validate:"omitempty,email" fake:"{email}"`
}

// Normalize trims the username and email. Passwords are kept as sent.
func (input *CadastroInput) Normalize() {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshInput struct {
	Refresh string `json:"refresh" validate:"required"`
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type AccessToken struct {
	Access string `json:"access"`
}

// Principal is the authenticated caller resolved from an access token.
type Principal struct {
	UserID  int64
	TokenID string
}

func (usuario *Usuario) Summary() UsuarioSummary {
	return UsuarioSummary{
		ID:       usuario.ID,
		Username: usuario.Username,
		Email:    usuario.Email,
	}
}
