package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims é o conteúdo do JWT entregue ao navegador após o login
type SessionClaims struct {
	SessionID string `json:"sid"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// AdminAction é um registro de auditoria de uma ação administrativa
type AdminAction struct {
	ID           int64     `json:"id"`
	SessionEmail string    `json:"session_email"`
	Action       string    `json:"action"`
	Entity       string    `json:"entity"`
	EntityID     string    `json:"entity_id"`
	Notes        string    `json:"notes,omitempty"`
	Succeeded    bool      `json:"succeeded"`
	Message      string    `json:"message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
