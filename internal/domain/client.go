package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Perfis de acesso dos clientes da API
const (
	RoleAdmin   = 1
	RoleAnalyst = 2
	RoleViewer  = 3
)

// APIClient é um consumidor da API configurado com segredo em hash bcrypt
type APIClient struct {
	ID         string
	RoleID     int
	SecretHash string
}

type Claims struct {
	ClientID     string `json:"client_id"`
	ClientRoleID int    `json:"role_id"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	RoleID    int       `json:"role_id"`
}
