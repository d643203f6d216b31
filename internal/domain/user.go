package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims são as credenciais extraídas do token JWT emitido pelo painel.
// A API de automação apenas valida o token, não gerencia usuários.
type Claims struct {
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}
