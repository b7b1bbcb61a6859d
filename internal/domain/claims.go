package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são os claims do token de acesso ao dashboard. O dashboard tem uma
// única credencial compartilhada, então o token carrega apenas a identidade
// fixa e o ID do token.
type Claims struct {
	User string `json:"user"`
	jwt.RegisteredClaims
}
