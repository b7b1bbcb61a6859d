package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-dashboard-api/pkg/apiErrors"
)

type LoginRequest struct {
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		// Decodificar o corpo da requisição
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(req.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		writeJSON(w, map[string]any{
			"success": true,
			"token":   token,
		})
	}
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	if errors.Is(err, authenticating.ErrInvalidCredentials) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
}
