package authenticating_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vfg2006/marketing-dashboard-api/internal/config"
	"github.com/vfg2006/marketing-dashboard-api/internal/domain"
	"github.com/vfg2006/marketing-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-dashboard-api/pkg/log"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("senha-correta"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Auth.DashboardPasswordHash = string(hash)
	cfg.Auth.SecretKey = "segredo-de-teste"
	cfg.Auth.TokenTTLHours = 1
	return cfg
}

func TestService_LoginUser(t *testing.T) {
	log.SetupTestLogger()
	service := authenticating.NewService(newTestConfig(t))

	token, err := service.LoginUser("senha-correta")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "dashboard_user", claims.User)
	assert.NotEmpty(t, claims.ID)
}

func TestService_LoginUser_WrongPassword(t *testing.T) {
	log.SetupTestLogger()
	service := authenticating.NewService(newTestConfig(t))

	_, err := service.LoginUser("senha-errada")
	require.Error(t, err)
	assert.True(t, authenticating.IsCredentialsError(err))
}

func TestService_LoginUser_EmptyPassword(t *testing.T) {
	log.SetupTestLogger()
	service := authenticating.NewService(newTestConfig(t))

	_, err := service.LoginUser("")
	assert.Error(t, err)
}

func TestService_LoginUser_PlaintextFallback(t *testing.T) {
	log.SetupTestLogger()

	// Sem hash configurado a comparação cai para a senha em texto plano
	cfg := &config.Config{}
	cfg.Auth.DashboardPassword = "senha-local"
	cfg.Auth.SecretKey = "segredo-de-teste"
	cfg.Auth.TokenTTLHours = 1

	service := authenticating.NewService(cfg)

	token, err := service.LoginUser("senha-local")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = service.LoginUser("outra-senha")
	assert.Error(t, err)
}

func TestService_ValidateToken_Invalid(t *testing.T) {
	log.SetupTestLogger()
	service := authenticating.NewService(newTestConfig(t))

	_, err := service.ValidateToken("nao-é-um-jwt")
	require.Error(t, err)
	assert.True(t, authenticating.IsTokenError(err))
}

func TestService_ValidateToken_Expired(t *testing.T) {
	log.SetupTestLogger()
	cfg := newTestConfig(t)
	service := authenticating.NewService(cfg)

	claims := domain.Claims{
		User: "dashboard_user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Auth.SecretKey))
	require.NoError(t, err)

	_, err = service.ValidateToken(expired)
	require.Error(t, err)
	assert.True(t, authenticating.IsTokenError(err))
}

func TestService_ValidateToken_WrongSecret(t *testing.T) {
	log.SetupTestLogger()
	cfg := newTestConfig(t)
	service := authenticating.NewService(cfg)

	claims := domain.Claims{
		User: "dashboard_user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("outro-segredo"))
	require.NoError(t, err)

	_, err = service.ValidateToken(forged)
	assert.Error(t, err)
}
