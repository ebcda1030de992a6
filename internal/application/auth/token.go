package auth

import (
	"time"

	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
	"github.com/jhoicas/pedidos-hosteleria/pkg/jwt"
)

// TokenService emite y verifica credenciales firmadas con el secreto de la aplicación.
type TokenService struct {
	secret string
	issuer string
	ttl    time.Duration
}

// NewTokenService construye el servicio. ttl <= 0 usa jwt.DefaultTTL.
func NewTokenService(secret, issuer string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = jwt.DefaultTTL
	}
	return &TokenService{secret: secret, issuer: issuer, ttl: ttl}
}

// Issue firma un token con {id, email} del usuario.
func (s *TokenService) Issue(u *entity.User) (string, error) {
	return jwt.Generate(s.secret, u.ID, u.Email, s.issuer, s.ttl)
}

// Verify valida el token y devuelve sus claims.
func (s *TokenService) Verify(token string) (*jwt.Claims, error) {
	return jwt.Parse(s.secret, token)
}
