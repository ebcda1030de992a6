package auth

import (
	"context"
	"errors"

	"github.com/jhoicas/pedidos-hosteleria/internal/domain/entity"
	"github.com/jhoicas/pedidos-hosteleria/internal/domain/repository"
)

// ErrNoSubject el contexto de la petición no tiene un usuario autenticado válido.
var ErrNoSubject = errors.New("auth: sin usuario autenticado")

// SubjectResolver carga el usuario vigente a partir del id del token.
// Al resolverse en cada petición, un cambio de rol aplica de inmediato.
type SubjectResolver struct {
	users repository.UserRepository
}

func NewSubjectResolver(users repository.UserRepository) *SubjectResolver {
	return &SubjectResolver{users: users}
}

// Resolve devuelve (nil, nil) si el usuario ya no existe.
func (r *SubjectResolver) Resolve(ctx context.Context, id string) (*entity.User, error) {
	return r.users.GetByID(ctx, id)
}

// CheckRole predicado del control de acceso: el rol del usuario debe coincidir exactamente.
// subject debe ser un *entity.User no nil; cualquier otra cosa es un fallo de evaluación.
func CheckRole(subject any, role string) (bool, error) {
	u, ok := subject.(*entity.User)
	if !ok || u == nil {
		return false, ErrNoSubject
	}
	return u.Role == role, nil
}
