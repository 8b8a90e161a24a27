package repository

import (
	"context"

	"github.com/tu-usuario/brico-pos/internal/domain/entity"
)

// UserRepository puerto de persistencia para User (autenticación).
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, u *entity.User) (int64, error)
	TouchLastLogin(ctx context.Context, id int64) error
}
