package postgresql

import (
	"context"
	"fmt"

	"github.com/chronohr/timekeeping-backend-go/internal/domain/user"
	"github.com/chronohr/timekeeping-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// The employee_id join lets the access token carry the employee identity
// without a second lookup on every login.
const userSelect = `
	SELECT u.id, u.email, u.password_hash, u.role, u.created_at, u.updated_at,
		   e.id AS employee_id
	FROM users u
	LEFT JOIN employees e ON e.user_id = u.id AND e.deleted_at IS NULL
`

// GetByID implements user.UserRepository.
func (u *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	var usr user.User
	err := q.QueryRow(ctx, userSelect+` WHERE u.id = $1`, id).Scan(
		&usr.ID, &usr.Email, &usr.PasswordHash, &usr.Role,
		&usr.CreatedAt, &usr.UpdatedAt, &usr.EmployeeID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, err
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return usr, nil
}

// GetByEmail implements user.UserRepository.
func (u *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, u.db)

	var usr user.User
	err := q.QueryRow(ctx, userSelect+` WHERE LOWER(u.email) = LOWER($1)`, email).Scan(
		&usr.ID, &usr.Email, &usr.PasswordHash, &usr.Role,
		&usr.CreatedAt, &usr.UpdatedAt, &usr.EmployeeID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, err
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return usr, nil
}
