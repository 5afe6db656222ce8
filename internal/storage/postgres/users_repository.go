package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gatherhub/server/internal/domain/users"
	"github.com/gatherhub/server/internal/metrics"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
	tx   pgx.Tx
}

func (r *UserRepository) Create(ctx context.Context, params users.CreateParams) (user *users.User, err error) {
	start := time.Now()
	defer func() { metrics.RecordQuery("create_user", start, err) }()

	row := r.queryer().QueryRow(ctx, `
INSERT INTO usertable (name, email, password)
VALUES ($1, $2, $3)
RETURNING user_id, is_admin
`, params.Name, params.Email, params.PasswordHash)

	user = &users.User{
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
	}
	if err = row.Scan(&user.ID, &user.IsAdmin); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user *users.User, err error) {
	start := time.Now()
	defer func() { metrics.RecordQuery("get_user_by_email", start, err) }()

	row := r.queryer().QueryRow(ctx, `
SELECT user_id, name, email, password, is_admin, token
  FROM usertable
 WHERE email = $1
 LIMIT 1
`, email)

	user = &users.User{}
	if err = row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.IsAdmin,
		&user.Token,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, users.ErrNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

func (r *UserRepository) UpdateToken(ctx context.Context, userID int64, token string) (err error) {
	start := time.Now()
	defer func() { metrics.RecordQuery("update_user_token", start, err) }()

	_, err = r.queryer().Exec(ctx, `UPDATE usertable SET token = $1 WHERE user_id = $2`, token, userID)
	if err != nil {
		return fmt.Errorf("update user token: %w", err)
	}
	return nil
}

func (r *UserRepository) queryer() queryer {
	if r.tx != nil {
		return r.tx
	}
	return r.pool
}
