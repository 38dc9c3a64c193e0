package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Ksaiko-Vlad/sofa-order-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
)

var userColumns = []string{
	"user_id", "email", "password_hash", "phone",
	"first_name", "second_name", "last_name", "role", "created_at",
}

func (r *postgresRepo) CreateUser(ctx context.Context, u entities.User) (entities.User, error) {
	query, args := r.qb.Insert("users").
		Columns("email", "password_hash", "phone", "first_name", "second_name", "last_name", "role").
		Values(
			u.Email, u.PasswordHash, u.Phone,
			nullString(u.FirstName), nullString(u.SecondName), nullString(u.LastName),
			u.Role.String(),
		).
		Suffix("RETURNING " + "user_id, created_at").
		MustSql()

	var row struct {
		UserID    int64        `db:"user_id"`
		CreatedAt sql.NullTime `db:"created_at"`
	}
	err := r.getContext(ctx, &row, query, args...)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return entities.User{}, entities.ErrEmailTaken
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to save user: %w", err)
	}

	u.ID = row.UserID
	if row.CreatedAt.Valid {
		u.CreatedAt = row.CreatedAt.Time
	}
	return u, nil
}

func (r *postgresRepo) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.getUser(ctx, sq.Eq{"email": email})
}

func (r *postgresRepo) GetUserByID(ctx context.Context, userID int64) (entities.User, error) {
	return r.getUser(ctx, sq.Eq{"user_id": userID})
}

func (r *postgresRepo) UpdateUser(ctx context.Context, userID int64, upd entities.UserUpdate) (entities.User, error) {
	q := r.qb.Update("users").Where(sq.Eq{"user_id": userID})

	set := false
	if upd.Phone != nil {
		q = q.Set("phone", *upd.Phone)
		set = true
	}
	if upd.FirstName != nil {
		q = q.Set("first_name", nullString(*upd.FirstName))
		set = true
	}
	if upd.SecondName != nil {
		q = q.Set("second_name", nullString(*upd.SecondName))
		set = true
	}
	if upd.LastName != nil {
		q = q.Set("last_name", nullString(*upd.LastName))
		set = true
	}
	if !set {
		return r.GetUserByID(ctx, userID)
	}

	query, args := q.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to update user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return entities.User{}, entities.ErrUserNotFound
	}

	return r.GetUserByID(ctx, userID)
}

func (r *postgresRepo) getUser(ctx context.Context, where sq.Eq) (entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(where).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return UserToEntity(user), nil
}
