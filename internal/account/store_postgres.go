// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/scribe/internal/platform/database/schema"
	"github.com/taibuivan/scribe/internal/platform/dberr"
	"github.com/taibuivan/scribe/internal/platform/softref"
)

const resourceName = "User"

// PostgresUserRepository implements [UserRepository] on the user service's own store.
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

// NewPostgresUserRepository creates a repository backed by pool.
func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

var userColumns = schema.List(schema.UserAccount.Columns())

func scanUser(row pgx.Row) (*User, error) {
	u := &User{}
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func (repository *PostgresUserRepository) FindByID(ctx context.Context, id softref.UserID) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		userColumns, schema.UserAccount.Table, schema.UserAccount.ID,
	)

	u, err := scanUser(repository.db.QueryRow(ctx, query, int64(id)))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "find_user_by_id")
	}
	return u, nil
}

func (repository *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		userColumns, schema.UserAccount.Table, schema.UserAccount.Email,
	)

	u, err := scanUser(repository.db.QueryRow(ctx, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "find_user_by_email")
	}
	return u, nil
}

func (repository *PostgresUserRepository) Create(ctx context.Context, u *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.UserAccount.Table,
		schema.UserAccount.Username, schema.UserAccount.Email, schema.UserAccount.Password,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID, schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, u.Username, u.Email, u.PasswordHash).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	return dberr.Wrap(err, resourceName, "create_user")
}

func (repository *PostgresUserRepository) Update(ctx context.Context, u *User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.UserAccount.Table,
		schema.UserAccount.Username, schema.UserAccount.Email, schema.UserAccount.Password, schema.UserAccount.UpdatedAt,
		schema.UserAccount.ID, schema.UserAccount.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, int64(u.ID), u.Username, u.Email, u.PasswordHash).Scan(&u.UpdatedAt)
	return dberr.Wrap(err, resourceName, "update_user")
}

func (repository *PostgresUserRepository) Delete(ctx context.Context, id softref.UserID) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.UserAccount.Table, schema.UserAccount.ID)

	cmd, err := repository.db.Exec(ctx, query, int64(id))
	if err != nil {
		return dberr.Wrap(err, resourceName, "delete_user")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, resourceName, "delete_user")
	}
	return nil
}
