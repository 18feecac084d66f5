// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package blog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/scribe/internal/platform/database/schema"
	"github.com/taibuivan/scribe/internal/platform/dberr"
	"github.com/taibuivan/scribe/internal/platform/softref"
)

const resourceName = "Blog"

// PostgresRepository implements [Repository] on the blog service's own store.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a repository backed by pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var selectColumns = schema.List(schema.BlogPost.Columns())

func scanBlog(row pgx.Row) (*Blog, error) {
	b := &Blog{}
	err := row.Scan(&b.ID, &b.Title, &b.Content, &b.AuthorID, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (repository *PostgresRepository) List(ctx context.Context, limit, offset int) ([]*Blog, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.BlogPost.Table)

	var total int
	if err := repository.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "count_blogs")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s DESC, %s DESC
		LIMIT $1 OFFSET $2
	`, selectColumns, schema.BlogPost.Table, schema.BlogPost.CreatedAt, schema.BlogPost.ID)

	rows, err := repository.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "list_blogs")
	}
	defer rows.Close()

	blogs := make([]*Blog, 0, limit)
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, resourceName, "scan_blog")
		}
		blogs = append(blogs, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "iterate_blogs")
	}

	return blogs, total, nil
}

func (repository *PostgresRepository) Get(ctx context.Context, id softref.BlogID) (*Blog, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		selectColumns, schema.BlogPost.Table, schema.BlogPost.ID,
	)

	b, err := scanBlog(repository.db.QueryRow(ctx, query, int64(id)))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "get_blog")
	}
	return b, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, b *Blog) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.BlogPost.Table, schema.BlogPost.Title, schema.BlogPost.Content, schema.BlogPost.AuthorID,
		schema.BlogPost.CreatedAt, schema.BlogPost.UpdatedAt,
		schema.BlogPost.ID, schema.BlogPost.CreatedAt, schema.BlogPost.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, b.Title, b.Content, int64(b.AuthorID)).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	return dberr.Wrap(err, resourceName, "create_blog")
}

func (repository *PostgresRepository) Update(ctx context.Context, b *Blog) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.BlogPost.Table, schema.BlogPost.Title, schema.BlogPost.Content, schema.BlogPost.UpdatedAt,
		schema.BlogPost.ID, schema.BlogPost.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, int64(b.ID), b.Title, b.Content).Scan(&b.UpdatedAt)
	return dberr.Wrap(err, resourceName, "update_blog")
}

func (repository *PostgresRepository) Delete(ctx context.Context, id softref.BlogID) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.BlogPost.Table, schema.BlogPost.ID)

	cmd, err := repository.db.Exec(ctx, query, int64(id))
	if err != nil {
		return dberr.Wrap(err, resourceName, "delete_blog")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, resourceName, "delete_blog")
	}
	return nil
}
