// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/scribe/internal/platform/database/schema"
	"github.com/taibuivan/scribe/internal/platform/dberr"
	"github.com/taibuivan/scribe/internal/platform/softref"
)

const resourceName = "Comment"

// PostgresRepository implements [Repository] on the comment service's own store.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a repository backed by pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanComment(row pgx.Row) (*Comment, error) {
	var (
		c        Comment
		parentID *int64
	)
	if err := row.Scan(&c.ID, &c.Content, &c.BlogID, &c.AuthorID, &parentID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if parentID != nil {
		parent := softref.CommentID(*parentID)
		c.ParentID = &parent
	}
	return &c, nil
}

func (repository *PostgresRepository) ListTopLevel(ctx context.Context, blogID softref.BlogID) ([]*Comment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
		ORDER BY %s ASC, %s ASC
	`,
		schema.List(schema.Comment.Columns()), schema.Comment.Table,
		schema.Comment.BlogID, schema.Comment.ParentID,
		schema.Comment.CreatedAt, schema.Comment.ID,
	)

	rows, err := repository.db.Query(ctx, query, int64(blogID))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "list_comments")
	}
	defer rows.Close()

	comments := []*Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resourceName, "scan_comment")
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, resourceName, "iterate_comments")
	}

	return comments, nil
}

func (repository *PostgresRepository) Create(ctx context.Context, c *Comment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.Comment.Table,
		schema.Comment.Content, schema.Comment.BlogID, schema.Comment.AuthorID, schema.Comment.ParentID,
		schema.Comment.CreatedAt, schema.Comment.UpdatedAt,
		schema.Comment.ID, schema.Comment.CreatedAt, schema.Comment.UpdatedAt,
	)

	var parentID *int64
	if c.ParentID != nil {
		parent := int64(*c.ParentID)
		parentID = &parent
	}

	err := repository.db.QueryRow(ctx, query, c.Content, int64(c.BlogID), int64(c.AuthorID), parentID).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return dberr.Wrap(err, resourceName, "create_comment")
}
