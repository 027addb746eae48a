package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/book-registry/internal/domain"
)

// AuthorFilter narrows author listings.
type AuthorFilter struct {
	Name   string
	Offset int
	Limit  int
}

// AuthorRepository defines persistence access for authors.
type AuthorRepository interface {
	Create(ctx context.Context, author *domain.Author) error
	Update(ctx context.Context, author *domain.Author) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Author, error)
	List(ctx context.Context, filter AuthorFilter) ([]domain.Author, error)
}

type authorRepository struct {
	pool *pgxpool.Pool
}

// NewAuthorRepository returns a Postgres-backed implementation.
func NewAuthorRepository(pool *pgxpool.Pool) AuthorRepository {
	return &authorRepository{pool: pool}
}

func (r *authorRepository) Create(ctx context.Context, author *domain.Author) error {
	const query = `
        INSERT INTO authors (name)
        VALUES ($1)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query, author.Name).
		Scan(&author.ID, &author.CreatedAt, &author.UpdatedAt)
}

func (r *authorRepository) Update(ctx context.Context, author *domain.Author) error {
	const query = `UPDATE authors SET name=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, author.Name, author.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *authorRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *authorRepository) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	const query = `
        SELECT id, name, created_at, updated_at
        FROM authors WHERE id=$1`

	var author domain.Author
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&author.ID,
		&author.Name,
		&author.CreatedAt,
		&author.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *authorRepository) List(ctx context.Context, filter AuthorFilter) ([]domain.Author, error) {
	const query = `
        SELECT id, name, created_at, updated_at
        FROM authors
        WHERE ($1 = '' OR name LIKE '%' || $1 || '%')
        ORDER BY id OFFSET $2 LIMIT $3`

	rows, err := r.pool.Query(ctx, query, filter.Name, filter.Offset, filter.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	authors := make([]domain.Author, 0)
	for rows.Next() {
		var author domain.Author
		if err := rows.Scan(
			&author.ID,
			&author.Name,
			&author.CreatedAt,
			&author.UpdatedAt,
		); err != nil {
			return nil, err
		}
		authors = append(authors, author)
	}
	return authors, rows.Err()
}
