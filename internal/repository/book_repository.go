package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/book-registry/internal/domain"
)

// BookFilter narrows book listings.
type BookFilter struct {
	Title  string
	Year   *int
	Offset int
	Limit  int
}

// BookRepository defines persistence access for books.
type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	Update(ctx context.Context, book *domain.Book) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
	List(ctx context.Context, filter BookFilter) ([]domain.Book, error)
}

type bookRepository struct {
	pool *pgxpool.Pool
}

// NewBookRepository returns a Postgres-backed implementation.
func NewBookRepository(pool *pgxpool.Pool) BookRepository {
	return &bookRepository{pool: pool}
}

func (r *bookRepository) Create(ctx context.Context, book *domain.Book) error {
	const query = `
        INSERT INTO books (title, year, author_id)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		book.Title,
		book.Year,
		book.AuthorID,
	).Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
}

func (r *bookRepository) Update(ctx context.Context, book *domain.Book) error {
	const query = `
        UPDATE books SET title=$1, year=$2, author_id=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		book.Title,
		book.Year,
		book.AuthorID,
		book.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	const query = `
        SELECT id, title, year, author_id, created_at, updated_at
        FROM books WHERE id=$1`

	var book domain.Book
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&book.ID,
		&book.Title,
		&book.Year,
		&book.AuthorID,
		&book.CreatedAt,
		&book.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) List(ctx context.Context, filter BookFilter) ([]domain.Book, error) {
	const query = `
        SELECT id, title, year, author_id, created_at, updated_at
        FROM books
        WHERE ($1 = '' OR title LIKE '%' || $1 || '%')
          AND ($2::int IS NULL OR year = $2)
        ORDER BY id OFFSET $3 LIMIT $4`

	rows, err := r.pool.Query(ctx, query, filter.Title, filter.Year, filter.Offset, filter.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := make([]domain.Book, 0)
	for rows.Next() {
		var book domain.Book
		if err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.Year,
			&book.AuthorID,
			&book.CreatedAt,
			&book.UpdatedAt,
		); err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, rows.Err()
}
