package exhibition

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/atelierhq/atelier/internal/platform/database/schema"
	"github.com/atelierhq/atelier/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListExhibitions(context context.Context) ([]*Exhibition, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		schema.ContentExhibition.ID, schema.ContentExhibition.Title, schema.ContentExhibition.Description,
		schema.ContentExhibition.StartDate, schema.ContentExhibition.EndDate, schema.ContentExhibition.Location,
		schema.ContentExhibition.GalleryName, schema.ContentExhibition.GalleryURL, schema.ContentExhibition.ImageURL,
		schema.ContentExhibition.Images, schema.ContentExhibition.CreatedAt, schema.ContentExhibition.UpdatedAt,
		schema.ContentExhibition.Table,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_exhibitions")
	}
	defer rows.Close()

	var exhibitions []*Exhibition
	for rows.Next() {
		e := &Exhibition{}
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.StartDate, &e.EndDate, &e.Location,
			&e.GalleryName, &e.GalleryURL, &e.ImageURL, &e.Images, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_exhibition")
		}
		exhibitions = append(exhibitions, e)
	}

	return exhibitions, nil
}

func (repository *PostgresRepository) GetExhibition(context context.Context, id string) (*Exhibition, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.ContentExhibition.ID, schema.ContentExhibition.Title, schema.ContentExhibition.Description,
		schema.ContentExhibition.StartDate, schema.ContentExhibition.EndDate, schema.ContentExhibition.Location,
		schema.ContentExhibition.GalleryName, schema.ContentExhibition.GalleryURL, schema.ContentExhibition.ImageURL,
		schema.ContentExhibition.Images, schema.ContentExhibition.CreatedAt, schema.ContentExhibition.UpdatedAt,
		schema.ContentExhibition.Table, schema.ContentExhibition.ID,
	)

	e := &Exhibition{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&e.ID, &e.Title, &e.Description, &e.StartDate, &e.EndDate, &e.Location,
		&e.GalleryName, &e.GalleryURL, &e.ImageURL, &e.Images, &e.CreatedAt, &e.UpdatedAt,
	)

	return e, dberr.Wrap(err, "get_exhibition")
}

func (repository *PostgresRepository) CreateExhibition(context context.Context, e *Exhibition) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.ContentExhibition.Table,
		schema.ContentExhibition.ID, schema.ContentExhibition.Title, schema.ContentExhibition.Description,
		schema.ContentExhibition.StartDate, schema.ContentExhibition.EndDate, schema.ContentExhibition.Location,
		schema.ContentExhibition.GalleryName, schema.ContentExhibition.GalleryURL, schema.ContentExhibition.ImageURL,
		schema.ContentExhibition.Images, schema.ContentExhibition.CreatedAt, schema.ContentExhibition.UpdatedAt,
		schema.ContentExhibition.CreatedAt, schema.ContentExhibition.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		e.ID, e.Title, e.Description, e.StartDate, e.EndDate, e.Location,
		e.GalleryName, e.GalleryURL, e.ImageURL, e.Images,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	return dberr.Wrap(err, "create_exhibition")
}

func (repository *PostgresRepository) UpdateExhibition(context context.Context, e *Exhibition) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.ContentExhibition.Table,
		schema.ContentExhibition.Title, schema.ContentExhibition.Description,
		schema.ContentExhibition.StartDate, schema.ContentExhibition.EndDate, schema.ContentExhibition.Location,
		schema.ContentExhibition.GalleryName, schema.ContentExhibition.GalleryURL, schema.ContentExhibition.ImageURL,
		schema.ContentExhibition.Images, schema.ContentExhibition.UpdatedAt,
		schema.ContentExhibition.ID,
		schema.ContentExhibition.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		e.ID, e.Title, e.Description, e.StartDate, e.EndDate, e.Location,
		e.GalleryName, e.GalleryURL, e.ImageURL, e.Images,
	).Scan(&e.UpdatedAt)
	return dberr.Wrap(err, "update_exhibition")
}

func (repository *PostgresRepository) DeleteExhibition(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentExhibition.Table, schema.ContentExhibition.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_exhibition")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
