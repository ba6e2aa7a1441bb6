package about

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

func aboutColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.ContentSiteAbout.ID, schema.ContentSiteAbout.Title, schema.ContentSiteAbout.Description,
		schema.ContentSiteAbout.ArtistName, schema.ContentSiteAbout.ArtistPortrait,
		schema.ContentSiteAbout.Biography, schema.ContentSiteAbout.ArtisticJourney,
		schema.ContentSiteAbout.ArtPhilosophy, schema.ContentSiteAbout.Education,
		schema.ContentSiteAbout.Skills, schema.ContentSiteAbout.ContactMessage,
		schema.ContentSiteAbout.CreatedAt, schema.ContentSiteAbout.UpdatedAt,
	)
}

func (repository *PostgresRepository) GetAbout(context context.Context) (*SiteAbout, error) {
	// Singleton table: at most one row ever exists.
	query := fmt.Sprintf(`SELECT %s FROM %s LIMIT 1`, aboutColumns(), schema.ContentSiteAbout.Table)

	a := &SiteAbout{}
	err := repository.db.QueryRow(context, query).Scan(
		&a.ID, &a.Title, &a.Description, &a.ArtistName, &a.ArtistPortrait,
		&a.Biography, &a.ArtisticJourney, &a.ArtPhilosophy, &a.Education,
		&a.Skills, &a.ContactMessage, &a.CreatedAt, &a.UpdatedAt,
	)

	return a, dberr.Wrap(err, "get_about")
}

func (repository *PostgresRepository) CreateAbout(context context.Context, a *SiteAbout) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.ContentSiteAbout.Table,
		schema.ContentSiteAbout.ID, schema.ContentSiteAbout.Title, schema.ContentSiteAbout.Description,
		schema.ContentSiteAbout.ArtistName, schema.ContentSiteAbout.ArtistPortrait,
		schema.ContentSiteAbout.Biography, schema.ContentSiteAbout.ArtisticJourney,
		schema.ContentSiteAbout.ArtPhilosophy, schema.ContentSiteAbout.Education,
		schema.ContentSiteAbout.Skills, schema.ContentSiteAbout.ContactMessage,
		schema.ContentSiteAbout.CreatedAt, schema.ContentSiteAbout.UpdatedAt,
		schema.ContentSiteAbout.CreatedAt, schema.ContentSiteAbout.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.ID, a.Title, a.Description, a.ArtistName, a.ArtistPortrait,
		a.Biography, a.ArtisticJourney, a.ArtPhilosophy, a.Education,
		a.Skills, a.ContactMessage,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	return dberr.Wrap(err, "create_about")
}

func (repository *PostgresRepository) UpdateAbout(context context.Context, a *SiteAbout) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10, %s = $11, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.ContentSiteAbout.Table,
		schema.ContentSiteAbout.Title, schema.ContentSiteAbout.Description,
		schema.ContentSiteAbout.ArtistName, schema.ContentSiteAbout.ArtistPortrait,
		schema.ContentSiteAbout.Biography, schema.ContentSiteAbout.ArtisticJourney,
		schema.ContentSiteAbout.ArtPhilosophy, schema.ContentSiteAbout.Education,
		schema.ContentSiteAbout.Skills, schema.ContentSiteAbout.ContactMessage,
		schema.ContentSiteAbout.UpdatedAt,
		schema.ContentSiteAbout.ID,
		schema.ContentSiteAbout.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.ID, a.Title, a.Description, a.ArtistName, a.ArtistPortrait,
		a.Biography, a.ArtisticJourney, a.ArtPhilosophy, a.Education,
		a.Skills, a.ContactMessage,
	).Scan(&a.UpdatedAt)
	return dberr.Wrap(err, "update_about")
}
