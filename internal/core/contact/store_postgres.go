package contact

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

func messageColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.ContentContactMessage.ID, schema.ContentContactMessage.Name,
		schema.ContentContactMessage.Email, schema.ContentContactMessage.Subject,
		schema.ContentContactMessage.Message, schema.ContentContactMessage.IsRead,
		schema.ContentContactMessage.IsArchived,
		schema.ContentContactMessage.CreatedAt, schema.ContentContactMessage.UpdatedAt,
	)
}

func scanMessage(row interface{ Scan(...any) error }) (*ContactMessage, error) {
	m := &ContactMessage{}
	err := row.Scan(
		&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message,
		&m.IsRead, &m.IsArchived, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func (repository *PostgresRepository) ListMessages(context context.Context, includeArchived bool, limit, offset int) ([]*ContactMessage, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s`, messageColumns(), schema.ContentContactMessage.Table)

	if !includeArchived {
		query += fmt.Sprintf(" WHERE %s = FALSE", schema.ContentContactMessage.IsArchived)
	}

	query += fmt.Sprintf(" ORDER BY %s DESC LIMIT $1 OFFSET $2", schema.ContentContactMessage.CreatedAt)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, dberr.Wrap(err, "list_contact_messages")
	}
	defer rows.Close()

	var messages []*ContactMessage
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_contact_message")
		}
		messages = append(messages, m)
	}

	return messages, nil
}

func (repository *PostgresRepository) CountMessages(context context.Context, includeArchived bool) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, schema.ContentContactMessage.Table)

	if !includeArchived {
		query += fmt.Sprintf(" WHERE %s = FALSE", schema.ContentContactMessage.IsArchived)
	}

	var count int
	err := repository.db.QueryRow(context, query).Scan(&count)
	return count, dberr.Wrap(err, "count_contact_messages")
}

func (repository *PostgresRepository) GetMessage(context context.Context, id string) (*ContactMessage, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		messageColumns(), schema.ContentContactMessage.Table, schema.ContentContactMessage.ID,
	)

	m, err := scanMessage(repository.db.QueryRow(context, query, id))
	return m, dberr.Wrap(err, "get_contact_message")
}

func (repository *PostgresRepository) CreateMessage(context context.Context, m *ContactMessage) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.ContentContactMessage.Table,
		schema.ContentContactMessage.ID, schema.ContentContactMessage.Name,
		schema.ContentContactMessage.Email, schema.ContentContactMessage.Subject,
		schema.ContentContactMessage.Message, schema.ContentContactMessage.IsRead,
		schema.ContentContactMessage.IsArchived,
		schema.ContentContactMessage.CreatedAt, schema.ContentContactMessage.UpdatedAt,
		schema.ContentContactMessage.CreatedAt, schema.ContentContactMessage.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		m.ID, m.Name, m.Email, m.Subject, m.Message, m.IsRead, m.IsArchived,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
	return dberr.Wrap(err, "create_contact_message")
}

func (repository *PostgresRepository) UpdateMessage(context context.Context, m *ContactMessage) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.ContentContactMessage.Table,
		schema.ContentContactMessage.IsRead, schema.ContentContactMessage.IsArchived,
		schema.ContentContactMessage.UpdatedAt,
		schema.ContentContactMessage.ID,
		schema.ContentContactMessage.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, m.ID, m.IsRead, m.IsArchived).Scan(&m.UpdatedAt)
	return dberr.Wrap(err, "update_contact_message")
}

func (repository *PostgresRepository) DeleteMessage(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.ContentContactMessage.Table, schema.ContentContactMessage.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_contact_message")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) CountUnread(context context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = FALSE AND %s = FALSE`,
		schema.ContentContactMessage.Table,
		schema.ContentContactMessage.IsRead, schema.ContentContactMessage.IsArchived,
	)

	var count int
	err := repository.db.QueryRow(context, query).Scan(&count)
	return count, dberr.Wrap(err, "count_unread_contact_messages")
}
