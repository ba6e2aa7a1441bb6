package contact

import "context"

type Repository interface {
	// ListMessages returns a page of messages, newest first. Archived
	// messages are excluded unless includeArchived is set.
	ListMessages(context context.Context, includeArchived bool, limit, offset int) ([]*ContactMessage, error)

	// CountMessages counts messages visible under the same archive filter
	// as [ListMessages], for pagination metadata.
	CountMessages(context context.Context, includeArchived bool) (int, error)
	GetMessage(context context.Context, id string) (*ContactMessage, error)
	CreateMessage(context context.Context, message *ContactMessage) error
	UpdateMessage(context context.Context, message *ContactMessage) error
	DeleteMessage(context context.Context, id string) error
	// CountUnread counts messages that are neither read nor archived.
	CountUnread(context context.Context) (int, error)
}
