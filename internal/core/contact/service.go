// Copyright (c) 2026 Atelier. All rights reserved.
// Author: hello@atelier.gallery

package contact

import (
	"context"
	"log/slog"

	"github.com/atelierhq/atelier/internal/platform/validate"
	"github.com/atelierhq/atelier/pkg/pagination"
	"github.com/atelierhq/atelier/pkg/uuidv7"
)

// Contact messages feed only the admin inbox, which is never cached, so
// this service does not touch the page cache.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// SendMessage records a visitor message. New messages always start unread
// and unarchived regardless of what the client sent.
func (service *Service) SendMessage(context context.Context, message *ContactMessage) (string, error) {
	validator := &validate.Validator{}
	validator.
		Required(FieldName, message.Name).
		MaxLen(FieldName, message.Name, 200).
		Required(FieldEmail, message.Email).
		Email(FieldEmail, message.Email).
		Required(FieldMessage, message.Message).
		MaxLen(FieldMessage, message.Message, 5000)

	if err := validator.Err(); err != nil {
		return "", err
	}

	message.ID = uuidv7.Must()
	message.IsRead = false
	message.IsArchived = false

	if err := service.repo.CreateMessage(context, message); err != nil {
		return "", err
	}

	service.logger.Info("contact_message_received", slog.String("message_id", message.ID))
	return message.ID, nil
}

// ListMessages returns one inbox page plus pagination metadata.
func (service *Service) ListMessages(context context.Context, includeArchived bool, params pagination.Params) ([]*ContactMessage, pagination.Meta, error) {
	messages, err := service.repo.ListMessages(context, includeArchived, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	total, err := service.repo.CountMessages(context, includeArchived)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return messages, pagination.NewMeta(params.Page, params.Limit, total), nil
}

func (service *Service) GetMessage(context context.Context, id string) (*ContactMessage, error) {
	return service.repo.GetMessage(context, id)
}

// MarkRead flags a message as read. Marking an already-read message again
// is a no-op apart from bumping updatedat.
func (service *Service) MarkRead(context context.Context, id string) (*ContactMessage, error) {
	message, err := service.repo.GetMessage(context, id)
	if err != nil {
		return nil, err
	}

	message.IsRead = true
	if err := service.repo.UpdateMessage(context, message); err != nil {
		return nil, err
	}

	service.logger.Info("contact_message_read", slog.String("message_id", id))
	return message, nil
}

// Archive moves a message out of the default inbox view. The message does
// not need to be read first.
func (service *Service) Archive(context context.Context, id string) (*ContactMessage, error) {
	message, err := service.repo.GetMessage(context, id)
	if err != nil {
		return nil, err
	}

	message.IsArchived = true
	if err := service.repo.UpdateMessage(context, message); err != nil {
		return nil, err
	}

	service.logger.Info("contact_message_archived", slog.String("message_id", id))
	return message, nil
}

func (service *Service) DeleteMessage(context context.Context, id string) error {
	if err := service.repo.DeleteMessage(context, id); err != nil {
		return err
	}

	service.logger.Warn("contact_message_deleted", slog.String("message_id", id))
	return nil
}

// CountUnread powers the inbox badge: unread and not archived.
func (service *Service) CountUnread(context context.Context) (int, error) {
	return service.repo.CountUnread(context)
}
