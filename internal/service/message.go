package service

import (
	"context"
	"log/slog"

	"github.com/bgc/platform/internal/domain"
	"github.com/bgc/platform/internal/guard"
	"github.com/bgc/platform/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MessageService handles the admin inbox: members send notes, admins read
// and respond.
type MessageService struct {
	pool     *pgxpool.Pool
	users    repository.UserRepository
	messages repository.MessageRepository
	outbox   repository.OutboxRepository
	logger   *slog.Logger
}

// NewMessageService creates a MessageService.
func NewMessageService(
	pool *pgxpool.Pool,
	users repository.UserRepository,
	messages repository.MessageRepository,
	outbox repository.OutboxRepository,
	logger *slog.Logger,
) *MessageService {
	return &MessageService{
		pool:     pool,
		users:    users,
		messages: messages,
		outbox:   outbox,
		logger:   logger,
	}
}

// SendInput holds the message fields.
type SendInput struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
}

// Send files a message into the admin inbox. Members only; the sender's name
// and member ID are snapshotted at send time.
func (s *MessageService) Send(ctx context.Context, callerID uuid.UUID, input SendInput) (*domain.Message, error) {
	if input.Subject == "" {
		return nil, domain.ErrValidation("subject is required")
	}
	if input.Content == "" {
		return nil, domain.ErrValidation("content is required")
	}

	caller, err := s.users.FindByID(ctx, s.pool, callerID)
	if err != nil {
		return nil, domain.ErrInternal("find user", err)
	}
	if err := guard.RequireMember(caller); err != nil {
		return nil, err
	}

	message := &domain.Message{
		ID:               uuid.New(),
		FromUserID:       callerID,
		FromUserName:     caller.FullName,
		FromUserUniqueID: caller.UniqueID,
		Subject:          input.Subject,
		Content:          input.Content,
	}
	if err := s.messages.Insert(ctx, s.pool, message); err != nil {
		return nil, domain.ErrInternal("insert message", err)
	}
	return message, nil
}

// List returns the whole inbox, newest first. Admin only.
func (s *MessageService) List(ctx context.Context, callerID uuid.UUID) ([]domain.Message, error) {
	caller, err := s.users.FindByID(ctx, s.pool, callerID)
	if err != nil {
		return nil, domain.ErrInternal("find user", err)
	}
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	messages, err := s.messages.ListAll(ctx, s.pool)
	if err != nil {
		return nil, domain.ErrInternal("list messages", err)
	}
	return messages, nil
}

// UnreadCount returns the number of unread messages. Admin only.
func (s *MessageService) UnreadCount(ctx context.Context, callerID uuid.UUID) (int, error) {
	caller, err := s.users.FindByID(ctx, s.pool, callerID)
	if err != nil {
		return 0, domain.ErrInternal("find user", err)
	}
	if err := requireAdmin(caller); err != nil {
		return 0, err
	}

	n, err := s.messages.CountUnread(ctx, s.pool)
	if err != nil {
		return 0, domain.ErrInternal("count unread", err)
	}
	return n, nil
}

// MarkRead marks a message as read. Admin only; idempotent.
func (s *MessageService) MarkRead(ctx context.Context, callerID, messageID uuid.UUID) error {
	caller, err := s.users.FindByID(ctx, s.pool, callerID)
	if err != nil {
		return domain.ErrInternal("find user", err)
	}
	if err := requireAdmin(caller); err != nil {
		return err
	}

	if err := s.messages.MarkRead(ctx, s.pool, messageID); err != nil {
		if isNoRows(err) {
			return domain.ErrNotFound("message", messageID.String())
		}
		return domain.ErrInternal("mark read", err)
	}
	return nil
}

// Respond stores the admin response on a message; responding forces the
// message read and stamps responded_at. Admin only.
func (s *MessageService) Respond(ctx context.Context, callerID, messageID uuid.UUID, response string) (*domain.Message, error) {
	if response == "" {
		return nil, domain.ErrValidation("response is required")
	}

	caller, err := s.users.FindByID(ctx, s.pool, callerID)
	if err != nil {
		return nil, domain.ErrInternal("find user", err)
	}
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	message, err := s.messages.Respond(ctx, tx, messageID, response)
	if err != nil {
		return nil, domain.ErrInternal("respond to message", err)
	}
	if message == nil {
		return nil, domain.ErrNotFound("message", messageID.String())
	}
	if err := s.outbox.Insert(ctx, tx, domain.NewMessageRespondedEvent(messageID, callerID)); err != nil {
		return nil, domain.ErrInternal("write outbox", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit tx", err)
	}

	s.logger.Info("message responded", "message_id", messageID, "by", callerID)
	return message, nil
}
