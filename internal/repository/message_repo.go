package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"nila-backend/internal/domain"
)

// MessageRepository define el contrato de persistencia para mensajes.
type MessageRepository interface {
	Create(ctx context.Context, message domain.Message) (domain.Message, error)
	ListByUserID(ctx context.Context, userID string) ([]domain.Message, error)
	ListRecentByUserID(ctx context.Context, userID string, limit int) ([]domain.Message, error)
}

// PgMessageRepository implementa MessageRepository usando pgxpool.
type PgMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

// Create inserta el mensaje y devuelve la fila persistida. El timestamp y el
// seq los asigna la base de datos, no el llamador.
func (r *PgMessageRepository) Create(ctx context.Context, message domain.Message) (domain.Message, error) {
	const query = `
		INSERT INTO messages (id, user_id, content, role)
		VALUES ($1, $2, $3, $4)
		RETURNING seq, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		message.ID,
		message.UserID,
		message.Content,
		message.Role,
	).Scan(&message.Seq, &message.CreatedAt)
	if err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

func (r *PgMessageRepository) ListByUserID(ctx context.Context, userID string) ([]domain.Message, error) {
	const query = `
		SELECT id, user_id, content, role, seq, created_at
		FROM messages
		WHERE user_id = $1
		ORDER BY created_at ASC, seq ASC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMessages(rows)
}

// ListRecentByUserID devuelve los últimos mensajes en orden descendente; el
// llamador los reordena cronológicamente antes de usarlos.
func (r *PgMessageRepository) ListRecentByUserID(ctx context.Context, userID string, limit int) ([]domain.Message, error) {
	const query = `
		SELECT id, user_id, content, role, seq, created_at
		FROM messages
		WHERE user_id = $1
		ORDER BY created_at DESC, seq DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMessages(rows)
}

type pgRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanMessages(rows pgRows) ([]domain.Message, error) {
	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		err := rows.Scan(
			&msg.ID,
			&msg.UserID,
			&msg.Content,
			&msg.Role,
			&msg.Seq,
			&msg.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}
