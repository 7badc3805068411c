package coach

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/letimartin/traincal/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrMessageNotFound = errors.New("coach message not found")

type PsqlApi struct {
	db *pgxpool.Pool
}

func NewPsqlApi(db *pgxpool.Pool) *PsqlApi {
	return &PsqlApi{
		db: db,
	}
}

func (api *PsqlApi) Add(ctx context.Context, message *Message) (_ *Message, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.coach.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if message.Content == "" || message.CreatedAt.IsZero() {
		return nil, errors.New("message content or timestamp empty")
	}

	var id int
	err = api.db.QueryRow(
		ctx,
		`INSERT INTO coach_message (author, content, created_at) VALUES ($1, $2, $3) RETURNING id;`,
		message.Author, message.Content, message.CreatedAt,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert coach message: %w", err)
	}

	message.Id = id
	return message, nil
}

func (api *PsqlApi) Get(ctx context.Context, messageId int) (_ *Message, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.coach.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	var author, content string
	var createdAt time.Time
	err = api.db.QueryRow(
		ctx,
		`SELECT id, author, content, created_at FROM coach_message WHERE id = $1;`,
		messageId,
	).Scan(&id, &author, &content, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}

	return &Message{
		Id:        id,
		Author:    author,
		Content:   content,
		CreatedAt: createdAt,
	}, nil
}

func (api *PsqlApi) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.coach.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := api.db.Exec(
		ctx,
		`DELETE FROM coach_message WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (api *PsqlApi) List(ctx context.Context) (_ []Message, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.coach.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := api.db.Query(
		ctx,
		`
			SELECT
				id, author, content, created_at
			FROM coach_message
			ORDER BY created_at DESC;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var id int
		var author, content string
		var createdAt time.Time
		if err := rows.Scan(&id, &author, &content, &createdAt); err != nil {
			return nil, err
		}
		messages = append(messages, Message{
			Id:        id,
			Author:    author,
			Content:   content,
			CreatedAt: createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}
