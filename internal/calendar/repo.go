package calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/letimartin/traincal/internal/telemetry/tracing"
	"github.com/letimartin/traincal/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// ListParams filters the item listing. Nil fields mean "no filter".
type ListParams struct {
	Type *ItemType
	From *string // inclusive, ISO date
	To   *string // inclusive, ISO date
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const itemColumns = `
	id, type, date, end_date, title,
	sport, duration, zone, intensity, tss, status,
	priority, impact, restriction, event_time, description
`

func scanItem(row pgx.Row) (*Item, error) {
	item := &Item{}
	err := row.Scan(
		&item.ID, &item.Type, &item.Date, &item.EndDate, &item.Title,
		&item.Sport, &item.Duration, &item.Zone, &item.Intensity, &item.TSS, &item.Status,
		&item.Priority, &item.Impact, &item.Restriction, &item.Time, &item.Description,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *Repo) Add(ctx context.Context, item Item) (_ *Item, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.calendar.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
		INSERT INTO calendar_item (
			type, date, end_date, title,
			sport, duration, zone, intensity, tss, status,
			priority, impact, restriction, event_time, description
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`,
		item.Type, item.Date, item.EndDate, item.Title,
		item.Sport, item.Duration, item.Zone, item.Intensity, item.TSS, item.Status,
		item.Priority, item.Impact, item.Restriction, item.Time, item.Description,
	).Scan(&item.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, item.ID)
		}
		return nil, err
	}
	return &item, nil
}

func (r *Repo) Get(ctx context.Context, id int64) (_ *Item, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.calendar.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("item.id", id))

	item, err := scanItem(r.db.QueryRow(ctx, `
		SELECT `+itemColumns+`
		FROM calendar_item
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %d", ErrItemNotFound, id)
		}
		return nil, err
	}
	return item, nil
}

// List returns items matching the params, ordered by date then insertion
// order. That ordering is what the aggregator's stable sorting ties break on.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Item, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.calendar.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	if params.Type != nil {
		span.SetAttributes(attribute.String("type", string(*params.Type)))
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+itemColumns+`
		FROM calendar_item
		WHERE ($1::text IS NULL OR type = $1)
		  AND ($2::text IS NULL OR date >= $2)
		  AND ($3::text IS NULL OR date <= $3)
		ORDER BY date, id
	`,
		params.Type, params.From, params.To,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// UpdateWorkoutStatus sets the status of a workout item. Non-workout items
// are rejected, the status field is meaningless for them.
func (r *Repo) UpdateWorkoutStatus(ctx context.Context, id int64, status WorkoutStatus) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.calendar.updateWorkoutStatus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("item.id", id))
	span.SetAttributes(attribute.String("status", status.String()))

	tag, err := r.db.Exec(ctx, `
		UPDATE calendar_item
		SET status = $1
		WHERE id = $2 AND type = $3
	`, status, id, ItemTypeWorkout)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		// find out whether the item is missing or just not a workout
		item, getErr := r.Get(ctx, id)
		if getErr != nil {
			return getErr
		}
		return fmt.Errorf("%w: %d is %s", ErrNotAWorkout, id, item.Type)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.calendar.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("item.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM calendar_item WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %d", ErrItemNotFound, id)
	}
	return nil
}
