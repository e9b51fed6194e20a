// Package repo provides the appointments repository implementation
package repo

import (
	"context"
	"errors"
	"time"

	"nadbot/internal/modkit/repokit"
	perr "nadbot/internal/platform/errors"
	"nadbot/internal/services/appointments/domain"

	"github.com/jackc/pgx/v5"
)

// Repo is the appointments persistence surface used by the service layer
type Repo interface {
	Insert(ctx context.Context, a domain.Appointment) error
	GetByID(ctx context.Context, chatID, id string) (domain.Appointment, error)
	ListByChat(ctx context.Context, chatID string, upcomingAfter *time.Time, limit int) ([]domain.Appointment, error)
	Update(ctx context.Context, a domain.Appointment) error
	Delete(ctx context.Context, chatID, id string) error

	// reminder scan surface, runs outside chat scoping
	ListDueBetween(ctx context.Context, from, until time.Time) ([]domain.Appointment, error)
	MarkNotified(ctx context.Context, id string, leadIndex int) error
}

type (
	// PG is a Postgres implementation of the appointments repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder for the Postgres implementation
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind attaches a Queryer to the Postgres implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const appointmentCols = `
	id, chat_id, title, at, location, building, contact, phone,
	confidence, lead_days, notified, created_at, updated_at`

func (r *queries) Insert(ctx context.Context, a domain.Appointment) error {
	const sql = `
		INSERT INTO appointments (
			id, chat_id, title, at, location, building, contact, phone,
			confidence, lead_days, notified, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.q.Exec(ctx, sql,
		a.ID, a.ChatID, a.Title, a.At, a.Location, a.Building, a.Contact, a.Phone,
		a.Confidence, a.LeadDays, a.Notified, a.CreatedAt, a.UpdatedAt,
	)
	return err
}

func (r *queries) GetByID(ctx context.Context, chatID, id string) (domain.Appointment, error) {
	const sql = `
		SELECT` + appointmentCols + `
		FROM appointments
		WHERE chat_id = $1 AND id = $2
	`
	row := r.q.QueryRow(ctx, sql, chatID, id)
	a, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Appointment{}, perr.NotFoundf("appointment %s not found", id)
		}
		return domain.Appointment{}, err
	}
	return a, nil
}

func (r *queries) ListByChat(
	ctx context.Context, chatID string, upcomingAfter *time.Time, limit int,
) ([]domain.Appointment, error) {
	const sql = `
		SELECT` + appointmentCols + `
		FROM appointments
		WHERE chat_id = $1
		  AND ($2::timestamptz IS NULL OR at >= $2)
		ORDER BY at ASC
		LIMIT $3
	`
	rows, err := r.q.Query(ctx, sql, chatID, upcomingAfter, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *queries) Update(ctx context.Context, a domain.Appointment) error {
	const sql = `
		UPDATE appointments
		SET title = $3, at = $4, location = $5, building = $6,
		    contact = $7, phone = $8, updated_at = $9
		WHERE chat_id = $1 AND id = $2
	`
	tag, err := r.q.Exec(ctx, sql,
		a.ChatID, a.ID, a.Title, a.At, a.Location, a.Building, a.Contact, a.Phone, a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("appointment %s not found", a.ID)
	}
	return nil
}

func (r *queries) Delete(ctx context.Context, chatID, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM appointments WHERE chat_id = $1 AND id = $2`, chatID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("appointment %s not found", id)
	}
	return nil
}

// ListDueBetween returns appointments inside the reminder horizon with at
// least one unsent lead window. The caller is expected to run this under
// superadmin scope since it crosses chats
func (r *queries) ListDueBetween(ctx context.Context, from, until time.Time) ([]domain.Appointment, error) {
	const sql = `
		SELECT` + appointmentCols + `
		FROM appointments
		WHERE at >= $1 AND at < $2
		  AND NOT (true = ALL(notified))
		ORDER BY at ASC
	`
	rows, err := r.q.Query(ctx, sql, from, until)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *queries) MarkNotified(ctx context.Context, id string, leadIndex int) error {
	// postgres arrays are 1-based
	const sql = `
		UPDATE appointments
		SET notified[$2] = true, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := r.q.Exec(ctx, sql, id, leadIndex+1)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("appointment %s not found", id)
	}
	return nil
}

type scanner interface{ Scan(dest ...any) error }

func scanAppointment(row scanner) (domain.Appointment, error) {
	var a domain.Appointment
	err := row.Scan(
		&a.ID, &a.ChatID, &a.Title, &a.At, &a.Location, &a.Building, &a.Contact, &a.Phone,
		&a.Confidence, &a.LeadDays, &a.Notified, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}
