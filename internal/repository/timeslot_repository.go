package repository

import (
	"context"
	"database/sql"

	"github.com/dmolina/parroquia-api/internal/model"
)

// TimeSlotRepo manages reservable time slots per day-type bucket.
type TimeSlotRepo struct{ db *sql.DB }

func NewTimeSlotRepo(db *sql.DB) *TimeSlotRepo { return &TimeSlotRepo{db: db} }

const timeSlotCols = "id, day_type, time, location, max_reservations, display_order, is_active, created_at, updated_at"

func scanTimeSlot(s interface{ Scan(...any) error }) (model.TimeSlot, error) {
	var t model.TimeSlot
	var location sql.NullString
	err := s.Scan(&t.ID, &t.DayType, &t.Time, &location, &t.MaxReservations,
		&t.DisplayOrder, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return model.TimeSlot{}, translate(err)
	}
	if location.Valid {
		t.Location = &location.String
	}
	return t, nil
}

// List returns slots, optionally narrowed to one day-type, ordered by
// display_order with creation order breaking ties.
func (r *TimeSlotRepo) List(ctx context.Context, onlyActive bool, dayType string) ([]model.TimeSlot, error) {
	q := "SELECT " + timeSlotCols + " FROM time_slots WHERE 1=1"
	args := []any{}
	if onlyActive {
		q += " AND is_active = TRUE"
	}
	if dayType != "" {
		q += " AND day_type = ?"
		args = append(args, dayType)
	}
	q += " ORDER BY display_order, id"
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()
	out := []model.TimeSlot{}
	for rows.Next() {
		t, err := scanTimeSlot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, translate(rows.Err())
}

// ListActiveByDayType returns the active slots the availability engine
// iterates for a resolved day-type.
func (r *TimeSlotRepo) ListActiveByDayType(ctx context.Context, dayType string) ([]model.TimeSlot, error) {
	return r.List(ctx, true, dayType)
}

func (r *TimeSlotRepo) Get(ctx context.Context, id uint64) (model.TimeSlot, error) {
	return scanTimeSlot(r.db.QueryRowContext(ctx,
		"SELECT "+timeSlotCols+" FROM time_slots WHERE id = ? LIMIT 1", id))
}

// GetByDayTypeAndTime resolves the slot a reservation request targets.
func (r *TimeSlotRepo) GetByDayTypeAndTime(ctx context.Context, dayType, t string) (model.TimeSlot, error) {
	return scanTimeSlot(r.db.QueryRowContext(ctx,
		"SELECT "+timeSlotCols+" FROM time_slots WHERE day_type = ? AND time = ? AND is_active = TRUE LIMIT 1",
		dayType, t))
}

func (r *TimeSlotRepo) Create(ctx context.Context, t *model.TimeSlot) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO time_slots (day_type, time, location, max_reservations, display_order)
		 SELECT ?, ?, ?, ?, COALESCE(MAX(display_order), 0) + 1 FROM time_slots WHERE day_type = ?`,
		t.DayType, t.Time, t.Location, t.MaxReservations, t.DayType)
	if err != nil {
		return translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	created, err := r.Get(ctx, uint64(id))
	if err != nil {
		return err
	}
	*t = created
	return nil
}

// TimeSlotUpdate carries optional new values; nil keeps the stored value.
type TimeSlotUpdate struct {
	DayType         *string
	Time            *string
	Location        *string
	MaxReservations *int
	DisplayOrder    *int
	IsActive        *bool
}

func (r *TimeSlotRepo) Update(ctx context.Context, id uint64, p TimeSlotUpdate) (model.TimeSlot, error) {
	if _, err := r.Get(ctx, id); err != nil {
		return model.TimeSlot{}, err
	}
	var set setClause
	set.addString("day_type", p.DayType)
	set.addString("time", p.Time)
	set.addString("location", p.Location)
	set.addInt("max_reservations", p.MaxReservations)
	set.addInt("display_order", p.DisplayOrder)
	set.addBool("is_active", p.IsActive)
	if set.empty() {
		return r.Get(ctx, id)
	}
	args := append(set.args, id)
	if _, err := r.db.ExecContext(ctx,
		"UPDATE time_slots SET "+set.assignments()+" WHERE id = ?", args...); err != nil {
		return model.TimeSlot{}, translate(err)
	}
	return r.Get(ctx, id)
}

func (r *TimeSlotRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM time_slots WHERE id = ?", id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
