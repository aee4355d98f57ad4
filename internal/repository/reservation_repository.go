package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dmolina/parroquia-api/internal/model"
)

// ReservationRepo manages mass reservations.  Availability reads are plain
// snapshots; only Create takes a transaction, because the capacity
// re-check and the insert must be atomic to prevent double-booking the
// last seat of a slot.
type ReservationRepo struct{ db *sql.DB }

func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

const reservationCols = "id, confirmation_code, reservation_date, reservation_time, location, nombre, documento, email, telefono, mass_type_id, intentions, status, payment_method, payment_ref, created_at, updated_at"

func scanReservation(s interface{ Scan(...any) error }) (model.Reservation, error) {
	var r model.Reservation
	var location, email, telefono, intentions, payMethod, payRef sql.NullString
	err := s.Scan(&r.ID, &r.ConfirmationCode, &r.ReservationDate, &r.ReservationTime,
		&location, &r.Nombre, &r.Documento, &email, &telefono, &r.MassTypeID,
		&intentions, &r.Status, &payMethod, &payRef, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return model.Reservation{}, translate(err)
	}
	if location.Valid {
		r.Location = &location.String
	}
	if email.Valid {
		r.Email = &email.String
	}
	if telefono.Valid {
		r.Telefono = &telefono.String
	}
	if intentions.Valid {
		r.Intentions = &intentions.String
	}
	if payMethod.Valid {
		r.PaymentMethod = &payMethod.String
	}
	if payRef.Valid {
		r.PaymentRef = &payRef.String
	}
	return r, nil
}

// CountsByDate returns, for one date, the number of non-cancelled
// reservations per time.  Times with zero reservations are simply absent
// from the map.
func (r *ReservationRepo) CountsByDate(ctx context.Context, date string) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT reservation_time, COUNT(*) FROM reservations
		 WHERE reservation_date = ? AND status <> ?
		 GROUP BY reservation_time`,
		date, model.ReservationCancelled)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()
	out := map[string]int{}
	for rows.Next() {
		var t string
		var n int
		if err := rows.Scan(&t, &n); err != nil {
			return nil, translate(err)
		}
		out[t] = n
	}
	return out, translate(rows.Err())
}

// FindByCodeAndDocumento is the public verification lookup.  Both values
// must match jointly; the code arrives already upper-cased.
func (r *ReservationRepo) FindByCodeAndDocumento(ctx context.Context, code, documento string) (model.Reservation, error) {
	return scanReservation(r.db.QueryRowContext(ctx,
		"SELECT "+reservationCols+" FROM reservations WHERE confirmation_code = ? AND documento = ? LIMIT 1",
		code, documento))
}

// Create inserts a reservation after re-checking slot capacity inside a
// transaction.  The count query locks matching rows (FOR UPDATE) so two
// concurrent requests cannot both read count == max-1 and insert.  When
// the slot is already full, ErrSlotFull is returned and nothing is written.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation, maxReservations int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return translate(err)
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reservations
		 WHERE reservation_date = ? AND reservation_time = ? AND status <> ?
		 FOR UPDATE`,
		res.ReservationDate, res.ReservationTime, model.ReservationCancelled).Scan(&count)
	if err != nil {
		return translate(err)
	}
	if count >= maxReservations {
		return ErrSlotFull
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO reservations
		 (confirmation_code, reservation_date, reservation_time, location, nombre, documento,
		  email, telefono, mass_type_id, intentions, status)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		res.ConfirmationCode, res.ReservationDate, res.ReservationTime, res.Location,
		res.Nombre, res.Documento, res.Email, res.Telefono, res.MassTypeID,
		res.Intentions, model.ReservationPending)
	if err != nil {
		return translate(err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return translate(err)
	}

	created, err := r.Get(ctx, uint64(id))
	if err != nil {
		return err
	}
	*res = created
	return nil
}

// ErrSlotFull is returned when the transactional capacity re-check finds
// the slot at its cap.
var ErrSlotFull = errors.New("horario sin cupos disponibles")

// ReservationFilter narrows admin listings.
type ReservationFilter struct {
	Status string
	Date   string
	Search string
	Limit  int
	Offset int
}

// List returns reservations newest first, honoring the filter.  Search is a
// case-insensitive substring across name, document, code and email.
func (r *ReservationRepo) List(ctx context.Context, f ReservationFilter) ([]model.Reservation, error) {
	q := "SELECT " + reservationCols + " FROM reservations WHERE 1=1"
	args := []any{}
	if f.Status != "" {
		q += " AND status = ?"
		args = append(args, f.Status)
	}
	if f.Date != "" {
		q += " AND reservation_date = ?"
		args = append(args, f.Date)
	}
	if f.Search != "" {
		like := "%" + strings.TrimSpace(f.Search) + "%"
		q += " AND (nombre LIKE ? OR documento LIKE ? OR confirmation_code LIKE ? OR email LIKE ?)"
		args = append(args, like, like, like, like)
	}
	q += " ORDER BY created_at DESC, id DESC"
	if f.Limit > 0 {
		q += " LIMIT ? OFFSET ?"
		args = append(args, f.Limit, f.Offset)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()
	out := []model.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, translate(rows.Err())
}

func (r *ReservationRepo) Get(ctx context.Context, id uint64) (model.Reservation, error) {
	return scanReservation(r.db.QueryRowContext(ctx,
		"SELECT "+reservationCols+" FROM reservations WHERE id = ? LIMIT 1", id))
}

// SetStatus transitions a reservation and optionally records payment data.
func (r *ReservationRepo) SetStatus(ctx context.Context, id uint64, status string, paymentMethod, paymentRef *string) (model.Reservation, error) {
	if _, err := r.Get(ctx, id); err != nil {
		return model.Reservation{}, err
	}
	var set setClause
	set.add("status", status)
	set.addString("payment_method", paymentMethod)
	set.addString("payment_ref", paymentRef)
	args := append(set.args, id)
	if _, err := r.db.ExecContext(ctx,
		"UPDATE reservations SET "+set.assignments()+" WHERE id = ?", args...); err != nil {
		return model.Reservation{}, translate(err)
	}
	return r.Get(ctx, id)
}

func (r *ReservationRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM reservations WHERE id = ?", id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByStatus returns reservation counts grouped by status for the
// dashboard.
func (r *ReservationRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT status, COUNT(*) FROM reservations GROUP BY status")
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()
	out := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, translate(err)
		}
		out[status] = n
	}
	return out, translate(rows.Err())
}
