package repository

import (
	"context"
	"database/sql"

	"github.com/dmolina/parroquia-api/internal/model"
)

// MassRepo manages mass types (reservable categories with pricing) and the
// informational mass schedule.
type MassRepo struct{ db *sql.DB }

func NewMassRepo(db *sql.DB) *MassRepo { return &MassRepo{db: db} }

const massTypeCols = "id, tipo_misa, nombre, descripcion, precio, display_order, is_active, created_at, updated_at"
const massScheduleCols = "id, day_type, time, descripcion, location, display_order, is_active, created_at, updated_at"

func scanMassType(s interface{ Scan(...any) error }) (model.MassType, error) {
	var t model.MassType
	var descripcion sql.NullString
	err := s.Scan(&t.ID, &t.TipoMisa, &t.Nombre, &descripcion, &t.Precio,
		&t.DisplayOrder, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return model.MassType{}, translate(err)
	}
	if descripcion.Valid {
		t.Descripcion = &descripcion.String
	}
	return t, nil
}

func scanMassSchedule(s interface{ Scan(...any) error }) (model.MassSchedule, error) {
	var m model.MassSchedule
	var descripcion, location sql.NullString
	err := s.Scan(&m.ID, &m.DayType, &m.Time, &descripcion, &location,
		&m.DisplayOrder, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return model.MassSchedule{}, translate(err)
	}
	if descripcion.Valid {
		m.Descripcion = &descripcion.String
	}
	if location.Valid {
		m.Location = &location.String
	}
	return m, nil
}

// ----- mass types -----

func (r *MassRepo) ListTypes(ctx context.Context, onlyActive bool) ([]model.MassType, error) {
	q := "SELECT " + massTypeCols + " FROM mass_types"
	if onlyActive {
		q += " WHERE is_active = TRUE"
	}
	q += " ORDER BY display_order, id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()
	out := []model.MassType{}
	for rows.Next() {
		t, err := scanMassType(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, translate(rows.Err())
}

func (r *MassRepo) GetType(ctx context.Context, id uint64) (model.MassType, error) {
	return scanMassType(r.db.QueryRowContext(ctx,
		"SELECT "+massTypeCols+" FROM mass_types WHERE id = ? LIMIT 1", id))
}

func (r *MassRepo) CreateType(ctx context.Context, t *model.MassType) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO mass_types (tipo_misa, nombre, descripcion, precio, display_order)
		 SELECT ?, ?, ?, ?, COALESCE(MAX(display_order), 0) + 1 FROM mass_types`,
		t.TipoMisa, t.Nombre, t.Descripcion, t.Precio)
	if err != nil {
		return translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	created, err := r.GetType(ctx, uint64(id))
	if err != nil {
		return err
	}
	*t = created
	return nil
}

// MassTypeUpdate carries optional new values; nil keeps the stored value.
type MassTypeUpdate struct {
	TipoMisa     *string
	Nombre       *string
	Descripcion  *string
	Precio       *float64
	DisplayOrder *int
	IsActive     *bool
}

func (r *MassRepo) UpdateType(ctx context.Context, id uint64, p MassTypeUpdate) (model.MassType, error) {
	if _, err := r.GetType(ctx, id); err != nil {
		return model.MassType{}, err
	}
	var set setClause
	set.addString("tipo_misa", p.TipoMisa)
	set.addString("nombre", p.Nombre)
	set.addString("descripcion", p.Descripcion)
	set.addFloat("precio", p.Precio)
	set.addInt("display_order", p.DisplayOrder)
	set.addBool("is_active", p.IsActive)
	if set.empty() {
		return r.GetType(ctx, id)
	}
	args := append(set.args, id)
	if _, err := r.db.ExecContext(ctx,
		"UPDATE mass_types SET "+set.assignments()+" WHERE id = ?", args...); err != nil {
		return model.MassType{}, translate(err)
	}
	return r.GetType(ctx, id)
}

func (r *MassRepo) DeleteType(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM mass_types WHERE id = ?", id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ----- mass schedules -----

// ListSchedules returns schedule rows, optionally narrowed to one day-type.
func (r *MassRepo) ListSchedules(ctx context.Context, onlyActive bool, dayType string) ([]model.MassSchedule, error) {
	q := "SELECT " + massScheduleCols + " FROM mass_schedules WHERE 1=1"
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
	out := []model.MassSchedule{}
	for rows.Next() {
		m, err := scanMassSchedule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, translate(rows.Err())
}

func (r *MassRepo) GetSchedule(ctx context.Context, id uint64) (model.MassSchedule, error) {
	return scanMassSchedule(r.db.QueryRowContext(ctx,
		"SELECT "+massScheduleCols+" FROM mass_schedules WHERE id = ? LIMIT 1", id))
}

func (r *MassRepo) CreateSchedule(ctx context.Context, m *model.MassSchedule) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO mass_schedules (day_type, time, descripcion, location, display_order)
		 SELECT ?, ?, ?, ?, COALESCE(MAX(display_order), 0) + 1 FROM mass_schedules WHERE day_type = ?`,
		m.DayType, m.Time, m.Descripcion, m.Location, m.DayType)
	if err != nil {
		return translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	created, err := r.GetSchedule(ctx, uint64(id))
	if err != nil {
		return err
	}
	*m = created
	return nil
}

// MassScheduleUpdate carries optional new values; nil keeps the stored value.
type MassScheduleUpdate struct {
	DayType      *string
	Time         *string
	Descripcion  *string
	Location     *string
	DisplayOrder *int
	IsActive     *bool
}

func (r *MassRepo) UpdateSchedule(ctx context.Context, id uint64, p MassScheduleUpdate) (model.MassSchedule, error) {
	if _, err := r.GetSchedule(ctx, id); err != nil {
		return model.MassSchedule{}, err
	}
	var set setClause
	set.addString("day_type", p.DayType)
	set.addString("time", p.Time)
	set.addString("descripcion", p.Descripcion)
	set.addString("location", p.Location)
	set.addInt("display_order", p.DisplayOrder)
	set.addBool("is_active", p.IsActive)
	if set.empty() {
		return r.GetSchedule(ctx, id)
	}
	args := append(set.args, id)
	if _, err := r.db.ExecContext(ctx,
		"UPDATE mass_schedules SET "+set.assignments()+" WHERE id = ?", args...); err != nil {
		return model.MassSchedule{}, translate(err)
	}
	return r.GetSchedule(ctx, id)
}

func (r *MassRepo) DeleteSchedule(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM mass_schedules WHERE id = ?", id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
