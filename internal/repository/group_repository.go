package repository

import (
	"context"
	"database/sql"

	"github.com/dmolina/parroquia-api/internal/model"
)

// GroupRepo provides CRUD operations for parish groups and ministries.
type GroupRepo struct{ db *sql.DB }

func NewGroupRepo(db *sql.DB) *GroupRepo { return &GroupRepo{db: db} }

const groupCols = "id, nombre, descripcion, horario, imagen_url, icon, display_order, is_active, created_at, updated_at"

func scanGroup(s interface{ Scan(...any) error }) (model.ParishGroup, error) {
	var g model.ParishGroup
	var descripcion, horario, imagen sql.NullString
	err := s.Scan(&g.ID, &g.Nombre, &descripcion, &horario, &imagen, &g.Icon,
		&g.DisplayOrder, &g.IsActive, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return model.ParishGroup{}, translate(err)
	}
	if descripcion.Valid {
		g.Descripcion = &descripcion.String
	}
	if horario.Valid {
		g.Horario = &horario.String
	}
	if imagen.Valid {
		g.ImagenURL = &imagen.String
	}
	return g, nil
}

func (r *GroupRepo) List(ctx context.Context, onlyActive bool) ([]model.ParishGroup, error) {
	q := "SELECT " + groupCols + " FROM parish_groups"
	if onlyActive {
		q += " WHERE is_active = TRUE"
	}
	q += " ORDER BY display_order, id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()
	out := []model.ParishGroup{}
	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, translate(rows.Err())
}

func (r *GroupRepo) Get(ctx context.Context, id uint64) (model.ParishGroup, error) {
	return scanGroup(r.db.QueryRowContext(ctx,
		"SELECT "+groupCols+" FROM parish_groups WHERE id = ? LIMIT 1", id))
}

func (r *GroupRepo) Create(ctx context.Context, g *model.ParishGroup) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO parish_groups (nombre, descripcion, horario, imagen_url, icon, display_order)
		 SELECT ?, ?, ?, ?, ?, COALESCE(MAX(display_order), 0) + 1 FROM parish_groups`,
		g.Nombre, g.Descripcion, g.Horario, g.ImagenURL, g.Icon)
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
	*g = created
	return nil
}

// ParishGroupUpdate carries optional new values; nil keeps the stored value.
type ParishGroupUpdate struct {
	Nombre       *string
	Descripcion  *string
	Horario      *string
	ImagenURL    *string
	Icon         *string
	DisplayOrder *int
	IsActive     *bool
}

func (r *GroupRepo) Update(ctx context.Context, id uint64, p ParishGroupUpdate) (model.ParishGroup, error) {
	if _, err := r.Get(ctx, id); err != nil {
		return model.ParishGroup{}, err
	}
	var set setClause
	set.addString("nombre", p.Nombre)
	set.addString("descripcion", p.Descripcion)
	set.addString("horario", p.Horario)
	set.addString("imagen_url", p.ImagenURL)
	set.addString("icon", p.Icon)
	set.addInt("display_order", p.DisplayOrder)
	set.addBool("is_active", p.IsActive)
	if set.empty() {
		return r.Get(ctx, id)
	}
	args := append(set.args, id)
	if _, err := r.db.ExecContext(ctx,
		"UPDATE parish_groups SET "+set.assignments()+" WHERE id = ?", args...); err != nil {
		return model.ParishGroup{}, translate(err)
	}
	return r.Get(ctx, id)
}

func (r *GroupRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM parish_groups WHERE id = ?", id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
