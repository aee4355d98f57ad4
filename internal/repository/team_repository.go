package repository

import (
	"context"
	"database/sql"

	"github.com/dmolina/parroquia-api/internal/model"
)

// TeamRepo provides CRUD operations for team members.
type TeamRepo struct{ db *sql.DB }

func NewTeamRepo(db *sql.DB) *TeamRepo { return &TeamRepo{db: db} }

const teamCols = "id, nombre, cargo, foto_url, bio, display_order, is_active, created_at, updated_at"

func scanTeamMember(s interface{ Scan(...any) error }) (model.TeamMember, error) {
	var m model.TeamMember
	var foto, bio sql.NullString
	err := s.Scan(&m.ID, &m.Nombre, &m.Cargo, &foto, &bio,
		&m.DisplayOrder, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return model.TeamMember{}, translate(err)
	}
	if foto.Valid {
		m.FotoURL = &foto.String
	}
	if bio.Valid {
		m.Bio = &bio.String
	}
	return m, nil
}

func (r *TeamRepo) List(ctx context.Context, onlyActive bool) ([]model.TeamMember, error) {
	q := "SELECT " + teamCols + " FROM team_members"
	if onlyActive {
		q += " WHERE is_active = TRUE"
	}
	q += " ORDER BY display_order, id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()
	out := []model.TeamMember{}
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, translate(rows.Err())
}

func (r *TeamRepo) Get(ctx context.Context, id uint64) (model.TeamMember, error) {
	return scanTeamMember(r.db.QueryRowContext(ctx,
		"SELECT "+teamCols+" FROM team_members WHERE id = ? LIMIT 1", id))
}

func (r *TeamRepo) Create(ctx context.Context, m *model.TeamMember) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO team_members (nombre, cargo, foto_url, bio, display_order)
		 SELECT ?, ?, ?, ?, COALESCE(MAX(display_order), 0) + 1 FROM team_members`,
		m.Nombre, m.Cargo, m.FotoURL, m.Bio)
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
	*m = created
	return nil
}

// TeamMemberUpdate carries optional new values; nil keeps the stored value.
type TeamMemberUpdate struct {
	Nombre       *string
	Cargo        *string
	FotoURL      *string
	Bio          *string
	DisplayOrder *int
	IsActive     *bool
}

func (r *TeamRepo) Update(ctx context.Context, id uint64, p TeamMemberUpdate) (model.TeamMember, error) {
	if _, err := r.Get(ctx, id); err != nil {
		return model.TeamMember{}, err
	}
	var set setClause
	set.addString("nombre", p.Nombre)
	set.addString("cargo", p.Cargo)
	set.addString("foto_url", p.FotoURL)
	set.addString("bio", p.Bio)
	set.addInt("display_order", p.DisplayOrder)
	set.addBool("is_active", p.IsActive)
	if set.empty() {
		return r.Get(ctx, id)
	}
	args := append(set.args, id)
	if _, err := r.db.ExecContext(ctx,
		"UPDATE team_members SET "+set.assignments()+" WHERE id = ?", args...); err != nil {
		return model.TeamMember{}, translate(err)
	}
	return r.Get(ctx, id)
}

func (r *TeamRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM team_members WHERE id = ?", id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
