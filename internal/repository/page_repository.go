package repository

import (
	"context"
	"database/sql"

	"github.com/dmolina/parroquia-api/internal/model"
)

// PageRepo provides CRUD operations for interest pages.
type PageRepo struct{ db *sql.DB }

func NewPageRepo(db *sql.DB) *PageRepo { return &PageRepo{db: db} }

const pageCols = "id, slug, titulo, contenido, imagen_url, icon, link_url, display_order, is_active, created_at, updated_at"

func scanPage(s interface{ Scan(...any) error }) (model.InterestPage, error) {
	var p model.InterestPage
	var contenido, imagen sql.NullString
	err := s.Scan(&p.ID, &p.Slug, &p.Titulo, &contenido, &imagen, &p.Icon,
		&p.LinkURL, &p.DisplayOrder, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return model.InterestPage{}, translate(err)
	}
	if contenido.Valid {
		p.Contenido = &contenido.String
	}
	if imagen.Valid {
		p.ImagenURL = &imagen.String
	}
	return p, nil
}

func (r *PageRepo) List(ctx context.Context, onlyActive bool) ([]model.InterestPage, error) {
	q := "SELECT " + pageCols + " FROM interest_pages"
	if onlyActive {
		q += " WHERE is_active = TRUE"
	}
	q += " ORDER BY display_order, id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()
	out := []model.InterestPage{}
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, translate(rows.Err())
}

func (r *PageRepo) Get(ctx context.Context, id uint64) (model.InterestPage, error) {
	return scanPage(r.db.QueryRowContext(ctx,
		"SELECT "+pageCols+" FROM interest_pages WHERE id = ? LIMIT 1", id))
}

// GetBySlug fetches a page by its public slug; only active pages resolve.
func (r *PageRepo) GetBySlug(ctx context.Context, slug string) (model.InterestPage, error) {
	return scanPage(r.db.QueryRowContext(ctx,
		"SELECT "+pageCols+" FROM interest_pages WHERE slug = ? AND is_active = TRUE LIMIT 1", slug))
}

func (r *PageRepo) Create(ctx context.Context, p *model.InterestPage) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO interest_pages (slug, titulo, contenido, imagen_url, icon, link_url, display_order)
		 SELECT ?, ?, ?, ?, ?, ?, COALESCE(MAX(display_order), 0) + 1 FROM interest_pages`,
		p.Slug, p.Titulo, p.Contenido, p.ImagenURL, p.Icon, p.LinkURL)
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
	*p = created
	return nil
}

// InterestPageUpdate carries optional new values; nil keeps the stored value.
type InterestPageUpdate struct {
	Slug         *string
	Titulo       *string
	Contenido    *string
	ImagenURL    *string
	Icon         *string
	LinkURL      *string
	DisplayOrder *int
	IsActive     *bool
}

func (r *PageRepo) Update(ctx context.Context, id uint64, p InterestPageUpdate) (model.InterestPage, error) {
	if _, err := r.Get(ctx, id); err != nil {
		return model.InterestPage{}, err
	}
	var set setClause
	set.addString("slug", p.Slug)
	set.addString("titulo", p.Titulo)
	set.addString("contenido", p.Contenido)
	set.addString("imagen_url", p.ImagenURL)
	set.addString("icon", p.Icon)
	set.addString("link_url", p.LinkURL)
	set.addInt("display_order", p.DisplayOrder)
	set.addBool("is_active", p.IsActive)
	if set.empty() {
		return r.Get(ctx, id)
	}
	args := append(set.args, id)
	if _, err := r.db.ExecContext(ctx,
		"UPDATE interest_pages SET "+set.assignments()+" WHERE id = ?", args...); err != nil {
		return model.InterestPage{}, translate(err)
	}
	return r.Get(ctx, id)
}

func (r *PageRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM interest_pages WHERE id = ?", id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
