package repository

import (
	"context"
	"database/sql"

	"github.com/dmolina/parroquia-api/internal/model"
)

// BannerRepo provides CRUD operations for home-page banners.
type BannerRepo struct{ db *sql.DB }

func NewBannerRepo(db *sql.DB) *BannerRepo { return &BannerRepo{db: db} }

const bannerCols = "id, titulo, subtitulo, imagen_url, link_url, display_order, is_active, created_at, updated_at"

func scanBanner(s interface{ Scan(...any) error }) (model.Banner, error) {
	var b model.Banner
	var subtitulo sql.NullString
	err := s.Scan(&b.ID, &b.Titulo, &subtitulo, &b.ImagenURL, &b.LinkURL,
		&b.DisplayOrder, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return model.Banner{}, translate(err)
	}
	if subtitulo.Valid {
		v := subtitulo.String
		b.Subtitulo = &v
	}
	return b, nil
}

// List returns banners ordered by display_order; creation order breaks
// ties.  When onlyActive is set, soft-hidden rows are excluded.
func (r *BannerRepo) List(ctx context.Context, onlyActive bool) ([]model.Banner, error) {
	q := "SELECT " + bannerCols + " FROM banners"
	if onlyActive {
		q += " WHERE is_active = TRUE"
	}
	q += " ORDER BY display_order, id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()
	out := []model.Banner{}
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, translate(rows.Err())
}

// Get fetches one banner by id.
func (r *BannerRepo) Get(ctx context.Context, id uint64) (model.Banner, error) {
	return scanBanner(r.db.QueryRowContext(ctx,
		"SELECT "+bannerCols+" FROM banners WHERE id = ? LIMIT 1", id))
}

// Create inserts a banner at the end of the display order (max+1) and
// populates the generated fields on the model.
func (r *BannerRepo) Create(ctx context.Context, b *model.Banner) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO banners (titulo, subtitulo, imagen_url, link_url, display_order)
		 SELECT ?, ?, ?, ?, COALESCE(MAX(display_order), 0) + 1 FROM banners`,
		b.Titulo, b.Subtitulo, b.ImagenURL, b.LinkURL)
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
	*b = created
	return nil
}

// BannerUpdate carries optional new values; nil means "keep stored value".
type BannerUpdate struct {
	Titulo       *string
	Subtitulo    *string
	ImagenURL    *string
	LinkURL      *string
	DisplayOrder *int
	IsActive     *bool
}

// Update applies the provided fields and returns the updated row.
func (r *BannerRepo) Update(ctx context.Context, id uint64, p BannerUpdate) (model.Banner, error) {
	if _, err := r.Get(ctx, id); err != nil {
		return model.Banner{}, err
	}
	var set setClause
	set.addString("titulo", p.Titulo)
	set.addString("subtitulo", p.Subtitulo)
	set.addString("imagen_url", p.ImagenURL)
	set.addString("link_url", p.LinkURL)
	set.addInt("display_order", p.DisplayOrder)
	set.addBool("is_active", p.IsActive)
	if set.empty() {
		return r.Get(ctx, id)
	}
	args := append(set.args, id)
	if _, err := r.db.ExecContext(ctx,
		"UPDATE banners SET "+set.assignments()+" WHERE id = ?", args...); err != nil {
		return model.Banner{}, translate(err)
	}
	return r.Get(ctx, id)
}

// Delete removes a banner; deleting a missing id yields ErrNotFound.
func (r *BannerRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM banners WHERE id = ?", id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
