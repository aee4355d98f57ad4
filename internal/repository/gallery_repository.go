package repository

import (
	"context"
	"database/sql"

	"github.com/dmolina/parroquia-api/internal/model"
)

// GalleryRepo manages albums and their images.  Album deletion cascades to
// images at the schema level (ON DELETE CASCADE), so no explicit child
// cleanup happens here.
type GalleryRepo struct{ db *sql.DB }

func NewGalleryRepo(db *sql.DB) *GalleryRepo { return &GalleryRepo{db: db} }

const albumCols = "id, titulo, descripcion, cover_url, year, display_order, is_active, created_at, updated_at"
const albumImageCols = "id, album_id, imagen_url, descripcion, display_order, is_active, created_at, updated_at"

func scanAlbum(s interface{ Scan(...any) error }) (model.Album, error) {
	var a model.Album
	var descripcion, cover sql.NullString
	var year sql.NullInt64
	err := s.Scan(&a.ID, &a.Titulo, &descripcion, &cover, &year,
		&a.DisplayOrder, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return model.Album{}, translate(err)
	}
	if descripcion.Valid {
		a.Descripcion = &descripcion.String
	}
	if cover.Valid {
		a.CoverURL = &cover.String
	}
	if year.Valid {
		y := int(year.Int64)
		a.Year = &y
	}
	return a, nil
}

func scanAlbumImage(s interface{ Scan(...any) error }) (model.AlbumImage, error) {
	var img model.AlbumImage
	var descripcion sql.NullString
	err := s.Scan(&img.ID, &img.AlbumID, &img.ImagenURL, &descripcion,
		&img.DisplayOrder, &img.IsActive, &img.CreatedAt, &img.UpdatedAt)
	if err != nil {
		return model.AlbumImage{}, translate(err)
	}
	if descripcion.Valid {
		img.Descripcion = &descripcion.String
	}
	return img, nil
}

// ListAlbums returns albums, optionally filtered by year and visibility.
func (r *GalleryRepo) ListAlbums(ctx context.Context, onlyActive bool, year *int) ([]model.Album, error) {
	q := "SELECT " + albumCols + " FROM albums WHERE 1=1"
	args := []any{}
	if onlyActive {
		q += " AND is_active = TRUE"
	}
	if year != nil {
		q += " AND year = ?"
		args = append(args, *year)
	}
	q += " ORDER BY display_order, id"
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()
	out := []model.Album{}
	for rows.Next() {
		a, err := scanAlbum(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, translate(rows.Err())
}

func (r *GalleryRepo) GetAlbum(ctx context.Context, id uint64) (model.Album, error) {
	return scanAlbum(r.db.QueryRowContext(ctx,
		"SELECT "+albumCols+" FROM albums WHERE id = ? LIMIT 1", id))
}

func (r *GalleryRepo) CreateAlbum(ctx context.Context, a *model.Album) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO albums (titulo, descripcion, cover_url, year, display_order)
		 SELECT ?, ?, ?, ?, COALESCE(MAX(display_order), 0) + 1 FROM albums`,
		a.Titulo, a.Descripcion, a.CoverURL, a.Year)
	if err != nil {
		return translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	created, err := r.GetAlbum(ctx, uint64(id))
	if err != nil {
		return err
	}
	*a = created
	return nil
}

// AlbumUpdate carries optional new values; nil keeps the stored value.
type AlbumUpdate struct {
	Titulo       *string
	Descripcion  *string
	CoverURL     *string
	Year         *int
	DisplayOrder *int
	IsActive     *bool
}

func (r *GalleryRepo) UpdateAlbum(ctx context.Context, id uint64, p AlbumUpdate) (model.Album, error) {
	if _, err := r.GetAlbum(ctx, id); err != nil {
		return model.Album{}, err
	}
	var set setClause
	set.addString("titulo", p.Titulo)
	set.addString("descripcion", p.Descripcion)
	set.addString("cover_url", p.CoverURL)
	set.addInt("year", p.Year)
	set.addInt("display_order", p.DisplayOrder)
	set.addBool("is_active", p.IsActive)
	if set.empty() {
		return r.GetAlbum(ctx, id)
	}
	args := append(set.args, id)
	if _, err := r.db.ExecContext(ctx,
		"UPDATE albums SET "+set.assignments()+" WHERE id = ?", args...); err != nil {
		return model.Album{}, translate(err)
	}
	return r.GetAlbum(ctx, id)
}

func (r *GalleryRepo) DeleteAlbum(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM albums WHERE id = ?", id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListImages returns the images of one album.
func (r *GalleryRepo) ListImages(ctx context.Context, albumID uint64, onlyActive bool) ([]model.AlbumImage, error) {
	q := "SELECT " + albumImageCols + " FROM album_images WHERE album_id = ?"
	if onlyActive {
		q += " AND is_active = TRUE"
	}
	q += " ORDER BY display_order, id"
	rows, err := r.db.QueryContext(ctx, q, albumID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()
	out := []model.AlbumImage{}
	for rows.Next() {
		img, err := scanAlbumImage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, translate(rows.Err())
}

func (r *GalleryRepo) GetImage(ctx context.Context, id uint64) (model.AlbumImage, error) {
	return scanAlbumImage(r.db.QueryRowContext(ctx,
		"SELECT "+albumImageCols+" FROM album_images WHERE id = ? LIMIT 1", id))
}

// CreateImage inserts an image into an album.  A dangling album_id surfaces
// as ErrInvalidReference through the FK constraint.
func (r *GalleryRepo) CreateImage(ctx context.Context, img *model.AlbumImage) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO album_images (album_id, imagen_url, descripcion, display_order)
		 SELECT ?, ?, ?, COALESCE(MAX(display_order), 0) + 1 FROM album_images WHERE album_id = ?`,
		img.AlbumID, img.ImagenURL, img.Descripcion, img.AlbumID)
	if err != nil {
		return translate(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	created, err := r.GetImage(ctx, uint64(id))
	if err != nil {
		return err
	}
	*img = created
	return nil
}

// AlbumImageUpdate carries optional new values; nil keeps the stored value.
type AlbumImageUpdate struct {
	ImagenURL    *string
	Descripcion  *string
	DisplayOrder *int
	IsActive     *bool
}

func (r *GalleryRepo) UpdateImage(ctx context.Context, id uint64, p AlbumImageUpdate) (model.AlbumImage, error) {
	if _, err := r.GetImage(ctx, id); err != nil {
		return model.AlbumImage{}, err
	}
	var set setClause
	set.addString("imagen_url", p.ImagenURL)
	set.addString("descripcion", p.Descripcion)
	set.addInt("display_order", p.DisplayOrder)
	set.addBool("is_active", p.IsActive)
	if set.empty() {
		return r.GetImage(ctx, id)
	}
	args := append(set.args, id)
	if _, err := r.db.ExecContext(ctx,
		"UPDATE album_images SET "+set.assignments()+" WHERE id = ?", args...); err != nil {
		return model.AlbumImage{}, translate(err)
	}
	return r.GetImage(ctx, id)
}

func (r *GalleryRepo) DeleteImage(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM album_images WHERE id = ?", id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
