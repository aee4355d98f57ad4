package repository

import (
	"context"
	"database/sql"

	"github.com/dmolina/parroquia-api/internal/model"
)

// DonationRepo provides CRUD operations for donation channels.
type DonationRepo struct{ db *sql.DB }

func NewDonationRepo(db *sql.DB) *DonationRepo { return &DonationRepo{db: db} }

const donationCols = "id, titulo, descripcion, banco, tipo_cuenta, numero_cuenta, titular, documento, email, display_order, is_active, created_at, updated_at"

func scanDonation(s interface{ Scan(...any) error }) (model.DonationInfo, error) {
	var d model.DonationInfo
	var descripcion, banco, tipoCuenta, numeroCuenta, titular, documento, email sql.NullString
	err := s.Scan(&d.ID, &d.Titulo, &descripcion, &banco, &tipoCuenta, &numeroCuenta,
		&titular, &documento, &email, &d.DisplayOrder, &d.IsActive, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return model.DonationInfo{}, translate(err)
	}
	if descripcion.Valid {
		d.Descripcion = &descripcion.String
	}
	if banco.Valid {
		d.Banco = &banco.String
	}
	if tipoCuenta.Valid {
		d.TipoCuenta = &tipoCuenta.String
	}
	if numeroCuenta.Valid {
		d.NumeroCuenta = &numeroCuenta.String
	}
	if titular.Valid {
		d.Titular = &titular.String
	}
	if documento.Valid {
		d.Documento = &documento.String
	}
	if email.Valid {
		d.Email = &email.String
	}
	return d, nil
}

func (r *DonationRepo) List(ctx context.Context, onlyActive bool) ([]model.DonationInfo, error) {
	q := "SELECT " + donationCols + " FROM donation_info"
	if onlyActive {
		q += " WHERE is_active = TRUE"
	}
	q += " ORDER BY display_order, id"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()
	out := []model.DonationInfo{}
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, translate(rows.Err())
}

func (r *DonationRepo) Get(ctx context.Context, id uint64) (model.DonationInfo, error) {
	return scanDonation(r.db.QueryRowContext(ctx,
		"SELECT "+donationCols+" FROM donation_info WHERE id = ? LIMIT 1", id))
}

func (r *DonationRepo) Create(ctx context.Context, d *model.DonationInfo) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO donation_info (titulo, descripcion, banco, tipo_cuenta, numero_cuenta, titular, documento, email, display_order)
		 SELECT ?, ?, ?, ?, ?, ?, ?, ?, COALESCE(MAX(display_order), 0) + 1 FROM donation_info`,
		d.Titulo, d.Descripcion, d.Banco, d.TipoCuenta, d.NumeroCuenta, d.Titular, d.Documento, d.Email)
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
	*d = created
	return nil
}

// DonationUpdate carries optional new values; nil keeps the stored value.
type DonationUpdate struct {
	Titulo       *string
	Descripcion  *string
	Banco        *string
	TipoCuenta   *string
	NumeroCuenta *string
	Titular      *string
	Documento    *string
	Email        *string
	DisplayOrder *int
	IsActive     *bool
}

func (r *DonationRepo) Update(ctx context.Context, id uint64, p DonationUpdate) (model.DonationInfo, error) {
	if _, err := r.Get(ctx, id); err != nil {
		return model.DonationInfo{}, err
	}
	var set setClause
	set.addString("titulo", p.Titulo)
	set.addString("descripcion", p.Descripcion)
	set.addString("banco", p.Banco)
	set.addString("tipo_cuenta", p.TipoCuenta)
	set.addString("numero_cuenta", p.NumeroCuenta)
	set.addString("titular", p.Titular)
	set.addString("documento", p.Documento)
	set.addString("email", p.Email)
	set.addInt("display_order", p.DisplayOrder)
	set.addBool("is_active", p.IsActive)
	if set.empty() {
		return r.Get(ctx, id)
	}
	args := append(set.args, id)
	if _, err := r.db.ExecContext(ctx,
		"UPDATE donation_info SET "+set.assignments()+" WHERE id = ?", args...); err != nil {
		return model.DonationInfo{}, translate(err)
	}
	return r.Get(ctx, id)
}

func (r *DonationRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM donation_info WHERE id = ?", id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
