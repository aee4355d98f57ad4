package repository

import (
	"context"
	"database/sql"

	"github.com/dmolina/parroquia-api/internal/model"
)

// MessageRepo manages contact-form messages.
type MessageRepo struct{ db *sql.DB }

func NewMessageRepo(db *sql.DB) *MessageRepo { return &MessageRepo{db: db} }

const messageCols = "id, nombre, email, telefono, asunto, mensaje, status, created_at"

func scanMessage(s interface{ Scan(...any) error }) (model.Message, error) {
	var m model.Message
	var telefono, asunto sql.NullString
	err := s.Scan(&m.ID, &m.Nombre, &m.Email, &telefono, &asunto, &m.Mensaje,
		&m.Status, &m.CreatedAt)
	if err != nil {
		return model.Message{}, translate(err)
	}
	if telefono.Valid {
		m.Telefono = &telefono.String
	}
	if asunto.Valid {
		m.Asunto = &asunto.String
	}
	return m, nil
}

// MessageFilter narrows admin listings.  Search matches a case-insensitive
// substring across name, email, subject and body.
type MessageFilter struct {
	Status string
	Search string
	Limit  int
	Offset int
}

// List returns messages newest first, honoring the filter.
func (r *MessageRepo) List(ctx context.Context, f MessageFilter) ([]model.Message, error) {
	q := "SELECT " + messageCols + " FROM messages WHERE 1=1"
	args := []any{}
	if f.Status != "" {
		q += " AND status = ?"
		args = append(args, f.Status)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q += " AND (nombre LIKE ? OR email LIKE ? OR asunto LIKE ? OR mensaje LIKE ?)"
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
	out := []model.Message{}
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, translate(rows.Err())
}

func (r *MessageRepo) Get(ctx context.Context, id uint64) (model.Message, error) {
	return scanMessage(r.db.QueryRowContext(ctx,
		"SELECT "+messageCols+" FROM messages WHERE id = ? LIMIT 1", id))
}

// Create stores a new contact message with status "new".
func (r *MessageRepo) Create(ctx context.Context, m *model.Message) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO messages (nombre, email, telefono, asunto, mensaje, status) VALUES (?,?,?,?,?,?)",
		m.Nombre, m.Email, m.Telefono, m.Asunto, m.Mensaje, model.MessageNew)
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

// SetStatus moves a message between new/read/replied.
func (r *MessageRepo) SetStatus(ctx context.Context, id uint64, status string) (model.Message, error) {
	if _, err := r.Get(ctx, id); err != nil {
		return model.Message{}, err
	}
	if _, err := r.db.ExecContext(ctx,
		"UPDATE messages SET status = ? WHERE id = ?", status, id); err != nil {
		return model.Message{}, translate(err)
	}
	return r.Get(ctx, id)
}

func (r *MessageRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM messages WHERE id = ?", id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByStatus returns message counts grouped by status for the dashboard.
func (r *MessageRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT status, COUNT(*) FROM messages GROUP BY status")
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
