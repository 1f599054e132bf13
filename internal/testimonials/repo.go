package testimonials

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("testimonial not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

type Testimonial struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Position string    `json:"position"`
	Message  string    `json:"message"`
	Approved bool      `json:"approved"`
	Date     time.Time `json:"date"`
}

const testimonialCols = `id, name, position, message, approved, created_at`

func scanTestimonial(row pgx.Row) (*Testimonial, error) {
	var t Testimonial
	err := row.Scan(&t.ID, &t.Name, &t.Position, &t.Message, &t.Approved, &t.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *Repo) list(ctx context.Context, q string) ([]Testimonial, error) {
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Testimonial, 0, 16)
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

// ListApproved returns the publicly visible testimonials.
func (r *Repo) ListApproved(ctx context.Context) ([]Testimonial, error) {
	const q = `
select ` + testimonialCols + `
from testimonials
where approved = true
order by created_at desc;`
	return r.list(ctx, q)
}

// ListAll returns every testimonial for the admin moderation view.
func (r *Repo) ListAll(ctx context.Context) ([]Testimonial, error) {
	const q = `select ` + testimonialCols + ` from testimonials order by created_at desc;`
	return r.list(ctx, q)
}

// Create stores a new submission as pending moderation.
func (r *Repo) Create(ctx context.Context, name, position, message string) (*Testimonial, error) {
	const q = `
insert into testimonials (name, position, message)
values ($1, $2, $3)
returning ` + testimonialCols + `;`

	return scanTestimonial(r.db.QueryRow(ctx, q, name, position, message))
}

// Approve flips a testimonial to its terminal approved state.
func (r *Repo) Approve(ctx context.Context, id int64) (*Testimonial, error) {
	const q = `
update testimonials
set approved = true
where id = $1
returning ` + testimonialCols + `;`

	return scanTestimonial(r.db.QueryRow(ctx, q, id))
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	const q = `delete from testimonials where id = $1;`

	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// PruneApprovedBeyond removes approved testimonials beyond the `keep` newest.
func (r *Repo) PruneApprovedBeyond(ctx context.Context, keep int) (int64, error) {
	const q = `
delete from testimonials
where approved = true
  and id not in (
    select id from testimonials
    where approved = true
    order by created_at desc
    limit $1
  );`

	ct, err := r.db.Exec(ctx, q, keep)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}

// PruneStalePending removes unapproved testimonials older than `days` days.
func (r *Repo) PruneStalePending(ctx context.Context, days int) (int64, error) {
	const q = `
delete from testimonials
where approved = false
  and created_at < now() - make_interval(days => $1);`

	ct, err := r.db.Exec(ctx, q, days)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}
