package stats

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

type Stats struct {
	TotalProjects        int64 `json:"totalProjects"`
	TotalCertifications  int64 `json:"totalCertifications"`
	TotalTestimonials    int64 `json:"totalTestimonials"`
	PendingTestimonials  int64 `json:"pendingTestimonials"`
	ApprovedTestimonials int64 `json:"approvedTestimonials"`
}

// Collect runs the dashboard count queries. Always computed fresh.
func (r *Repo) Collect(ctx context.Context) (*Stats, error) {
	const q = `
select
  (select count(*) from projects),
  (select count(*) from certifications),
  (select count(*) from testimonials),
  (select count(*) from testimonials where approved = false),
  (select count(*) from testimonials where approved = true);`

	var s Stats
	err := r.db.QueryRow(ctx, q).Scan(
		&s.TotalProjects,
		&s.TotalCertifications,
		&s.TotalTestimonials,
		&s.PendingTestimonials,
		&s.ApprovedTestimonials,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
