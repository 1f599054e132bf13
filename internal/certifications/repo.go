package certifications

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("certification not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

type Certification struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Issuer        string    `json:"issuer"`
	Date          string    `json:"date"`
	CredentialURL string    `json:"credentialUrl"`
	Badge         string    `json:"badge"`
	Grade         string    `json:"grade"`
	Category      string    `json:"category"`
	Skills        []string  `json:"skills"`
	Duration      string    `json:"duration"`
	Level         string    `json:"level"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Fields struct {
	Title         string
	Issuer        string
	Date          string
	CredentialURL string
	Badge         string
	Grade         string
	Category      string
	Skills        []string
	Duration      string
	Level         string
	Description   string
}

const certCols = `
id, title, issuer, date, credential_url, badge, grade, category, skills,
duration, level, description, created_at`

func scanCert(row pgx.Row) (*Certification, error) {
	var ct Certification
	err := row.Scan(
		&ct.ID, &ct.Title, &ct.Issuer, &ct.Date, &ct.CredentialURL,
		&ct.Badge, &ct.Grade, &ct.Category, &ct.Skills, &ct.Duration,
		&ct.Level, &ct.Description, &ct.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ct, nil
}

func (r *Repo) List(ctx context.Context) ([]Certification, error) {
	const q = `select ` + certCols + ` from certifications order by created_at desc;`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Certification, 0, 16)
	for rows.Next() {
		ct, err := scanCert(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *ct)
	}
	return out, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id int64) (*Certification, error) {
	const q = `select ` + certCols + ` from certifications where id = $1;`
	return scanCert(r.db.QueryRow(ctx, q, id))
}

func (r *Repo) Create(ctx context.Context, f Fields) (*Certification, error) {
	const q = `
insert into certifications (
  title, issuer, date, credential_url, badge, grade, category, skills,
  duration, level, description
)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
returning ` + certCols + `;`

	return scanCert(r.db.QueryRow(ctx, q,
		f.Title, f.Issuer, f.Date, f.CredentialURL, f.Badge, f.Grade,
		f.Category, f.Skills, f.Duration, f.Level, f.Description,
	))
}

func (r *Repo) Update(ctx context.Context, id int64, f Fields) (*Certification, error) {
	const q = `
update certifications
set title = $2, issuer = $3, date = $4, credential_url = $5, badge = $6,
    grade = $7, category = $8, skills = $9, duration = $10, level = $11,
    description = $12
where id = $1
returning ` + certCols + `;`

	return scanCert(r.db.QueryRow(ctx, q, id,
		f.Title, f.Issuer, f.Date, f.CredentialURL, f.Badge, f.Grade,
		f.Category, f.Skills, f.Duration, f.Level, f.Description,
	))
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	const q = `delete from certifications where id = $1;`

	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
