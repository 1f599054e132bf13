package projects

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("project not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

type Project struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Technologies   []string  `json:"technologies"`
	LiveURL        string    `json:"liveUrl"`
	GithubURL      string    `json:"githubUrl"`
	Image          string    `json:"image"`
	CompletionDate string    `json:"completionDate"`
	Status         string    `json:"status"`
	TeamSize       string    `json:"teamSize"`
	Duration       string    `json:"duration"`
	Client         string    `json:"client"`
	KeyFeatures    []string  `json:"keyFeatures"`
	Challenges     string    `json:"challenges"`
	Results        string    `json:"results"`
	DemoVideoURL   string    `json:"demoVideoUrl"`
	ProjectType    string    `json:"projectType"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Fields holds every admin-editable column. PUT replaces all of them.
type Fields struct {
	Title          string
	Description    string
	Technologies   []string
	LiveURL        string
	GithubURL      string
	Image          string
	CompletionDate string
	Status         string
	TeamSize       string
	Duration       string
	Client         string
	KeyFeatures    []string
	Challenges     string
	Results        string
	DemoVideoURL   string
	ProjectType    string
}

const projectCols = `
id, title, description, technologies, live_url, github_url, image,
completion_date, status, team_size, duration, client, key_features,
challenges, results, demo_video_url, project_type, created_at`

func scanProject(row pgx.Row) (*Project, error) {
	var p Project
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Technologies, &p.LiveURL,
		&p.GithubURL, &p.Image, &p.CompletionDate, &p.Status, &p.TeamSize,
		&p.Duration, &p.Client, &p.KeyFeatures, &p.Challenges, &p.Results,
		&p.DemoVideoURL, &p.ProjectType, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repo) List(ctx context.Context) ([]Project, error) {
	const q = `select ` + projectCols + ` from projects order by created_at desc;`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id int64) (*Project, error) {
	const q = `select ` + projectCols + ` from projects where id = $1;`
	return scanProject(r.db.QueryRow(ctx, q, id))
}

func (r *Repo) Create(ctx context.Context, f Fields) (*Project, error) {
	const q = `
insert into projects (
  title, description, technologies, live_url, github_url, image,
  completion_date, status, team_size, duration, client, key_features,
  challenges, results, demo_video_url, project_type
)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
returning ` + projectCols + `;`

	return scanProject(r.db.QueryRow(ctx, q,
		f.Title, f.Description, f.Technologies, f.LiveURL, f.GithubURL,
		f.Image, f.CompletionDate, f.Status, f.TeamSize, f.Duration,
		f.Client, f.KeyFeatures, f.Challenges, f.Results, f.DemoVideoURL,
		f.ProjectType,
	))
}

func (r *Repo) Update(ctx context.Context, id int64, f Fields) (*Project, error) {
	const q = `
update projects
set title = $2, description = $3, technologies = $4, live_url = $5,
    github_url = $6, image = $7, completion_date = $8, status = $9,
    team_size = $10, duration = $11, client = $12, key_features = $13,
    challenges = $14, results = $15, demo_video_url = $16, project_type = $17
where id = $1
returning ` + projectCols + `;`

	return scanProject(r.db.QueryRow(ctx, q, id,
		f.Title, f.Description, f.Technologies, f.LiveURL, f.GithubURL,
		f.Image, f.CompletionDate, f.Status, f.TeamSize, f.Duration,
		f.Client, f.KeyFeatures, f.Challenges, f.Results, f.DemoVideoURL,
		f.ProjectType,
	))
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	const q = `delete from projects where id = $1;`

	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
