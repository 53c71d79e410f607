package folio

import (
	"time"

	"github.com/google/uuid"
)

// ListProjects returns all projects, newest first.
func (s *Store) ListProjects() ([]Project, error) {
	rows, err := s.db.Query(`SELECT id, title, description, image, tech, live_url, github_url, featured, category FROM projects ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []Project{}
	for rows.Next() {
		var p Project
		var tech string
		var featured int
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Image, &tech, &p.LiveURL, &p.GithubURL, &featured, &p.Category); err != nil {
			return nil, err
		}
		p.Tech = decodeList(tech)
		p.Featured = featured == 1
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetProject returns a single project by id.
func (s *Store) GetProject(id string) (Project, error) {
	var p Project
	var tech string
	var featured int
	err := s.db.QueryRow(`SELECT id, title, description, image, tech, live_url, github_url, featured, category FROM projects WHERE id = ?`, id).
		Scan(&p.ID, &p.Title, &p.Description, &p.Image, &tech, &p.LiveURL, &p.GithubURL, &featured, &p.Category)
	if err != nil {
		return Project{}, err
	}
	p.Tech = decodeList(tech)
	p.Featured = featured == 1
	return p, nil
}

// CreateProject persists a new project with a store-assigned id.
func (s *Store) CreateProject(p Project) (Project, error) {
	p.ID = uuid.NewString()
	if p.Image == "" {
		p.Image = "/projects/default.png"
	}
	if p.Category == "" {
		p.Category = "Other"
	}
	_, err := s.db.Exec(`INSERT INTO projects (id, title, description, image, tech, live_url, github_url, featured, category, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Description, p.Image, encodeList(p.Tech), p.LiveURL, p.GithubURL, boolToInt(p.Featured), p.Category, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return Project{}, err
	}
	if p.Tech == nil {
		p.Tech = []string{}
	}
	return p, nil
}

// UpdateProject overwrites the editable fields of an existing project.
// Returns ErrNotFound if id does not exist.
func (s *Store) UpdateProject(p Project) (Project, error) {
	res, err := s.db.Exec(`UPDATE projects SET title = ?, description = ?, image = ?, tech = ?, live_url = ?, github_url = ?, featured = ?, category = ? WHERE id = ?`,
		p.Title, p.Description, p.Image, encodeList(p.Tech), p.LiveURL, p.GithubURL, boolToInt(p.Featured), p.Category, p.ID)
	if err != nil {
		return Project{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Project{}, err
	}
	if n == 0 {
		return Project{}, ErrNotFound
	}
	return s.GetProject(p.ID)
}

// DeleteProject removes a project by id. Strict: missing ids return
// ErrNotFound.
func (s *Store) DeleteProject(id string) error {
	res, err := s.db.Exec(`DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
