package folio

import (
	"time"

	"github.com/google/uuid"
)

// blogDateFormat matches the human-readable date the site renders on blog
// cards, e.g. "Jan 2, 2006". Assigned once at creation.
const blogDateFormat = "Jan 2, 2006"

// ListBlogs returns all blog posts ordered by date descending, newest
// creation first among posts sharing a date.
func (s *Store) ListBlogs() ([]Blog, error) {
	rows, err := s.db.Query(`SELECT id, title, excerpt, content, date, read_time, image FROM blogs ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []Blog{}
	for rows.Next() {
		var b Blog
		if err := rows.Scan(&b.ID, &b.Title, &b.Excerpt, &b.Content, &b.Date, &b.ReadTime, &b.Image); err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}
	return blogs, rows.Err()
}

// GetBlog returns a single blog post by id.
func (s *Store) GetBlog(id string) (Blog, error) {
	var b Blog
	err := s.db.QueryRow(`SELECT id, title, excerpt, content, date, read_time, image FROM blogs WHERE id = ?`, id).
		Scan(&b.ID, &b.Title, &b.Excerpt, &b.Content, &b.Date, &b.ReadTime, &b.Image)
	if err != nil {
		return Blog{}, err
	}
	return b, nil
}

// CreateBlog persists a new post. The store assigns the id and the
// creation date; both are immutable afterwards.
func (s *Store) CreateBlog(b Blog) (Blog, error) {
	now := time.Now().UTC()
	b.ID = uuid.NewString()
	b.Date = now.Format(blogDateFormat)
	if b.ReadTime == "" {
		b.ReadTime = "5 min read"
	}
	_, err := s.db.Exec(`INSERT INTO blogs (id, title, excerpt, content, date, read_time, image, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.Title, b.Excerpt, b.Content, b.Date, b.ReadTime, b.Image, now.Format(time.RFC3339Nano))
	if err != nil {
		return Blog{}, err
	}
	return b, nil
}

// UpdateBlog overwrites the editable fields of an existing post. The date
// keeps its creation value. Returns ErrNotFound if id does not exist.
func (s *Store) UpdateBlog(b Blog) (Blog, error) {
	res, err := s.db.Exec(`UPDATE blogs SET title = ?, excerpt = ?, content = ?, read_time = ?, image = ? WHERE id = ?`,
		b.Title, b.Excerpt, b.Content, b.ReadTime, b.Image, b.ID)
	if err != nil {
		return Blog{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Blog{}, err
	}
	if n == 0 {
		return Blog{}, ErrNotFound
	}
	return s.GetBlog(b.ID)
}

// DeleteBlog removes a post by id. Returns ErrNotFound if it never
// existed; delete is strict, not idempotent.
func (s *Store) DeleteBlog(id string) error {
	res, err := s.db.Exec(`DELETE FROM blogs WHERE id = ?`, id)
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
