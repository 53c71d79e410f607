package folio

import (
	"database/sql"
	"time"
)

// ActivityPing is a keep-alive marker; uptime monitors POST one
// periodically so the deployment never idles out, and the public site's
// activity panel reads the latest to show freshness.
type ActivityPing struct {
	ID        int64  `json:"id"`
	Note      string `json:"note"`
	CreatedAt string `json:"created_at"`
}

// RecordActivityPing inserts a keep-alive row.
func (s *Store) RecordActivityPing(note string) (ActivityPing, error) {
	p := ActivityPing{Note: note, CreatedAt: time.Now().UTC().Format(time.RFC3339)}
	res, err := s.db.Exec(`INSERT INTO activity_pings (note, created_at) VALUES (?, ?)`, p.Note, p.CreatedAt)
	if err != nil {
		return ActivityPing{}, err
	}
	p.ID, err = res.LastInsertId()
	if err != nil {
		return ActivityPing{}, err
	}
	return p, nil
}

// LatestActivityPing returns the most recent ping, or ok=false when none
// has been recorded yet.
func (s *Store) LatestActivityPing() (ActivityPing, bool, error) {
	var p ActivityPing
	err := s.db.QueryRow(`SELECT id, note, created_at FROM activity_pings ORDER BY id DESC LIMIT 1`).
		Scan(&p.ID, &p.Note, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return ActivityPing{}, false, nil
	}
	if err != nil {
		return ActivityPing{}, false, err
	}
	return p, true, nil
}
