package folio

import (
	"time"

	"github.com/google/uuid"
)

// ListStats returns stats in creation order so the public page renders
// them in the sequence the admin added them.
func (s *Store) ListStats() ([]Stat, error) {
	rows, err := s.db.Query(`SELECT id, label, value, suffix FROM stats ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []Stat{}
	for rows.Next() {
		var st Stat
		if err := rows.Scan(&st.ID, &st.Label, &st.Value, &st.Suffix); err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}
	return stats, rows.Err()
}

// GetStat returns a single stat by id.
func (s *Store) GetStat(id string) (Stat, error) {
	var st Stat
	err := s.db.QueryRow(`SELECT id, label, value, suffix FROM stats WHERE id = ?`, id).
		Scan(&st.ID, &st.Label, &st.Value, &st.Suffix)
	if err != nil {
		return Stat{}, err
	}
	return st, nil
}

// CreateStat persists a new stat with a store-assigned id.
func (s *Store) CreateStat(st Stat) (Stat, error) {
	st.ID = uuid.NewString()
	_, err := s.db.Exec(`INSERT INTO stats (id, label, value, suffix, created_at) VALUES (?, ?, ?, ?, ?)`,
		st.ID, st.Label, st.Value, st.Suffix, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return Stat{}, err
	}
	return st, nil
}

// UpdateStat overwrites the editable fields of an existing stat.
// Returns ErrNotFound if id does not exist.
func (s *Store) UpdateStat(st Stat) (Stat, error) {
	res, err := s.db.Exec(`UPDATE stats SET label = ?, value = ?, suffix = ? WHERE id = ?`,
		st.Label, st.Value, st.Suffix, st.ID)
	if err != nil {
		return Stat{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Stat{}, err
	}
	if n == 0 {
		return Stat{}, ErrNotFound
	}
	return s.GetStat(st.ID)
}

// DeleteStat removes a stat by id. Strict: missing ids return ErrNotFound.
func (s *Store) DeleteStat(id string) error {
	res, err := s.db.Exec(`DELETE FROM stats WHERE id = ?`, id)
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
