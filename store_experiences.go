package folio

// ListExperiences returns all timeline entries in creation order.
func (s *Store) ListExperiences() ([]Experience, error) {
	rows, err := s.db.Query(`SELECT id, type, title, company, period, description, skills FROM experiences ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	experiences := []Experience{}
	for rows.Next() {
		var e Experience
		var skills string
		if err := rows.Scan(&e.ID, &e.Type, &e.Title, &e.Company, &e.Period, &e.Description, &skills); err != nil {
			return nil, err
		}
		e.Skills = decodeList(skills)
		experiences = append(experiences, e)
	}
	return experiences, rows.Err()
}

// GetExperience returns a single timeline entry by id.
func (s *Store) GetExperience(id int64) (Experience, error) {
	var e Experience
	var skills string
	err := s.db.QueryRow(`SELECT id, type, title, company, period, description, skills FROM experiences WHERE id = ?`, id).
		Scan(&e.ID, &e.Type, &e.Title, &e.Company, &e.Period, &e.Description, &skills)
	if err != nil {
		return Experience{}, err
	}
	e.Skills = decodeList(skills)
	return e, nil
}

// CreateExperience persists a new entry; SQLite assigns the integer id.
func (s *Store) CreateExperience(e Experience) (Experience, error) {
	res, err := s.db.Exec(`INSERT INTO experiences (type, title, company, period, description, skills) VALUES (?, ?, ?, ?, ?, ?)`,
		e.Type, e.Title, e.Company, e.Period, e.Description, encodeList(e.Skills))
	if err != nil {
		return Experience{}, err
	}
	e.ID, err = res.LastInsertId()
	if err != nil {
		return Experience{}, err
	}
	if e.Skills == nil {
		e.Skills = []string{}
	}
	return e, nil
}

// UpdateExperience overwrites the editable fields of an existing entry.
// Returns ErrNotFound if id does not exist.
func (s *Store) UpdateExperience(e Experience) (Experience, error) {
	res, err := s.db.Exec(`UPDATE experiences SET type = ?, title = ?, company = ?, period = ?, description = ?, skills = ? WHERE id = ?`,
		e.Type, e.Title, e.Company, e.Period, e.Description, encodeList(e.Skills), e.ID)
	if err != nil {
		return Experience{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Experience{}, err
	}
	if n == 0 {
		return Experience{}, ErrNotFound
	}
	return s.GetExperience(e.ID)
}

// DeleteExperience removes an entry by id. Strict: missing ids return
// ErrNotFound.
func (s *Store) DeleteExperience(id int64) error {
	res, err := s.db.Exec(`DELETE FROM experiences WHERE id = ?`, id)
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
