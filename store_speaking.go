package folio

// GetSpeakingPublications returns the full speaking & publications
// aggregate, both collections ordered by date descending.
func (s *Store) GetSpeakingPublications() (SpeakingPublications, error) {
	out := SpeakingPublications{
		SpeakingEngagements: []SpeakingEngagement{},
		Publications:        []Publication{},
	}

	rows, err := s.db.Query(`SELECT id, title, event, date, location, type FROM speaking_engagements ORDER BY date DESC, id DESC`)
	if err != nil {
		return out, err
	}
	for rows.Next() {
		var e SpeakingEngagement
		if err := rows.Scan(&e.ID, &e.Title, &e.Event, &e.Date, &e.Location, &e.Type); err != nil {
			rows.Close()
			return out, err
		}
		out.SpeakingEngagements = append(out.SpeakingEngagements, e)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return out, err
	}
	rows.Close()

	rows, err = s.db.Query(`SELECT id, title, journal, date, authors, link FROM publications ORDER BY date DESC, id DESC`)
	if err != nil {
		return out, err
	}
	defer rows.Close()
	for rows.Next() {
		var p Publication
		if err := rows.Scan(&p.ID, &p.Title, &p.Journal, &p.Date, &p.Authors, &p.Link); err != nil {
			return out, err
		}
		out.Publications = append(out.Publications, p)
	}
	return out, rows.Err()
}

// ReplaceSpeakingPublications replaces both collections wholesale inside a
// single transaction, so a failure midway leaves the previous data intact.
// Client-supplied ids (draft placeholders included) are discarded; SQLite
// assigns fresh ids, and the returned aggregate carries them so the caller
// can reconcile its local state.
func (s *Store) ReplaceSpeakingPublications(in SpeakingPublications) (SpeakingPublications, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return SpeakingPublications{}, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM speaking_engagements`); err != nil {
		return SpeakingPublications{}, err
	}
	if _, err := tx.Exec(`DELETE FROM publications`); err != nil {
		return SpeakingPublications{}, err
	}

	out := SpeakingPublications{
		SpeakingEngagements: make([]SpeakingEngagement, 0, len(in.SpeakingEngagements)),
		Publications:        make([]Publication, 0, len(in.Publications)),
	}
	for _, e := range in.SpeakingEngagements {
		res, err := tx.Exec(`INSERT INTO speaking_engagements (title, event, date, location, type) VALUES (?, ?, ?, ?, ?)`,
			e.Title, e.Event, e.Date, e.Location, e.Type)
		if err != nil {
			return SpeakingPublications{}, err
		}
		e.ID, err = res.LastInsertId()
		if err != nil {
			return SpeakingPublications{}, err
		}
		out.SpeakingEngagements = append(out.SpeakingEngagements, e)
	}
	for _, p := range in.Publications {
		res, err := tx.Exec(`INSERT INTO publications (title, journal, date, authors, link) VALUES (?, ?, ?, ?, ?)`,
			p.Title, p.Journal, p.Date, p.Authors, p.Link)
		if err != nil {
			return SpeakingPublications{}, err
		}
		p.ID, err = res.LastInsertId()
		if err != nil {
			return SpeakingPublications{}, err
		}
		out.Publications = append(out.Publications, p)
	}

	if err := tx.Commit(); err != nil {
		return SpeakingPublications{}, err
	}
	return out, nil
}
