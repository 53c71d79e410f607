package folio

import (
	"time"

	"github.com/google/uuid"
)

// ListContactMessages returns all messages, newest first.
func (s *Store) ListContactMessages() ([]ContactMessage, error) {
	rows, err := s.db.Query(`SELECT id, name, email, subject, message, status, created_at, updated_at FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []ContactMessage{}
	for rows.Next() {
		var m ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// GetContactMessage returns a single message by id.
func (s *Store) GetContactMessage(id string) (ContactMessage, error) {
	var m ContactMessage
	err := s.db.QueryRow(`SELECT id, name, email, subject, message, status, created_at, updated_at FROM contact_messages WHERE id = ?`, id).
		Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return ContactMessage{}, err
	}
	return m, nil
}

// CreateContactMessage persists a new message with status "unread" and
// store-assigned id and timestamps.
func (s *Store) CreateContactMessage(m ContactMessage) (ContactMessage, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	m.ID = uuid.NewString()
	m.Status = StatusUnread
	m.CreatedAt = now
	m.UpdatedAt = now
	_, err := s.db.Exec(`INSERT INTO contact_messages (id, name, email, subject, message, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Email, m.Subject, m.Message, m.Status, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return ContactMessage{}, err
	}
	return m, nil
}

// UpdateContactMessageStatus writes the given status. Transition ordering
// is not enforced; any value may be written at any time.
func (s *Store) UpdateContactMessageStatus(id, status string) (ContactMessage, error) {
	res, err := s.db.Exec(`UPDATE contact_messages SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return ContactMessage{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return ContactMessage{}, err
	}
	if n == 0 {
		return ContactMessage{}, ErrNotFound
	}
	return s.GetContactMessage(id)
}

// DeleteContactMessage removes a message by id. Strict: missing ids
// return ErrNotFound.
func (s *Store) DeleteContactMessage(id string) error {
	res, err := s.db.Exec(`DELETE FROM contact_messages WHERE id = ?`, id)
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
