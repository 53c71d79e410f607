package folio

import (
	"database/sql"
	"time"
)

// tokenTTL is how long an issued bearer token stays valid.
const tokenTTL = 12 * time.Hour

// IssueToken stores a bearer token for API callers that cannot carry the
// admin cookie.
func (s *Store) IssueToken(token string) error {
	now := time.Now().UTC()
	_, err := s.db.Exec(`INSERT INTO api_tokens (token, created_at, expires_at) VALUES (?, ?, ?)`,
		token, now.Format(time.RFC3339), now.Add(tokenTTL).Format(time.RFC3339))
	return err
}

// ValidToken reports whether token exists and has not expired. Expired
// rows are pruned opportunistically on lookup.
func (s *Store) ValidToken(token string) (bool, error) {
	var expiresAt string
	err := s.db.QueryRow(`SELECT expires_at FROM api_tokens WHERE token = ?`, token).Scan(&expiresAt)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	exp, err := time.Parse(time.RFC3339, expiresAt)
	if err != nil {
		return false, err
	}
	if time.Now().UTC().After(exp) {
		_, _ = s.db.Exec(`DELETE FROM api_tokens WHERE token = ?`, token)
		return false, nil
	}
	return true, nil
}

// RevokeToken deletes a token. Revoking an unknown token is a no-op.
func (s *Store) RevokeToken(token string) error {
	_, err := s.db.Exec(`DELETE FROM api_tokens WHERE token = ?`, token)
	return err
}
