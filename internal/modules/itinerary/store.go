// README: Itinerary store backed by PostgreSQL.
package itinerary

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles itinerary persistence. One row per (user, title); saving the
// same title again overwrites the payload.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Save upserts an itinerary for the user, keyed by title.
func (s *Store) Save(ctx context.Context, userID, title string, payload *Itinerary) (int64, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("marshal itinerary: %w", err)
	}

	var id int64
	err = s.db.QueryRow(ctx, `
		INSERT INTO itineraries (user_id, title, payload)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, title) DO UPDATE SET
			payload = EXCLUDED.payload
		RETURNING id
	`, userID, title, body).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// List returns the user's saved itineraries, newest first.
func (s *Store) List(ctx context.Context, userID string) ([]Record, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, title, payload, created_at
		FROM itineraries
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var body []byte
		if err := rows.Scan(&rec.ID, &rec.Title, &body, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.UserID = userID
		var payload Itinerary
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, fmt.Errorf("unmarshal itinerary %d: %w", rec.ID, err)
		}
		rec.Payload = &payload
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Delete removes one itinerary; the user scope prevents deleting another
// user's rows. Returns ErrNotFound when no row matched.
func (s *Store) Delete(ctx context.Context, userID string, id int64) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM itineraries WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
