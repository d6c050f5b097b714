package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"leadfair/internal/domain"
	"leadfair/internal/ports"
)

// SnapshotRepository

func (db *DB) Save(ctx context.Context, snap domain.Snapshot) error {
	_, err := db.Pool.Exec(ctx, `
        INSERT INTO snapshots (session_key, payload, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (session_key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()
    `, snap.Key, []byte(snap.Payload))
	return err
}

func (db *DB) Get(ctx context.Context, key string) (domain.Snapshot, error) {
	snap := domain.Snapshot{Key: key}
	var payload []byte
	err := db.Pool.QueryRow(ctx, `
        SELECT payload, updated_at FROM snapshots WHERE session_key = $1
    `, key).Scan(&payload, &snap.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Snapshot{}, ports.ErrNotFound
	}
	if err != nil {
		return domain.Snapshot{}, err
	}
	snap.Payload = payload
	return snap, nil
}

func (db *DB) Delete(ctx context.Context, key string) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM snapshots WHERE session_key = $1`, key)
	return err
}
