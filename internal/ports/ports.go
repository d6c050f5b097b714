package ports

import (
	"context"

	"leadfair/internal/domain"
)

// SnapshotRepository persists visitor audit snapshots across page loads.
type SnapshotRepository interface {
	Save(ctx context.Context, snap domain.Snapshot) error
	Get(ctx context.Context, key string) (domain.Snapshot, error)
	Delete(ctx context.Context, key string) error
}

// WebsiteAnalyzer runs the full scan against one raw URL.
type WebsiteAnalyzer interface {
	Analyze(ctx context.Context, rawURL string) *domain.WebsiteAnalysis
}

// ErrNotFound is returned by repositories when a key has no record.
var ErrNotFound = errString("not found")

type errString string

func (e errString) Error() string { return string(e) }
