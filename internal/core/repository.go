package core

import (
	"context"
)

//go:generate go tool go.uber.org/mock/mockgen -source=repository.go -destination=repository_mock.go -package=core

// SnapshotStore persists the full account set. Save replaces whatever was
// stored before; Load returns no accounts when nothing has been stored yet.
type SnapshotStore interface {
	Load(ctx context.Context) ([]Account, error)
	Save(ctx context.Context, accounts []Account) error
}
