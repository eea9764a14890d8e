package interfaces

import (
	"cleangod/internal/domain/entities"
	"context"
)

// IDraftStore is the per-session hand-off storage for booking drafts.
//
// Entries expire with the session. Load reports found=false for a missing or
// expired draft. The submit lock is the in-flight guard for submission.

type IDraftStore interface {
	Load(ctx context.Context, sessionID string) (draft entities.BookingDraft, found bool, err error)
	Save(ctx context.Context, draft entities.BookingDraft) error
	Delete(ctx context.Context, sessionID string) error
	AcquireSubmitLock(ctx context.Context, sessionID string) (bool, error)
	ReleaseSubmitLock(ctx context.Context, sessionID string) error
}
