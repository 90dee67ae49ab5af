package output

import (
	"context"

	"paradereg/internal/domain/entities"
)

// Snapshot is an immutable view of the participant collection at Version.
// Receivers must not modify Participants.
type Snapshot struct {
	Version      uint64
	Participants []entities.Participant
}

// ParticipantRepository owns the authoritative participant collection.
// Every successful mutation is delivered to all subscribers before the
// mutating call returns.
type ParticipantRepository interface {
	Add(ctx context.Context, draft entities.Participant) (entities.Participant, error)
	Update(ctx context.Context, participant entities.Participant) (entities.Participant, error)
	Delete(ctx context.Context, id int) error
	ToggleActive(ctx context.Context, id int) (entities.Participant, error)
	Snapshot() Snapshot
	Statistics() entities.Statistics
	// Subscribe calls fn with the current snapshot, then after every
	// successful mutation. fn must not call mutating methods. After cancel
	// returns fn is not called again, even by a publication in progress.
	Subscribe(fn func(Snapshot)) (cancel func())
}
