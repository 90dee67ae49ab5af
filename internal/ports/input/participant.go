package input

import (
	"context"

	"paradereg/internal/domain/entities"
	"paradereg/internal/ports/output"
)

type ParticipantUseCase interface {
	Register(ctx context.Context, draft entities.Participant) (*entities.Participant, error)
	UpdateParticipant(ctx context.Context, participant entities.Participant) (*entities.Participant, error)
	RemoveParticipant(ctx context.Context, id int) error
	ToggleParticipantStatus(ctx context.Context, id int) (*entities.Participant, error)
	ListParticipants(ctx context.Context) []entities.Participant
	GetStatistics(ctx context.Context) entities.Statistics
	Watch(fn func(output.Snapshot)) (cancel func())
}
