package input

import (
	"context"

	"paradereg/internal/domain/entities"
)

// ViewState is everything a screen needs, derived from one collection version.
type ViewState struct {
	Version    uint64
	All        []entities.Participant
	Filtered   []entities.Participant
	Statistics entities.Statistics
	Filter     entities.Filter
	Sort       entities.SortOption
	Submission entities.SubmissionState
	Message    string
	Error      string
}

type ViewStateUseCase interface {
	State() ViewState
	// Subscribe delivers the current state, then every later publication in
	// order. fn may call State but not the mutating methods. After cancel
	// returns fn is not called again.
	Subscribe(fn func(ViewState)) (cancel func())

	SetTypeFilter(t *entities.ParticipantType)
	SetCategoryFilter(c *entities.ParticipantCategory)
	SetSearchQuery(query string)
	ClearFilters()
	Sort(option entities.SortOption)

	Register(ctx context.Context, draft entities.Participant) bool
	Update(ctx context.Context, participant entities.Participant) bool
	Delete(ctx context.Context, id int) bool
	ToggleActive(ctx context.Context, id int) bool
	Acknowledge()
}
