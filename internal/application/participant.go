package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"paradereg/internal/domain"
	"paradereg/internal/domain/entities"
	"paradereg/internal/ports/input"
	"paradereg/internal/ports/output"
	"paradereg/pkg/validator"
)

var _ input.ParticipantUseCase = (*ParticipantService)(nil)

type ParticipantService struct {
	participantRepo output.ParticipantRepository
	log             zerolog.Logger
}

func NewParticipantService(participantRepo output.ParticipantRepository, log zerolog.Logger) *ParticipantService {
	return &ParticipantService{
		participantRepo: participantRepo,
		log:             log,
	}
}

// Register checks the draft's required fields and adds it to the store.
func (s *ParticipantService) Register(ctx context.Context, draft entities.Participant) (*entities.Participant, error) {
	draft = normalize(draft)
	if err := validator.Validate(ctx, draft); err != nil {
		s.log.Warn().Err(err).Msg("registration rejected")
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidParticipant, err)
	}
	created, err := s.participantRepo.Add(ctx, draft)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			s.log.Info().Str("email", draft.Email).Msg("registration with existing email")
		}
		return nil, fmt.Errorf("add participant: %w", err)
	}
	return &created, nil
}

func (s *ParticipantService) UpdateParticipant(ctx context.Context, participant entities.Participant) (*entities.Participant, error) {
	participant = normalize(participant)
	if err := validator.Validate(ctx, participant); err != nil {
		s.log.Warn().Err(err).Int("participant_id", participant.ID).Msg("update rejected")
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidParticipant, err)
	}
	updated, err := s.participantRepo.Update(ctx, participant)
	if err != nil {
		return nil, fmt.Errorf("update participant: %w", err)
	}
	return &updated, nil
}

func (s *ParticipantService) RemoveParticipant(ctx context.Context, id int) error {
	if err := s.participantRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete participant: %w", err)
	}
	return nil
}

func (s *ParticipantService) ToggleParticipantStatus(ctx context.Context, id int) (*entities.Participant, error) {
	p, err := s.participantRepo.ToggleActive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("toggle participant: %w", err)
	}
	return &p, nil
}

func (s *ParticipantService) ListParticipants(ctx context.Context) []entities.Participant {
	return s.participantRepo.Snapshot().Participants
}

func (s *ParticipantService) GetStatistics(ctx context.Context) entities.Statistics {
	return s.participantRepo.Statistics()
}

func (s *ParticipantService) Watch(fn func(output.Snapshot)) func() {
	return s.participantRepo.Subscribe(fn)
}

// normalize trims text fields and maps unknown enum codes to their defaults.
func normalize(p entities.Participant) entities.Participant {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Address = strings.TrimSpace(p.Address)
	p.Type = entities.ParseParticipantType(p.Type.Code())
	p.Category = entities.ParseParticipantCategory(p.Category.Code())
	return p
}
