package application

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"paradereg/internal/domain"
	"paradereg/internal/domain/entities"
	"paradereg/internal/ports/input"
	"paradereg/internal/ports/output"
)

var _ input.ViewStateUseCase = (*ViewStateService)(nil)

// ViewStateService derives the filtered listing, statistics and submission
// feedback from the participant collection and republishes them whenever the
// collection or a listing parameter changes.
//
// notifyMu serializes whole publications and is always taken before mu, which
// guards the state. Subscribers run with notifyMu held and mu released, so they
// may call State but must not call the mutating methods. A subscriber
// cancelled during a publication gets no further deliveries, including the
// rest of that one.
type ViewStateService struct {
	participants input.ParticipantUseCase
	translator   output.Translator
	locale       string
	now          func() time.Time
	log          zerolog.Logger

	mu         sync.Mutex
	version    uint64
	all        []entities.Participant
	filtered   []entities.Participant
	stats      entities.Statistics
	filter     entities.Filter
	sort       entities.SortOption
	submission entities.SubmissionState
	message    string
	errMsg     string

	notifyMu  sync.Mutex
	subMu     sync.Mutex
	subs      map[uint64]func(input.ViewState)
	nextSubID uint64

	unwatch func()
}

type ViewStateOption func(*ViewStateService)

func WithViewClock(now func() time.Time) ViewStateOption {
	return func(s *ViewStateService) { s.now = now }
}

func WithViewLogger(log zerolog.Logger) ViewStateOption {
	return func(s *ViewStateService) { s.log = log }
}

// WithLocale sets the locale for messages; "" uses the translator default.
func WithLocale(locale string) ViewStateOption {
	return func(s *ViewStateService) { s.locale = locale }
}

// NewViewStateService attaches to the participant collection; the initial
// state is computed from the collection before it returns.
func NewViewStateService(participants input.ParticipantUseCase, translator output.Translator, opts ...ViewStateOption) *ViewStateService {
	s := &ViewStateService{
		participants: participants,
		translator:   translator,
		now:          time.Now,
		log:          zerolog.Nop(),
		all:          []entities.Participant{},
		filtered:     []entities.Participant{},
		subs:         make(map[uint64]func(input.ViewState)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.unwatch = participants.Watch(s.Refresh)
	return s
}

// Close detaches from the participant collection. State stays readable.
func (s *ViewStateService) Close() {
	s.unwatch()
}

func (s *ViewStateService) State() input.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *ViewStateService) Subscribe(fn func(input.ViewState)) func() {
	s.notifyMu.Lock()
	s.mu.Lock()
	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	s.subMu.Unlock()
	vs := s.stateLocked()
	s.mu.Unlock()
	fn(vs)
	s.notifyMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

// Refresh recomputes the listing and the statistics from snap. The listing
// goes back to insertion order.
func (s *ViewStateService) Refresh(snap output.Snapshot) {
	s.update(func() bool {
		if snap.Version < s.version {
			return false
		}
		s.version = snap.Version
		s.all = snap.Participants
		s.stats = domain.ComputeStatistics(s.all, s.now())
		s.recomputeLocked()
		return true
	})
}

func (s *ViewStateService) SetTypeFilter(t *entities.ParticipantType) {
	s.update(func() bool {
		s.filter.Type = copyPtr(t)
		s.recomputeLocked()
		return true
	})
}

func (s *ViewStateService) SetCategoryFilter(c *entities.ParticipantCategory) {
	s.update(func() bool {
		s.filter.Category = copyPtr(c)
		s.recomputeLocked()
		return true
	})
}

func (s *ViewStateService) SetSearchQuery(query string) {
	s.update(func() bool {
		s.filter.Query = query
		s.recomputeLocked()
		return true
	})
}

func (s *ViewStateService) ClearFilters() {
	s.update(func() bool {
		s.filter = entities.Filter{}
		s.recomputeLocked()
		return true
	})
}

// Sort reorders the current listing. It is not kept as a parameter: the next
// filter change or collection update restores insertion order.
func (s *ViewStateService) Sort(option entities.SortOption) {
	s.update(func() bool {
		if option == entities.SortNatural {
			s.recomputeLocked()
			return true
		}
		s.filtered = domain.SortParticipants(s.filtered, option)
		s.sort = option
		return true
	})
}

// Register submits draft, moving the submission through Submitting to
// Success or Failed. It reports whether the participant was added.
func (s *ViewStateService) Register(ctx context.Context, draft entities.Participant) bool {
	s.update(func() bool {
		s.submission = entities.SubmissionSubmitting
		s.message, s.errMsg = "", ""
		return true
	})

	created, err := s.participants.Register(ctx, draft)
	if err != nil {
		s.fail(err)
		return false
	}
	s.log.Debug().Int("participant_id", created.ID).Msg("registration submitted")
	s.succeed("participant.registered", nil)
	return true
}

func (s *ViewStateService) Update(ctx context.Context, participant entities.Participant) bool {
	if _, err := s.participants.UpdateParticipant(ctx, participant); err != nil {
		s.fail(err)
		return false
	}
	s.succeed("participant.updated", nil)
	return true
}

func (s *ViewStateService) Delete(ctx context.Context, id int) bool {
	if err := s.participants.RemoveParticipant(ctx, id); err != nil {
		s.fail(err)
		return false
	}
	s.succeed("participant.deleted", nil)
	return true
}

func (s *ViewStateService) ToggleActive(ctx context.Context, id int) bool {
	p, err := s.participants.ToggleParticipantStatus(ctx, id)
	if err != nil {
		s.fail(err)
		return false
	}
	key := "participant.deactivated"
	if p.Active {
		key = "participant.activated"
	}
	s.succeed(key, map[string]any{"Name": p.FullName()})
	return true
}

// Acknowledge clears the pending message or error and returns to Idle.
func (s *ViewStateService) Acknowledge() {
	s.update(func() bool {
		s.submission = entities.SubmissionIdle
		s.message, s.errMsg = "", ""
		return true
	})
}

func (s *ViewStateService) succeed(key string, data map[string]any) {
	msg := s.translator.T(s.locale, key, data)
	s.update(func() bool {
		if s.submission == entities.SubmissionSubmitting {
			s.submission = entities.SubmissionSuccess
		}
		s.message, s.errMsg = msg, ""
		return true
	})
}

func (s *ViewStateService) fail(err error) {
	key := "error.unknown"
	if code := domain.Code(err); code != "" {
		key = "error." + code
	}
	msg := s.translator.T(s.locale, key, nil)
	s.log.Info().Err(err).Str("code", domain.Code(err)).Msg("operation failed")
	s.update(func() bool {
		if s.submission == entities.SubmissionSubmitting {
			s.submission = entities.SubmissionFailed
		}
		s.message, s.errMsg = "", msg
		return true
	})
}

// update applies fn under mu and, when fn reports a change, publishes the
// new state.
func (s *ViewStateService) update(fn func() bool) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if !fn() {
		s.mu.Unlock()
		return
	}
	vs := s.stateLocked()
	s.mu.Unlock()

	for _, id := range s.subscriberIDs() {
		if sub, ok := s.subscriber(id); ok {
			sub(vs)
		}
	}
}

func (s *ViewStateService) subscriberIDs() []uint64 {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	ids := make([]uint64, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (s *ViewStateService) subscriber(id uint64) (func(input.ViewState), bool) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	fn, ok := s.subs[id]
	return fn, ok
}

func (s *ViewStateService) recomputeLocked() {
	s.filtered = domain.FilterParticipants(s.all, s.filter)
	s.sort = entities.SortNatural
}

func (s *ViewStateService) stateLocked() input.ViewState {
	return input.ViewState{
		Version:    s.version,
		All:        slices.Clone(s.all),
		Filtered:   slices.Clone(s.filtered),
		Statistics: s.stats,
		Filter: entities.Filter{
			Type:     copyPtr(s.filter.Type),
			Category: copyPtr(s.filter.Category),
			Query:    s.filter.Query,
		},
		Sort:       s.sort,
		Submission: s.submission,
		Message:    s.message,
		Error:      s.errMsg,
	}
}

func copyPtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
