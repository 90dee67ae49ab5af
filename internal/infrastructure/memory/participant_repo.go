package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"paradereg/internal/domain"
	"paradereg/internal/domain/entities"
	"paradereg/internal/ports/output"
)

var _ output.ParticipantRepository = (*ParticipantRepository)(nil)

// ParticipantRepository implements output.ParticipantRepository in memory.
//
// writeMu serializes mutations end to end (check, apply, notify). mu guards
// the published slice, which is replaced on every write and never modified
// in place, so readers can share it.
type ParticipantRepository struct {
	writeMu sync.Mutex

	mu           sync.RWMutex
	participants []entities.Participant
	version      uint64
	nextID       int

	subMu     sync.Mutex
	subs      map[uint64]func(output.Snapshot)
	nextSubID uint64

	now func() time.Time
	log zerolog.Logger
}

type Option func(*ParticipantRepository)

// WithClock replaces time.Now as the source of registration and evaluation times.
func WithClock(now func() time.Time) Option {
	return func(r *ParticipantRepository) { r.now = now }
}

func WithLogger(log zerolog.Logger) Option {
	return func(r *ParticipantRepository) { r.log = log }
}

// NewParticipantRepository creates an empty repository; ids start at 1.
func NewParticipantRepository(opts ...Option) *ParticipantRepository {
	r := &ParticipantRepository{
		participants: []entities.Participant{},
		nextID:       1,
		subs:         make(map[uint64]func(output.Snapshot)),
		now:          time.Now,
		log:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *ParticipantRepository) Add(ctx context.Context, draft entities.Participant) (entities.Participant, error) {
	if err := ctx.Err(); err != nil {
		return entities.Participant{}, err
	}
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	current := r.current()
	for _, p := range current {
		if p.Email == draft.Email {
			r.log.Debug().Str("email", draft.Email).Int("existing_id", p.ID).Msg("duplicate email rejected")
			return entities.Participant{}, domain.ErrDuplicateEmail
		}
	}

	created := draft
	created.ID = r.nextID
	created.Active = true
	if created.RegisteredAt.IsZero() {
		created.RegisteredAt = r.now()
	}

	next := make([]entities.Participant, len(current), len(current)+1)
	copy(next, current)
	next = append(next, created)
	r.nextID++
	r.publish(next)

	r.log.Info().Int("participant_id", created.ID).Str("email", created.Email).Msg("participant added")
	return created, nil
}

func (r *ParticipantRepository) Update(ctx context.Context, participant entities.Participant) (entities.Participant, error) {
	if err := ctx.Err(); err != nil {
		return entities.Participant{}, err
	}
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	current := r.current()
	idx := indexOf(current, participant.ID)
	if idx < 0 {
		return entities.Participant{}, domain.ErrParticipantNotFound
	}

	next := slices.Clone(current)
	next[idx] = participant
	r.publish(next)

	r.log.Info().Int("participant_id", participant.ID).Msg("participant updated")
	return participant, nil
}

func (r *ParticipantRepository) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	current := r.current()
	idx := indexOf(current, id)
	if idx < 0 {
		return domain.ErrParticipantNotFound
	}

	next := make([]entities.Participant, 0, len(current)-1)
	next = append(next, current[:idx]...)
	next = append(next, current[idx+1:]...)
	r.publish(next)

	r.log.Info().Int("participant_id", id).Msg("participant deleted")
	return nil
}

func (r *ParticipantRepository) ToggleActive(ctx context.Context, id int) (entities.Participant, error) {
	if err := ctx.Err(); err != nil {
		return entities.Participant{}, err
	}
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	current := r.current()
	idx := indexOf(current, id)
	if idx < 0 {
		return entities.Participant{}, domain.ErrParticipantNotFound
	}

	next := slices.Clone(current)
	next[idx].Active = !next[idx].Active
	updated := next[idx]
	r.publish(next)

	r.log.Info().Int("participant_id", id).Bool("active", updated.Active).Msg("participant status toggled")
	return updated, nil
}

// Snapshot returns a copy of the collection; callers may modify it freely.
func (r *ParticipantRepository) Snapshot() output.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return output.Snapshot{Version: r.version, Participants: slices.Clone(r.participants)}
}

func (r *ParticipantRepository) Statistics() entities.Statistics {
	return domain.ComputeStatistics(r.current(), r.now())
}

func (r *ParticipantRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.participants)
}

func (r *ParticipantRepository) Subscribe(fn func(output.Snapshot)) func() {
	// Holding writeMu keeps a mutation from slipping in between the initial
	// delivery and the registration.
	r.writeMu.Lock()
	r.subMu.Lock()
	id := r.nextSubID
	r.nextSubID++
	r.subs[id] = fn
	r.subMu.Unlock()
	fn(r.Snapshot())
	r.writeMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.subMu.Lock()
			delete(r.subs, id)
			r.subMu.Unlock()
		})
	}
}

// current returns the published slice. It must not be modified.
func (r *ParticipantRepository) current() []entities.Participant {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.participants
}

// publish swaps in next and notifies subscribers. Callers hold writeMu.
func (r *ParticipantRepository) publish(next []entities.Participant) {
	r.mu.Lock()
	r.participants = next
	r.version++
	version := r.version
	r.mu.Unlock()

	r.subMu.Lock()
	ids := make([]uint64, 0, len(r.subs))
	for id := range r.subs {
		ids = append(ids, id)
	}
	r.subMu.Unlock()
	slices.Sort(ids)

	// A subscriber cancelled by an earlier one in this loop is skipped.
	delivered := 0
	for _, id := range ids {
		r.subMu.Lock()
		fn, ok := r.subs[id]
		r.subMu.Unlock()
		if !ok {
			continue
		}
		fn(output.Snapshot{Version: version, Participants: slices.Clone(next)})
		delivered++
	}
	r.log.Debug().Uint64("version", version).Int("subscribers", delivered).Msg("collection published")
}

func indexOf(participants []entities.Participant, id int) int {
	return slices.IndexFunc(participants, func(p entities.Participant) bool { return p.ID == id })
}
