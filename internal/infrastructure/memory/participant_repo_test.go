package memory_test

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"paradereg/internal/domain"
	"paradereg/internal/domain/entities"
	"paradereg/internal/infrastructure/memory"
	"paradereg/internal/ports/output"
)

var now = time.Date(2026, 6, 29, 12, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) *memory.ParticipantRepository {
	t.Helper()
	return memory.NewParticipantRepository(memory.WithClock(func() time.Time { return now }))
}

func draft(email string, age int) entities.Participant {
	return entities.Participant{
		FirstName: "Test",
		LastName:  "Person",
		Email:     email,
		Phone:     "555-0000",
		Age:       age,
		Address:   "Jr. Lima 1",
		Type:      entities.TypeVolunteer,
		Category:  entities.CategorySecurity,
	}
}

func TestAdd_AssignsSequentialIDsAndDefaults(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	first, err := repo.Add(ctx, draft("a@x.com", 20))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	withID := draft("b@x.com", 21)
	withID.ID = 99
	second, err := repo.Add(ctx, withID)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("ids = %d, %d, want 1, 2", first.ID, second.ID)
	}
	if !first.RegisteredAt.Equal(now) || !first.Active {
		t.Fatalf("defaults not applied: %+v", first)
	}

	custom := draft("c@x.com", 22)
	custom.RegisteredAt = now.Add(-time.Hour)
	third, err := repo.Add(ctx, custom)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !third.RegisteredAt.Equal(custom.RegisteredAt) {
		t.Fatalf("caller timestamp overridden: %v", third.RegisteredAt)
	}

	snap := repo.Snapshot()
	if got := []int{snap.Participants[0].ID, snap.Participants[1].ID, snap.Participants[2].ID}; !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("order = %v", got)
	}
}

func TestAdd_DuplicateEmail(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	if _, err := repo.Add(ctx, draft("x@y.com", 30)); err != nil {
		t.Fatalf("add: %v", err)
	}
	before := repo.Snapshot()

	_, err := repo.Add(ctx, draft("x@y.com", 40))
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("err = %v, want ErrDuplicateEmail", err)
	}
	after := repo.Snapshot()
	if repo.Len() != 1 || !reflect.DeepEqual(before, after) {
		t.Fatalf("collection changed: %+v -> %+v", before, after)
	}

	// Exact match only.
	if _, err := repo.Add(ctx, draft("X@y.com", 40)); err != nil {
		t.Fatalf("differently cased email rejected: %v", err)
	}
}

func TestMissingID_NotFoundAndUnchanged(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	if _, err := repo.Add(ctx, draft("a@x.com", 20)); err != nil {
		t.Fatalf("add: %v", err)
	}
	before := repo.Snapshot()

	ghost := draft("ghost@x.com", 1)
	ghost.ID = 42
	if _, err := repo.Update(ctx, ghost); !errors.Is(err, domain.ErrParticipantNotFound) {
		t.Errorf("update: %v", err)
	}
	if err := repo.Delete(ctx, 42); !errors.Is(err, domain.ErrParticipantNotFound) {
		t.Errorf("delete: %v", err)
	}
	if _, err := repo.ToggleActive(ctx, 42); !errors.Is(err, domain.ErrParticipantNotFound) {
		t.Errorf("toggle: %v", err)
	}

	if after := repo.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Fatalf("collection changed: %+v -> %+v", before, after)
	}
}

func TestUpdate_KeepsPosition(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	for _, e := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		if _, err := repo.Add(ctx, draft(e, 20)); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	p := repo.Snapshot().Participants[1]
	p.FirstName = "Renamed"
	p.Age = 61
	got, err := repo.Update(ctx, p)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.FirstName != "Renamed" {
		t.Fatalf("returned %+v", got)
	}

	snap := repo.Snapshot().Participants
	if snap[1].ID != 2 || snap[1].FirstName != "Renamed" || snap[1].Age != 61 {
		t.Fatalf("record at index 1 = %+v", snap[1])
	}
}

func TestDelete(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	for _, e := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		if _, err := repo.Add(ctx, draft(e, 20)); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if err := repo.Delete(ctx, 2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	snap := repo.Snapshot().Participants
	if len(snap) != 2 || snap[0].ID != 1 || snap[1].ID != 3 {
		t.Fatalf("after delete: %+v", snap)
	}

	// Ids are never reused.
	p, err := repo.Add(ctx, draft("d@x.com", 20))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if p.ID != 4 {
		t.Fatalf("new id = %d, want 4", p.ID)
	}
}

func TestToggleActive_ReflectedInStatistics(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	if err := memory.Seed(ctx, repo, now); err != nil {
		t.Fatalf("seed: %v", err)
	}
	before := repo.Statistics().Active

	p, err := repo.ToggleActive(ctx, 1)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if p.Active {
		t.Fatal("participant still active")
	}
	if got := repo.Statistics().Active; got != before-1 {
		t.Fatalf("active = %d, want %d", got, before-1)
	}

	if p, _ = repo.ToggleActive(ctx, 1); !p.Active {
		t.Fatal("second toggle did not reactivate")
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	repo := newRepo(t)
	if _, err := repo.Add(context.Background(), draft("a@x.com", 20)); err != nil {
		t.Fatalf("add: %v", err)
	}
	snap := repo.Snapshot()
	snap.Participants[0].Email = "mutated@x.com"
	if got := repo.Snapshot().Participants[0].Email; got != "a@x.com" {
		t.Fatalf("store mutated through snapshot: %q", got)
	}
}

func TestSubscribe(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	if _, err := repo.Add(ctx, draft("a@x.com", 20)); err != nil {
		t.Fatalf("add: %v", err)
	}

	var got []output.Snapshot
	cancel := repo.Subscribe(func(s output.Snapshot) { got = append(got, s) })

	if len(got) != 1 || got[0].Version != 1 || len(got[0].Participants) != 1 {
		t.Fatalf("initial delivery = %+v", got)
	}

	if _, err := repo.Add(ctx, draft("b@x.com", 20)); err != nil {
		t.Fatalf("add: %v", err)
	}
	// Delivered before Add returned.
	if len(got) != 2 || got[1].Version != 2 || len(got[1].Participants) != 2 {
		t.Fatalf("after add = %+v", got)
	}

	// Failed mutations publish nothing.
	_, _ = repo.Add(ctx, draft("b@x.com", 20))
	_ = repo.Delete(ctx, 77)
	if len(got) != 2 {
		t.Fatalf("failed mutation published: %d deliveries", len(got))
	}

	cancel()
	cancel()
	if _, err := repo.ToggleActive(ctx, 1); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("delivered after cancel: %d", len(got))
	}
}

func TestAdd_ConcurrentSameEmail(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	const workers = 32
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Add(ctx, draft("race@x.com", 30)); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if successes != 1 || repo.Len() != 1 {
		t.Fatalf("successes = %d, len = %d, want 1 and 1", successes, repo.Len())
	}
}

func TestCancelledContext(t *testing.T) {
	repo := newRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := repo.Add(ctx, draft("a@x.com", 20)); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if repo.Len() != 0 {
		t.Fatal("participant added with cancelled context")
	}
}

func TestSubscribe_CancelledDuringPublish(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	var cancelSecond func()
	first := repo.Subscribe(func(output.Snapshot) {
		if cancelSecond != nil {
			cancelSecond()
		}
	})
	defer first()

	second := 0
	cancelSecond = repo.Subscribe(func(output.Snapshot) { second++ })
	if second != 1 {
		t.Fatalf("initial deliveries = %d", second)
	}

	// The first subscriber runs before the second and cancels it.
	if _, err := repo.Add(ctx, draft("a@x.com", 20)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if second != 1 {
		t.Fatalf("cancelled subscriber got %d deliveries", second)
	}
}
