package memory_test

import (
	"context"
	"math"
	"testing"

	"paradereg/internal/domain/entities"
	"paradereg/internal/infrastructure/memory"
)

func TestSeed(t *testing.T) {
	repo := newRepo(t)
	if err := memory.Seed(context.Background(), repo, now); err != nil {
		t.Fatalf("seed: %v", err)
	}

	ps := repo.Snapshot().Participants
	if len(ps) != 3 {
		t.Fatalf("seeded %d participants, want 3", len(ps))
	}
	want := []struct {
		id    int
		first string
		typ   entities.ParticipantType
		cat   entities.ParticipantCategory
	}{
		{1, "María", entities.TypeStudent, entities.CategoryDancer},
		{2, "Carlos", entities.TypeProfessor, entities.CategoryMusician},
		{3, "Ana", entities.TypeCommunityMember, entities.CategoryOrganizer},
	}
	for i, w := range want {
		p := ps[i]
		if p.ID != w.id || p.FirstName != w.first || p.Type != w.typ || p.Category != w.cat || !p.Active {
			t.Errorf("participant %d = %+v", i, p)
		}
	}
	if got := now.Sub(ps[2].RegisteredAt).Hours(); got != 5 {
		t.Errorf("Ana registered %vh ago, want 5", got)
	}

	s := repo.Statistics()
	if s.Total != 3 || s.Active != 3 {
		t.Fatalf("total/active = %d/%d", s.Total, s.Active)
	}
	if s.TypeCount(entities.TypeStudent) != 1 || s.TypeCount(entities.TypeProfessor) != 1 || s.TypeCount(entities.TypeCommunityMember) != 1 {
		t.Errorf("by type = %+v", s.ByType)
	}
	if s.CategoryCount(entities.CategoryDancer) != 1 || s.CategoryCount(entities.CategoryMusician) != 1 || s.CategoryCount(entities.CategoryOrganizer) != 1 {
		t.Errorf("by category = %+v", s.ByCategory)
	}
	if math.Abs(s.AverageAge-29.333333) > 1e-3 {
		t.Errorf("average age = %v", s.AverageAge)
	}
}

func TestSeed_DuplicateScenario(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	if err := memory.Seed(ctx, repo, now); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := repo.Add(ctx, draft("x@y.com", 30)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := repo.Add(ctx, draft("x@y.com", 30)); err == nil {
		t.Fatal("second add with same email succeeded")
	}
	if repo.Len() != 4 {
		t.Fatalf("len = %d, want 4", repo.Len())
	}

	// Seeding again collides on every email.
	if err := memory.Seed(ctx, repo, now); err == nil {
		t.Fatal("reseeding succeeded")
	}
}
