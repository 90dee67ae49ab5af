package application_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"paradereg/internal/application"
	"paradereg/internal/infrastructure/memory"
)

var now = time.Date(2026, 6, 29, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

// keyTranslator renders keys verbatim, appending the Name placeholder if any.
type keyTranslator struct{}

func (keyTranslator) T(locale, key string, data map[string]any) string {
	if name, ok := data["Name"]; ok {
		return fmt.Sprintf("%s:%v", key, name)
	}
	return key
}

func seededRepo(t *testing.T) *memory.ParticipantRepository {
	t.Helper()
	repo := memory.NewParticipantRepository(memory.WithClock(clock))
	if err := memory.Seed(context.Background(), repo, now); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return repo
}

func newView(t *testing.T) (*application.ViewStateService, *memory.ParticipantRepository) {
	t.Helper()
	repo := seededRepo(t)
	svc := application.NewParticipantService(repo, zerolog.Nop())
	view := application.NewViewStateService(svc, keyTranslator{}, application.WithViewClock(clock))
	t.Cleanup(view.Close)
	return view, repo
}
