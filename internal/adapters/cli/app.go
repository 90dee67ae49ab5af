package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"paradereg/internal/application"
	"paradereg/internal/config"
	"paradereg/internal/infrastructure/i18n"
	"paradereg/internal/infrastructure/memory"
	"paradereg/pkg/tz"
)

// App wires ports: memory store -> application use cases -> commands.
type App struct {
	log          zerolog.Logger
	loc          *time.Location
	translator   *i18n.Translator
	repo         *memory.ParticipantRepository
	participants *application.ParticipantService
	view         *application.ViewStateService
}

// NewApp builds the object graph and, when cfg.Seed is set, loads the example
// participants.
func NewApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	loc, err := tz.Load(cfg.Timezone)
	if err != nil {
		return nil, err
	}
	translator, err := i18n.NewTranslator(cfg.Locale, log)
	if err != nil {
		return nil, err
	}

	repo := memory.NewParticipantRepository(memory.WithLogger(log.With().Str("component", "store").Logger()))
	if cfg.Seed {
		if err := memory.Seed(ctx, repo, time.Now()); err != nil {
			return nil, fmt.Errorf("seed store: %w", err)
		}
		log.Debug().Int("participants", repo.Len()).Msg("store seeded")
	}

	participants := application.NewParticipantService(repo, log.With().Str("component", "participants").Logger())
	view := application.NewViewStateService(participants, translator,
		application.WithLocale(translator.DefaultLocale()),
		application.WithViewLogger(log.With().Str("component", "view").Logger()),
	)

	return &App{
		log:          log,
		loc:          loc,
		translator:   translator,
		repo:         repo,
		participants: participants,
		view:         view,
	}, nil
}

func (a *App) Close() {
	a.view.Close()
	a.log.Debug().Int("participants", a.repo.Len()).Msg("session closed")
}

func (a *App) t(key string, data map[string]any) string {
	return a.translator.T(a.translator.DefaultLocale(), key, data)
}
