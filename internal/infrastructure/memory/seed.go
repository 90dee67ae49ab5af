package memory

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"

	"paradereg/internal/domain/entities"
	"paradereg/internal/ports/output"
)

//go:embed seed.toml
var seedFile []byte

type seedParticipant struct {
	FirstName     string `toml:"first_name"`
	LastName      string `toml:"last_name"`
	Email         string `toml:"email"`
	Phone         string `toml:"phone"`
	Age           int    `toml:"age"`
	Address       string `toml:"address"`
	Type          string `toml:"type"`
	Category      string `toml:"category"`
	RegisteredAgo string `toml:"registered_ago"`
}

type seedDocument struct {
	Participants []seedParticipant `toml:"participant"`
}

// SeedParticipants decodes the embedded example dataset, with registration
// times relative to now.
func SeedParticipants(now time.Time) ([]entities.Participant, error) {
	var doc seedDocument
	if err := toml.Unmarshal(seedFile, &doc); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	out := make([]entities.Participant, 0, len(doc.Participants))
	for _, sp := range doc.Participants {
		ago, err := time.ParseDuration(sp.RegisteredAgo)
		if err != nil {
			return nil, fmt.Errorf("seed %s: registered_ago: %w", sp.Email, err)
		}
		out = append(out, entities.Participant{
			FirstName:    sp.FirstName,
			LastName:     sp.LastName,
			Email:        sp.Email,
			Phone:        sp.Phone,
			Age:          sp.Age,
			Address:      sp.Address,
			Type:         entities.ParseParticipantType(sp.Type),
			Category:     entities.ParseParticipantCategory(sp.Category),
			RegisteredAt: now.Add(-ago),
			Active:       true,
		})
	}
	return out, nil
}

// Seed adds the example dataset to repo through the regular Add path.
func Seed(ctx context.Context, repo output.ParticipantRepository, now time.Time) error {
	participants, err := SeedParticipants(now)
	if err != nil {
		return err
	}
	for _, p := range participants {
		if _, err := repo.Add(ctx, p); err != nil {
			return fmt.Errorf("seed %s: %w", p.Email, err)
		}
	}
	return nil
}
