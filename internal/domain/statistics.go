package domain

import (
	"time"

	"paradereg/internal/domain/entities"
)

// RecentWindow is how far back a registration still counts as recent.
const RecentWindow = 24 * time.Hour

// ComputeStatistics aggregates the full collection as seen at now.
func ComputeStatistics(participants []entities.Participant, now time.Time) entities.Statistics {
	stats := entities.Statistics{Total: len(participants)}
	if len(participants) == 0 {
		return stats
	}

	typeIdx := make(map[entities.ParticipantType]int)
	categoryIdx := make(map[entities.ParticipantCategory]int)
	bracketIdx := make(map[entities.AgeBracket]int)
	ageSum := 0

	for _, p := range participants {
		if p.Active {
			stats.Active++
		}
		ageSum += p.Age

		if i, ok := typeIdx[p.Type]; ok {
			stats.ByType[i].Count++
		} else {
			typeIdx[p.Type] = len(stats.ByType)
			stats.ByType = append(stats.ByType, entities.TypeCount{Type: p.Type, Count: 1})
		}

		if i, ok := categoryIdx[p.Category]; ok {
			stats.ByCategory[i].Count++
		} else {
			categoryIdx[p.Category] = len(stats.ByCategory)
			stats.ByCategory = append(stats.ByCategory, entities.CategoryCount{Category: p.Category, Count: 1})
		}

		b := entities.BracketFor(p.Age)
		if i, ok := bracketIdx[b]; ok {
			stats.AgeBrackets[i].Count++
		} else {
			bracketIdx[b] = len(stats.AgeBrackets)
			stats.AgeBrackets = append(stats.AgeBrackets, entities.BracketCount{Bracket: b, Count: 1})
		}

		if now.Sub(p.RegisteredAt) <= RecentWindow {
			stats.Recent++
		}
	}

	stats.AverageAge = float64(ageSum) / float64(len(participants))
	return stats
}
