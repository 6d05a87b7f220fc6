// Multiverse Stats - Rick and Morty API Aggregation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/multiverse-stats

package aggregate

import (
	"context"

	"github.com/goccy/go-json"

	"github.com/tomtom215/multiverse-stats/internal/logging"
	"github.com/tomtom215/multiverse-stats/internal/metrics"
	"github.com/tomtom215/multiverse-stats/internal/models"
	"github.com/tomtom215/multiverse-stats/internal/remote"
)

// CollectCharacterStats walks every page of the character collection and
// returns the cumulative statistics. On any error no stats are returned.
func (s *Service) CollectCharacterStats(ctx context.Context) (*models.CharacterStats, error) {
	total := models.NewCharacterStats()
	url, hasNext := s.baseURL+characterPath, true
	pages := 0

	for hasNext {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := s.fetchPage(ctx, url)
		if err != nil {
			return nil, err
		}
		pages++
		metrics.RecordPageFolded(len(page.Results))

		pageStats := FoldPage(page.Results)
		total.Add(pageStats)

		logging.Ctx(ctx).Debug().
			Int("page", pages).
			Int("records", len(page.Results)).
			Int("total", total.Total()).
			Msg("Folded character page")

		url, hasNext = page.NextURL()
	}

	return total, nil
}

// fetchPage gets one page and decodes its envelope.
func (s *Service) fetchPage(ctx context.Context, url string) (*models.PagedResponse, error) {
	body, err := s.getter.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	var page models.PagedResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, remote.UnexpectedShape(err)
	}
	return &page, nil
}

// FoldPage classifies each record of one page:
//   - a name is kept only when it is a non-empty string
//   - species exactly "Human" is human, anything else is not
//   - status exactly "Alive" or "Dead" counts, anything else counts toward neither
func FoldPage(records []json.RawMessage) *models.CharacterStats {
	stats := &models.CharacterStats{
		CharacterNames: make([]string, 0, len(records)),
	}

	for _, raw := range records {
		c := models.DecodeCharacter(raw)

		if c.Name.NonEmpty() {
			stats.CharacterNames = append(stats.CharacterNames, c.Name.Value)
		}

		if c.IsHuman() {
			stats.HumanCount++
		} else {
			stats.NotHumanCount++
		}

		switch {
		case c.IsAlive():
			stats.AliveCount++
		case c.IsDead():
			stats.DeadCount++
		}
	}

	return stats
}
