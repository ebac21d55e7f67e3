package noshow

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"foodbank/internal/entities"
)

type NoShow struct {
	repository Repository
	settings   SettingsProvider
	clock      Clock
	txManager  TxManager
}

func New(repository Repository, settings SettingsProvider, clock Clock, txManager TxManager) *NoShow {
	return &NoShow{
		repository: repository,
		settings:   settings,
		clock:      clock,
		txManager:  txManager,
	}
}

// ListFollowups возвращает домохозяйства, которым нужен звонок после неявок.
func (n *NoShow) ListFollowups(ctx context.Context) ([]entities.NoShowFollowup, error) {
	settings, err := n.settings.NoShowSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("get no-show settings: %w", err)
	}
	if !settings.Enabled {
		return []entities.NoShowFollowup{}, nil
	}

	var rows []entities.ParcelOutcomeRow
	err = n.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		rows, err = n.repository.ListOutcomeRows(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list outcome rows: %w", err)
	}

	followups := make([]entities.NoShowFollowup, 0)
	for _, group := range groupByHousehold(rows) {
		followup, ok := summarize(group)
		if !ok {
			continue
		}
		if !qualifies(followup, settings) {
			continue
		}
		if dismissed := group[0].DismissedAt; dismissed != nil && !followup.LastNoShowAt.After(*dismissed) {
			continue
		}
		followups = append(followups, followup)
	}

	sort.Slice(followups, func(i, j int) bool {
		if !followups[i].LastNoShowAt.Equal(followups[j].LastNoShowAt) {
			return followups[i].LastNoShowAt.After(followups[j].LastNoShowAt)
		}
		return followups[i].HouseholdID < followups[j].HouseholdID
	})
	return followups, nil
}

func (n *NoShow) DismissFollowup(ctx context.Context, householdID, userID string) error {
	if strings.TrimSpace(householdID) == "" || strings.TrimSpace(userID) == "" {
		return ErrMissingRequiredFields
	}

	if err := n.repository.DismissFollowup(ctx, householdID, n.clock.Now(), userID); err != nil {
		return fmt.Errorf("dismiss followup: %w", err)
	}
	return nil
}

// groupByHousehold режет упорядоченный поток строк на группы по домохозяйству.
func groupByHousehold(rows []entities.ParcelOutcomeRow) [][]entities.ParcelOutcomeRow {
	var groups [][]entities.ParcelOutcomeRow
	start := 0
	for i := 1; i <= len(rows); i++ {
		if i == len(rows) || rows[i].HouseholdID != rows[start].HouseholdID {
			groups = append(groups, rows[start:i])
			start = i
		}
	}
	return groups
}

// summarize считает неявки за один проход. Серия обрывается на первой выдаче,
// которая не является неявкой.
func summarize(rows []entities.ParcelOutcomeRow) (entities.NoShowFollowup, bool) {
	followup := entities.NoShowFollowup{
		HouseholdID: rows[0].HouseholdID,
		FirstName:   rows[0].FirstName,
		LastName:    rows[0].LastName,
	}

	streak := true
	for _, row := range rows {
		if row.NoShowAt == nil {
			streak = false
			continue
		}

		followup.TotalNoShows++
		if streak {
			followup.ConsecutiveNoShows++
		}
		if row.NoShowAt.After(followup.LastNoShowAt) {
			followup.LastNoShowAt = *row.NoShowAt
		}
	}
	return followup, followup.TotalNoShows > 0
}

func qualifies(followup entities.NoShowFollowup, settings entities.NoShowSettings) bool {
	return followup.TotalNoShows >= settings.TotalThreshold ||
		followup.ConsecutiveNoShows >= settings.ConsecutiveThreshold
}
