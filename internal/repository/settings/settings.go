package settings

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"foodbank/internal/entities"
)

const (
	KeyNoShowFollowupEnabled      = "noshow_followup_enabled"
	KeyNoShowConsecutiveThreshold = "noshow_consecutive_threshold"
	KeyNoShowTotalThreshold       = "noshow_total_threshold"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) NoShowSettings(ctx context.Context) (entities.NoShowSettings, error) {
	query := `SELECT key, value FROM global_settings WHERE key = ANY($1)`

	rows, err := r.querier.Query(ctx, query, []string{
		KeyNoShowFollowupEnabled,
		KeyNoShowConsecutiveThreshold,
		KeyNoShowTotalThreshold,
	})
	if err != nil {
		return entities.NoShowSettings{}, fmt.Errorf("unexpected settings repository get error: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string, 3)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return entities.NoShowSettings{}, fmt.Errorf("unexpected settings repository get error: %w", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return entities.NoShowSettings{}, fmt.Errorf("unexpected settings repository get error: %w", err)
	}

	return NoShowSettingsFromValues(values), nil
}

// NoShowSettingsFromValues собирает настройки из сырых значений таблицы.
// Отсутствующее, нечисловое или выходящее за границы значение заменяется значением по умолчанию.
func NoShowSettingsFromValues(values map[string]string) entities.NoShowSettings {
	settings := entities.DefaultNoShowSettings()

	if raw, ok := values[KeyNoShowFollowupEnabled]; ok {
		if enabled, err := strconv.ParseBool(strings.TrimSpace(raw)); err == nil {
			settings.Enabled = enabled
		}
	}
	settings.ConsecutiveThreshold = boundedInt(values[KeyNoShowConsecutiveThreshold], 1, 10, settings.ConsecutiveThreshold)
	settings.TotalThreshold = boundedInt(values[KeyNoShowTotalThreshold], 1, 50, settings.TotalThreshold)

	return settings
}

func boundedInt(raw string, lo, hi, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < lo || value > hi {
		return fallback
	}
	return value
}
