package household

import "foodbank/internal/entities"

func ToDomain(h *HouseholdDB) *entities.Household {
	if h == nil {
		return nil
	}

	return &entities.Household{
		ID:                        h.ID,
		FirstName:                 h.FirstName,
		LastName:                  h.LastName,
		PhoneNumber:               h.PhoneNumber,
		Locale:                    h.Locale,
		CreatedAt:                 h.CreatedAt,
		AnonymizedAt:              h.AnonymizedAt,
		AnonymizedBy:              h.AnonymizedBy,
		NoShowFollowupDismissedAt: h.NoShowFollowupDismissedAt,
		NoShowFollowupDismissedBy: h.NoShowFollowupDismissedBy,
	}
}

func ToDomainOutcomeRows(rowsDB []OutcomeRowDB) []entities.ParcelOutcomeRow {
	if len(rowsDB) == 0 {
		return []entities.ParcelOutcomeRow{}
	}

	result := make([]entities.ParcelOutcomeRow, len(rowsDB))
	for i, row := range rowsDB {
		result[i] = entities.ParcelOutcomeRow{
			HouseholdID:        row.HouseholdID,
			FirstName:          row.FirstName,
			LastName:           row.LastName,
			DismissedAt:        row.DismissedAt,
			ParcelID:           row.ParcelID,
			PickupEarliestTime: row.PickupDateTimeEarliest,
			NoShowAt:           row.NoShowAt,
			IsPickedUp:         row.IsPickedUp,
		}
	}
	return result
}
