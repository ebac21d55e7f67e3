package parcel

import (
	"foodbank/internal/entities"

	"github.com/jackc/pgx/v5"
)

const parcelColumns = `id, household_id, pickup_location_id, pickup_date_time_earliest, pickup_date_time_latest,
	is_picked_up, picked_up_at, picked_up_by, no_show_at, no_show_by, deleted_at, deleted_by, created_at`

func scanParcel(row pgx.Row) (*ParcelDB, error) {
	var p ParcelDB
	err := row.Scan(
		&p.ID,
		&p.HouseholdID,
		&p.PickupLocationID,
		&p.PickupDateTimeEarliest,
		&p.PickupDateTimeLatest,
		&p.IsPickedUp,
		&p.PickedUpAt,
		&p.PickedUpBy,
		&p.NoShowAt,
		&p.NoShowBy,
		&p.DeletedAt,
		&p.DeletedBy,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func ToDomain(p *ParcelDB) *entities.Parcel {
	if p == nil {
		return nil
	}

	return &entities.Parcel{
		ID:                 p.ID,
		HouseholdID:        p.HouseholdID,
		PickupLocationID:   p.PickupLocationID,
		PickupEarliestTime: p.PickupDateTimeEarliest,
		PickupLatestTime:   p.PickupDateTimeLatest,
		IsPickedUp:         p.IsPickedUp,
		PickedUpAt:         p.PickedUpAt,
		PickedUpBy:         p.PickedUpBy,
		NoShowAt:           p.NoShowAt,
		NoShowBy:           p.NoShowBy,
		DeletedAt:          p.DeletedAt,
		DeletedBy:          p.DeletedBy,
		CreatedAt:          p.CreatedAt,
	}
}

func ToDomainList(parcelsDB []ParcelDB) []entities.Parcel {
	if len(parcelsDB) == 0 {
		return []entities.Parcel{}
	}

	result := make([]entities.Parcel, len(parcelsDB))
	for i, parcelDB := range parcelsDB {
		result[i] = *ToDomain(&parcelDB)
	}
	return result
}

func FromDomainModify(parcelModify *entities.ParcelModify) *ParcelModifyDB {
	if parcelModify == nil {
		return nil
	}

	return &ParcelModifyDB{
		ID:                     parcelModify.ID,
		HouseholdID:            parcelModify.HouseholdID,
		PickupLocationID:       parcelModify.PickupLocationID,
		PickupDateTimeEarliest: parcelModify.PickupEarliestTime,
		PickupDateTimeLatest:   parcelModify.PickupLatestTime,
		IsPickedUp:             parcelModify.IsPickedUp,
		PickedUpAt:             parcelModify.PickedUpAt,
		PickedUpBy:             parcelModify.PickedUpBy,
		NoShowAt:               parcelModify.NoShowAt,
		NoShowBy:               parcelModify.NoShowBy,
	}
}
