package zonerepo

import (
	"context"
	"errors"

	"banda/internal/core/domain/model/zone"
	"banda/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormZoneRepository implements ZoneRepository using GORM.
type GormZoneRepository struct {
	db *gorm.DB
}

// NewGormZoneRepository creates a new GORM zone repository.
func NewGormZoneRepository(db *gorm.DB) *GormZoneRepository {
	return &GormZoneRepository{db: db}
}

// Add saves a new zone to the database.
func (r *GormZoneRepository) Add(ctx context.Context, deliveryZone zone.DeliveryZone) error {
	if err := deliveryZone.Validate(); err != nil {
		return err
	}

	dto := fromDomain(deliveryZone)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a zone by name.
func (r *GormZoneRepository) Get(ctx context.Context, name string) (zone.DeliveryZone, error) {
	var dto ZoneDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zone.DeliveryZone{}, errs.NewObjectNotFoundError("zone", name)
		}
		return zone.DeliveryZone{}, err
	}

	return toDomain(dto)
}

// GetAll retrieves the full zone table sorted by name.
func (r *GormZoneRepository) GetAll(ctx context.Context) ([]zone.DeliveryZone, error) {
	var dtos []ZoneDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	zones := make([]zone.DeliveryZone, 0, len(dtos))
	for _, dto := range dtos {
		z, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}

	return zones, nil
}
