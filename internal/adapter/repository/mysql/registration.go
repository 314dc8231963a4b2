package mysql

import (
	"context"

	registrationDomain "flat-allocation/internal/domain/registration"

	"gorm.io/gorm"
)

type RegistrationRepository struct{ db *gorm.DB }

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Create(ctx context.Context, reg *registrationDomain.Registration) error {
	return wrap("registrations.create", r.db.WithContext(ctx).Create(reg).Error)
}

func (r *RegistrationRepository) Save(ctx context.Context, reg *registrationDomain.Registration) error {
	return wrap("registrations.save", r.db.WithContext(ctx).Save(reg).Error)
}

func (r *RegistrationRepository) GetByRegistrationID(ctx context.Context, registrationID string) (*registrationDomain.Registration, error) {
	var out registrationDomain.Registration
	if err := r.db.WithContext(ctx).Where("registration_id = ?", registrationID).First(&out).Error; err != nil {
		return nil, wrap("registrations.get", err)
	}
	return &out, nil
}

func (r *RegistrationRepository) GetHeldByOfficer(ctx context.Context, nric string) (*registrationDomain.Registration, error) {
	var out registrationDomain.Registration
	err := r.db.WithContext(ctx).
		Where("officer_nric = ? AND status <> ?", nric, registrationDomain.StatusRejected).
		Order("id DESC").
		First(&out).Error
	if err != nil {
		return nil, wrap("registrations.get_held", err)
	}
	return &out, nil
}

func (r *RegistrationRepository) ListByProject(ctx context.Context, projectName string) ([]registrationDomain.Registration, error) {
	var out []registrationDomain.Registration
	if err := r.db.WithContext(ctx).Where("project_name = ?", projectName).Order("id").Find(&out).Error; err != nil {
		return nil, wrap("registrations.list_by_project", err)
	}
	return out, nil
}
