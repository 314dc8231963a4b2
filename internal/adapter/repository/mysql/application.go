package mysql

import (
	"context"

	applicationDomain "flat-allocation/internal/domain/application"

	"gorm.io/gorm"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *applicationDomain.Application) error {
	return wrap("applications.create", r.db.WithContext(ctx).Create(a).Error)
}

func (r *ApplicationRepository) Save(ctx context.Context, a *applicationDomain.Application) error {
	return wrap("applications.save", r.db.WithContext(ctx).Save(a).Error)
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*applicationDomain.Application, error) {
	var out applicationDomain.Application
	if err := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out).Error; err != nil {
		return nil, wrap("applications.get", err)
	}
	return &out, nil
}

func (r *ApplicationRepository) GetBlockingByApplicant(ctx context.Context, nric string) (*applicationDomain.Application, error) {
	var out applicationDomain.Application
	err := r.db.WithContext(ctx).
		Where("applicant_nric = ? AND status IN ?", nric, applicationDomain.BlockingStatuses).
		Order("id DESC").
		First(&out).Error
	if err != nil {
		return nil, wrap("applications.get_blocking", err)
	}
	return &out, nil
}

func (r *ApplicationRepository) ListByProject(ctx context.Context, projectName string) ([]applicationDomain.Application, error) {
	var out []applicationDomain.Application
	if err := r.db.WithContext(ctx).Where("project_name = ?", projectName).Order("id").Find(&out).Error; err != nil {
		return nil, wrap("applications.list_by_project", err)
	}
	return out, nil
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, nric string) ([]applicationDomain.Application, error) {
	var out []applicationDomain.Application
	if err := r.db.WithContext(ctx).Where("applicant_nric = ?", nric).Order("id").Find(&out).Error; err != nil {
		return nil, wrap("applications.list_by_applicant", err)
	}
	return out, nil
}
