package mysql

import (
	"context"

	projectDomain "flat-allocation/internal/domain/project"

	"gorm.io/gorm"
)

type ProjectRepository struct{ db *gorm.DB }

func NewProjectRepository(db *gorm.DB) *ProjectRepository { return &ProjectRepository{db: db} }

func (r *ProjectRepository) List(ctx context.Context) ([]projectDomain.Project, error) {
	var out []projectDomain.Project
	if err := r.db.WithContext(ctx).Order("name").Find(&out).Error; err != nil {
		return nil, wrap("projects.list", err)
	}
	return out, nil
}

func (r *ProjectRepository) ListByManager(ctx context.Context, managerNRIC string) ([]projectDomain.Project, error) {
	var out []projectDomain.Project
	err := r.db.WithContext(ctx).
		Where("manager_nric = ?", managerNRIC).
		Order("open_date").
		Find(&out).Error
	if err != nil {
		return nil, wrap("projects.list_by_manager", err)
	}
	return out, nil
}

func (r *ProjectRepository) GetByName(ctx context.Context, name string) (*projectDomain.Project, error) {
	var out projectDomain.Project
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&out).Error; err != nil {
		return nil, wrap("projects.get", err)
	}
	return &out, nil
}

func (r *ProjectRepository) GetByNameForUpdate(ctx context.Context, name string) (*projectDomain.Project, error) {
	var out projectDomain.Project
	if err := forUpdate(r.db.WithContext(ctx)).Where("name = ?", name).First(&out).Error; err != nil {
		return nil, wrap("projects.get_for_update", err)
	}
	return &out, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p *projectDomain.Project) error {
	return wrap("projects.create", r.db.WithContext(ctx).Create(p).Error)
}

func (r *ProjectRepository) Save(ctx context.Context, p *projectDomain.Project) error {
	return wrap("projects.save", r.db.WithContext(ctx).Save(p).Error)
}

func (r *ProjectRepository) DeleteByName(ctx context.Context, name string) error {
	res := r.db.WithContext(ctx).Where("name = ?", name).Delete(&projectDomain.Project{})
	if res.Error != nil {
		return wrap("projects.delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return wrap("projects.delete", gorm.ErrRecordNotFound)
	}
	return nil
}
