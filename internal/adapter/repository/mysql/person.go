package mysql

import (
	"context"

	personDomain "flat-allocation/internal/domain/person"

	"gorm.io/gorm"
)

type PersonRepository struct{ db *gorm.DB }

func NewPersonRepository(db *gorm.DB) *PersonRepository { return &PersonRepository{db: db} }

func (r *PersonRepository) Create(ctx context.Context, p *personDomain.Person) error {
	return wrap("people.create", r.db.WithContext(ctx).Create(p).Error)
}

func (r *PersonRepository) GetByNRIC(ctx context.Context, nric string) (*personDomain.Person, error) {
	var out personDomain.Person
	if err := r.db.WithContext(ctx).Where("nric = ?", nric).First(&out).Error; err != nil {
		return nil, wrap("people.get", err)
	}
	return &out, nil
}

func (r *PersonRepository) List(ctx context.Context) ([]personDomain.Person, error) {
	var out []personDomain.Person
	if err := r.db.WithContext(ctx).Order("nric").Find(&out).Error; err != nil {
		return nil, wrap("people.list", err)
	}
	return out, nil
}
