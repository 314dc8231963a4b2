package mysql

import (
	"context"

	"flat-allocation/internal/domain/errs"
	"flat-allocation/internal/domain/project"
	"flat-allocation/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		People:        &PersonRepository{db: tx},
		Projects:      &ProjectRepository{db: tx},
		Applications:  &ApplicationRepository{db: tx},
		Registrations: &RegistrationRepository{db: tx},
		Invoices:      &InvoiceRepository{db: tx},
		Receipts:      &ReceiptRepository{db: tx},
	}
}

// transaction is gorm's Transaction with begin/commit failures reported as
// StorageError; errors returned by fn pass through untouched.
func (u *GormUoW) transaction(ctx context.Context, fn func(tx *gorm.DB) error) (err error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errs.Storage("tx.begin", tx.Error)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()
	if err = fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if cerr := tx.Commit().Error; cerr != nil {
		return errs.Storage("tx.commit", cerr)
	}
	return nil
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.transaction(ctx, func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinProjectTx(ctx context.Context, projectName string, fn func(r uow.Repos, p *project.Project) error) error {
	return u.transaction(ctx, func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the project row up-front so ledger updates cannot interleave
		p, err := r.Projects.GetByNameForUpdate(ctx, projectName)
		if err != nil {
			return err
		}
		return fn(r, p)
	})
}
