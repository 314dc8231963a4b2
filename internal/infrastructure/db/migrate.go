package db

import (
	"flat-allocation/internal/domain/application"
	"flat-allocation/internal/domain/invoice"
	"flat-allocation/internal/domain/person"
	"flat-allocation/internal/domain/project"
	"flat-allocation/internal/domain/registration"

	"gorm.io/gorm"
)

// Models lists every table the service owns, in creation order.
func Models() []any {
	return []any{
		&person.Person{},
		&project.Project{},
		&application.Application{},
		&registration.Registration{},
		&invoice.Invoice{},
		&invoice.Receipt{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
