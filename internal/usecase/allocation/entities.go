package allocation

import (
	"time"

	"flat-allocation/internal/domain/application"
	"flat-allocation/internal/domain/flat"
	"flat-allocation/internal/domain/invoice"
	"flat-allocation/internal/domain/person"
	"flat-allocation/internal/domain/project"
	"flat-allocation/internal/domain/registration"
)

type RegisterPersonInput struct {
	NRIC          string               `json:"nric"`
	Name          string               `json:"name"`
	Age           int                  `json:"age"`
	MaritalStatus person.MaritalStatus `json:"marital_status"`
	Role          person.Role          `json:"role"`
}

type PersonDTO struct {
	NRIC          string    `json:"nric"`
	Name          string    `json:"name"`
	Age           int       `json:"age"`
	MaritalStatus string    `json:"marital_status"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProjectInput carries every editable project field. On update Name is
// taken from the path and ignored here.
type ProjectInput struct {
	Name           string    `json:"name"`
	Neighborhood   string    `json:"neighborhood"`
	OpenDate       time.Time `json:"open_date"`
	CloseDate      time.Time `json:"close_date"`
	Visible        bool      `json:"visible"`
	TwoRoomUnits   int       `json:"two_room_units"`
	ThreeRoomUnits int       `json:"three_room_units"`
	TwoRoomPrice   float64   `json:"two_room_price"`
	ThreeRoomPrice float64   `json:"three_room_price"`
	OfficerSlots   int       `json:"officer_slots"`
}

type FlatOffer struct {
	FlatType  flat.Type `json:"flat_type"`
	Remaining int       `json:"remaining"`
	Price     float64   `json:"price"`
}

type ProjectDTO struct {
	Name         string      `json:"name"`
	Neighborhood string      `json:"neighborhood"`
	OpenDate     time.Time   `json:"open_date"`
	CloseDate    time.Time   `json:"close_date"`
	Visible      bool        `json:"visible"`
	Flats        []FlatOffer `json:"flats"`
	OfficerSlots int         `json:"officer_slots"`
	ManagerNRIC  string      `json:"manager_nric"`
	Officers     []string    `json:"officers"`
}

type ApplyInput struct {
	ProjectName string    `json:"project_name"`
	FlatType    flat.Type `json:"flat_type"`
}

type ApplicationDTO struct {
	ApplicationID   string    `json:"application_id"`
	ApplicantNRIC   string    `json:"applicant_nric"`
	ProjectName     string    `json:"project_name"`
	FlatType        string    `json:"flat_type"`
	Status          string    `json:"status"`
	PriorStatus     string    `json:"prior_status,omitempty"`
	StatusUpdatedAt time.Time `json:"status_updated_at"`
}

type RegistrationDTO struct {
	RegistrationID string     `json:"registration_id"`
	OfficerNRIC    string     `json:"officer_nric"`
	ProjectName    string     `json:"project_name"`
	Status         string     `json:"status"`
	DecidedAt      *time.Time `json:"decided_at,omitempty"`
}

type InvoiceDTO struct {
	InvoiceID     string     `json:"invoice_id"`
	ApplicationID string     `json:"application_id"`
	ApplicantNRIC string     `json:"applicant_nric"`
	ProjectName   string     `json:"project_name"`
	FlatType      string     `json:"flat_type"`
	Amount        float64    `json:"amount"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	Status        string     `json:"status"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

type BookingDTO struct {
	Application ApplicationDTO `json:"application"`
	Invoice     InvoiceDTO     `json:"invoice"`
}

func toPersonDTO(p *person.Person) *PersonDTO {
	return &PersonDTO{
		NRIC:          p.NRIC,
		Name:          p.Name,
		Age:           p.Age,
		MaritalStatus: string(p.MaritalStatus),
		Role:          string(p.Role),
		CreatedAt:     p.CreatedAt,
	}
}

// toProjectDTO lists the offers for types, in the order given.
func toProjectDTO(p *project.Project, types []flat.Type) ProjectDTO {
	offers := make([]FlatOffer, 0, len(types))
	for _, ft := range types {
		offers = append(offers, FlatOffer{FlatType: ft, Remaining: p.Remaining(ft), Price: p.Price(ft)})
	}
	officers := append([]string{}, p.OfficerNRICs...)
	return ProjectDTO{
		Name:         p.Name,
		Neighborhood: p.Neighborhood,
		OpenDate:     p.OpenDate,
		CloseDate:    p.CloseDate,
		Visible:      p.Visible,
		Flats:        offers,
		OfficerSlots: p.OfficerSlots,
		ManagerNRIC:  p.ManagerNRIC,
		Officers:     officers,
	}
}

func toApplicationDTO(a *application.Application) ApplicationDTO {
	return ApplicationDTO{
		ApplicationID:   a.ApplicationID,
		ApplicantNRIC:   a.ApplicantNRIC,
		ProjectName:     a.ProjectName,
		FlatType:        string(a.FlatType),
		Status:          string(a.Status),
		PriorStatus:     string(a.PriorStatus),
		StatusUpdatedAt: a.StatusUpdatedAt,
	}
}

func toRegistrationDTO(r *registration.Registration) RegistrationDTO {
	return RegistrationDTO{
		RegistrationID: r.RegistrationID,
		OfficerNRIC:    r.OfficerNRIC,
		ProjectName:    r.ProjectName,
		Status:         string(r.Status),
		DecidedAt:      r.DecidedAt,
	}
}

func toInvoiceDTO(i *invoice.Invoice) InvoiceDTO {
	return InvoiceDTO{
		InvoiceID:     i.InvoiceID,
		ApplicationID: i.ApplicationID,
		ApplicantNRIC: i.ApplicantNRIC,
		ProjectName:   i.ProjectName,
		FlatType:      string(i.FlatType),
		Amount:        i.Amount,
		PaymentMethod: string(i.PaymentMethod),
		Status:        string(i.Status),
		PaidAt:        i.PaidAt,
	}
}
