package invoice

import (
	"time"

	"flat-allocation/internal/domain/errs"
	"flat-allocation/internal/domain/flat"
	"flat-allocation/internal/domain/person"
)

type Status string

const (
	StatusAwaitingPayment Status = "AWAITING_PAYMENT"
	StatusAwaitingReceipt Status = "AWAITING_RECEIPT"
	StatusProcessed       Status = "PROCESSED"
)

type PaymentMethod string

const (
	MethodPayNow       PaymentMethod = "PAYNOW"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodCreditCard   PaymentMethod = "CREDIT_CARD"
)

func (m PaymentMethod) Valid() bool {
	return m == MethodPayNow || m == MethodBankTransfer || m == MethodCreditCard
}

// Table: invoices (one per booking)
type Invoice struct {
	ID            uint64        `gorm:"primaryKey;column:id" json:"-"`
	InvoiceID     string        `gorm:"size:32;uniqueIndex:ux_invoices_invoice_id;not null" json:"invoice_id"`
	ApplicationID string        `gorm:"size:32;uniqueIndex:ux_invoices_application_id;not null" json:"application_id"`
	ApplicantNRIC string        `gorm:"size:9;index:idx_invoices_applicant;not null" json:"applicant_nric"`
	ProjectName   string        `gorm:"size:128;index:idx_invoices_project;not null" json:"project_name"`
	FlatType      flat.Type     `gorm:"size:16;not null" json:"flat_type"`
	Amount        float64       `gorm:"type:decimal(14,2);not null" json:"amount"`
	PaymentMethod PaymentMethod `gorm:"size:32" json:"payment_method,omitempty"`
	Status        Status        `gorm:"size:32;not null" json:"status"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Invoice) TableName() string { return "invoices" }

// Pay records the payment method and moves the invoice to AWAITING_RECEIPT.
func (i *Invoice) Pay(method PaymentMethod, now time.Time) error {
	if i.Status != StatusAwaitingPayment {
		return errs.Reason(errs.ErrAlreadyPaid, "invoice %s is %s", i.InvoiceID, i.Status)
	}
	if !method.Valid() {
		return errs.Reason(errs.ErrInvalidInput, "unknown payment method %q", method)
	}
	i.PaymentMethod = method
	i.Status = StatusAwaitingReceipt
	t := now.UTC()
	i.PaidAt = &t
	return nil
}

// Table: receipts
//
// A receipt is an immutable snapshot taken when the invoice is processed.
type Receipt struct {
	ID                  uint64               `gorm:"primaryKey;column:id" json:"-"`
	ReceiptID           string               `gorm:"size:32;uniqueIndex:ux_receipts_receipt_id;not null" json:"receipt_id"`
	InvoiceID           string               `gorm:"size:32;uniqueIndex:ux_receipts_invoice_id;not null" json:"invoice_id"`
	ApplicantNRIC       string               `gorm:"size:9;not null" json:"applicant_nric"`
	ApplicantName       string               `gorm:"size:128" json:"applicant_name"`
	ApplicantAge        int                  `json:"applicant_age"`
	ApplicantMarital    person.MaritalStatus `gorm:"size:16" json:"applicant_marital_status"`
	ProjectName         string               `gorm:"size:128;not null" json:"project_name"`
	ProjectNeighborhood string               `gorm:"size:128" json:"project_neighborhood"`
	FlatType            flat.Type            `gorm:"size:16;not null" json:"flat_type"`
	Price               float64              `gorm:"type:decimal(14,2);not null" json:"price"`
	PaymentMethod       PaymentMethod        `gorm:"size:32" json:"payment_method"`
	IssuedByOfficerNRIC string               `gorm:"size:9;not null" json:"issued_by"`
	IssuedAt            time.Time            `gorm:"not null" json:"issued_at"`
}

func (Receipt) TableName() string { return "receipts" }

// Issue builds the receipt for a paid invoice and marks the invoice PROCESSED.
func (i *Invoice) Issue(receiptID string, applicant *person.Person, neighborhood, officerNRIC string, now time.Time) (*Receipt, error) {
	if i.Status != StatusAwaitingReceipt {
		return nil, errs.Reason(errs.ErrInvalidTransition, "invoice %s is %s, not AWAITING_RECEIPT", i.InvoiceID, i.Status)
	}
	r := &Receipt{
		ReceiptID:           receiptID,
		InvoiceID:           i.InvoiceID,
		ApplicantNRIC:       i.ApplicantNRIC,
		ApplicantName:       applicant.Name,
		ApplicantAge:        applicant.Age,
		ApplicantMarital:    applicant.MaritalStatus,
		ProjectName:         i.ProjectName,
		ProjectNeighborhood: neighborhood,
		FlatType:            i.FlatType,
		Price:               i.Amount,
		PaymentMethod:       i.PaymentMethod,
		IssuedByOfficerNRIC: officerNRIC,
		IssuedAt:            now.UTC(),
	}
	i.Status = StatusProcessed
	return r, nil
}
