package allocation

import (
	"context"
	"errors"
	"time"

	"flat-allocation/internal/domain/application"
	"flat-allocation/internal/domain/errs"
	"flat-allocation/internal/domain/invoice"
	"flat-allocation/internal/domain/project"
	"flat-allocation/internal/domain/uow"
	"flat-allocation/internal/infrastructure/metrics"
	"flat-allocation/pkg/id"

	"go.uber.org/zap"
)

// Book turns a SUCCESSFUL application into a booking. The unit reservation,
// the BOOKED transition and the invoice commit together or not at all.
func (e *Engine) Book(ctx context.Context, officerNRIC, applicationID string) (_ *BookingDTO, err error) {
	defer e.observe("book", time.Now(), &err)

	var out BookingDTO
	err = e.onApplication(ctx, applicationID, []string{officerNRIC}, func(r uow.Repos, p *project.Project, a *application.Application) error {
		if err := requireAssigned(ctx, r, officerNRIC, p.Name); err != nil {
			return err
		}
		now := e.clock()
		if err := a.Book(now); err != nil {
			return err
		}
		if err := p.ReserveUnit(a.FlatType); err != nil {
			return err
		}
		inv := &invoice.Invoice{
			InvoiceID:     id.NewID32(),
			ApplicationID: a.ApplicationID,
			ApplicantNRIC: a.ApplicantNRIC,
			ProjectName:   p.Name,
			FlatType:      a.FlatType,
			Amount:        p.Price(a.FlatType),
			Status:        invoice.StatusAwaitingPayment,
		}
		if err := r.Projects.Save(ctx, p); err != nil {
			return err
		}
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		if err := r.Invoices.Create(ctx, inv); err != nil {
			return err
		}
		out = BookingDTO{Application: toApplicationDTO(a), Invoice: toInvoiceDTO(inv)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.invalidate(ctx)
	metrics.UnitsBooked.WithLabelValues(out.Application.ProjectName, out.Application.FlatType).Inc()
	e.logTransition(out.Application, application.StatusSuccessful)
	e.log.Info("invoice raised", zap.String("invoice_id", out.Invoice.InvoiceID), zap.Float64("amount", out.Invoice.Amount))
	return &out, nil
}

// onInvoice locks the invoice's project, its applicant and the given
// people, then hands fn a fresh copy.
func (e *Engine) onInvoice(ctx context.Context, invoiceID string, nrics []string, fn func(r uow.Repos, p *project.Project, inv *invoice.Invoice) error) error {
	var peek *invoice.Invoice
	err := e.read(ctx, func(r uow.Repos) error {
		var err error
		peek, err = r.Invoices.GetByInvoiceID(ctx, invoiceID)
		return err
	})
	if err != nil {
		return err
	}
	people := append([]string{peek.ApplicantNRIC}, nrics...)
	return e.inProject(ctx, peek.ProjectName, people, func(r uow.Repos, p *project.Project) error {
		inv, err := r.Invoices.GetByInvoiceID(ctx, invoiceID)
		if err != nil {
			return err
		}
		return fn(r, p, inv)
	})
}

// PayInvoice records the owner's payment.
func (e *Engine) PayInvoice(ctx context.Context, applicantNRIC, invoiceID string, method invoice.PaymentMethod) (_ *InvoiceDTO, err error) {
	defer e.observe("pay_invoice", time.Now(), &err)

	var dto InvoiceDTO
	err = e.onInvoice(ctx, invoiceID, nil, func(r uow.Repos, _ *project.Project, inv *invoice.Invoice) error {
		if inv.ApplicantNRIC != applicantNRIC {
			return errs.Reason(errs.ErrUnauthorized, "invoice %s belongs to someone else", invoiceID)
		}
		if err := inv.Pay(method, e.clock()); err != nil {
			return err
		}
		if err := r.Invoices.Save(ctx, inv); err != nil {
			return err
		}
		dto = toInvoiceDTO(inv)
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.log.Info("invoice paid", zap.String("invoice_id", invoiceID), zap.String("method", string(method)))
	return &dto, nil
}

// IssueReceipt closes a paid invoice with an immutable receipt. Only the
// approved officer of the invoice's project may issue it, once, and never
// for their own invoice.
func (e *Engine) IssueReceipt(ctx context.Context, officerNRIC, invoiceID string) (_ *invoice.Receipt, err error) {
	defer e.observe("issue_receipt", time.Now(), &err)

	var rc *invoice.Receipt
	err = e.onInvoice(ctx, invoiceID, []string{officerNRIC}, func(r uow.Repos, p *project.Project, inv *invoice.Invoice) error {
		if err := requireAssigned(ctx, r, officerNRIC, p.Name); err != nil {
			return err
		}
		if inv.ApplicantNRIC == officerNRIC {
			return errs.Reason(errs.ErrUnauthorized, "%s may not issue a receipt for their own invoice", officerNRIC)
		}
		_, err := r.Receipts.GetByInvoiceID(ctx, invoiceID)
		switch {
		case err == nil:
			return errs.Reason(errs.ErrAlreadyIssued, "invoice %s", invoiceID)
		case !errors.Is(err, errs.ErrNotFound):
			return err
		}
		applicant, err := r.People.GetByNRIC(ctx, inv.ApplicantNRIC)
		if err != nil {
			return err
		}
		rc, err = inv.Issue(id.NewID32(), applicant, p.Neighborhood, officerNRIC, e.clock())
		if err != nil {
			return err
		}
		if err := r.Receipts.Create(ctx, rc); err != nil {
			return err
		}
		return r.Invoices.Save(ctx, inv)
	})
	if err != nil {
		return nil, err
	}
	e.log.Info("receipt issued", zap.String("receipt_id", rc.ReceiptID), zap.String("invoice_id", invoiceID), zap.String("officer", officerNRIC))
	return rc, nil
}

// ListMyInvoices returns the caller's invoices.
func (e *Engine) ListMyInvoices(ctx context.Context, applicantNRIC string) (_ []InvoiceDTO, err error) {
	defer e.observe("list_my_invoices", time.Now(), &err)

	var out []InvoiceDTO
	err = e.read(ctx, func(r uow.Repos) error {
		if _, err := actor(ctx, r, applicantNRIC); err != nil {
			return err
		}
		invs, err := r.Invoices.ListByApplicant(ctx, applicantNRIC)
		if err != nil {
			return err
		}
		out = make([]InvoiceDTO, 0, len(invs))
		for i := range invs {
			out = append(out, toInvoiceDTO(&invs[i]))
		}
		return nil
	})
	return out, err
}

// GetReceipt returns the receipt of an invoice to its applicant or to an
// officer of its project.
func (e *Engine) GetReceipt(ctx context.Context, viewerNRIC, invoiceID string) (_ *invoice.Receipt, err error) {
	defer e.observe("get_receipt", time.Now(), &err)

	var rc *invoice.Receipt
	err = e.read(ctx, func(r uow.Repos) error {
		var err error
		rc, err = r.Receipts.GetByInvoiceID(ctx, invoiceID)
		if err != nil {
			return err
		}
		if rc.ApplicantNRIC == viewerNRIC {
			return nil
		}
		p, err := r.Projects.GetByName(ctx, rc.ProjectName)
		if err != nil {
			return err
		}
		if !p.HasOfficer(viewerNRIC) && p.ManagerNRIC != viewerNRIC {
			return errs.Reason(errs.ErrUnauthorized, "%s may not view receipt for %s", viewerNRIC, invoiceID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rc, nil
}
