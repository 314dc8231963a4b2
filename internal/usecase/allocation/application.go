package allocation

import (
	"context"
	"errors"
	"time"

	"flat-allocation/internal/domain/application"
	"flat-allocation/internal/domain/eligibility"
	"flat-allocation/internal/domain/errs"
	"flat-allocation/internal/domain/project"
	"flat-allocation/internal/domain/uow"
	"flat-allocation/pkg/id"

	"go.uber.org/zap"
)

// Apply opens a PENDING application for the caller and adds them to the
// project's applicant set.
func (e *Engine) Apply(ctx context.Context, applicantNRIC string, in ApplyInput) (_ *ApplicationDTO, err error) {
	defer e.observe("apply", time.Now(), &err)

	if !in.FlatType.Valid() {
		return nil, errs.Reason(errs.ErrInvalidInput, "unknown flat type %q", in.FlatType)
	}

	var a *application.Application
	err = e.inProject(ctx, in.ProjectName, []string{applicantNRIC}, func(r uow.Repos, p *project.Project) error {
		who, err := actor(ctx, r, applicantNRIC)
		if err != nil {
			return err
		}
		if !who.CanApply() {
			return errs.Reason(errs.ErrUnauthorized, "%s may not apply for flats", applicantNRIC)
		}

		existing, err := r.Applications.GetBlockingByApplicant(ctx, applicantNRIC)
		switch {
		case err == nil:
			return errs.Reason(errs.ErrAlreadyApplied, "%s holds %s application %s", applicantNRIC, existing.Status, existing.ApplicationID)
		case !errors.Is(err, errs.ErrNotFound):
			return err
		}

		reg, err := r.Registrations.GetHeldByOfficer(ctx, applicantNRIC)
		switch {
		case err == nil && reg.ProjectName == p.Name:
			return errs.Reason(errs.ErrRoleConflict, "%s is registered as officer of %s", applicantNRIC, p.Name)
		case err != nil && !errors.Is(err, errs.ErrNotFound):
			return err
		}

		now := e.clock()
		if err := eligibility.Check(who.Profile(), p, in.FlatType, now); err != nil {
			return err
		}
		if p.Remaining(in.FlatType) <= 0 {
			return errs.Reason(errs.ErrNoCapacity, "no %s units left in %s", in.FlatType, p.Name)
		}

		a = &application.Application{
			ApplicationID:   id.NewID32(),
			ApplicantNRIC:   applicantNRIC,
			ProjectName:     p.Name,
			FlatType:        in.FlatType,
			Status:          application.StatusPending,
			StatusUpdatedAt: now,
		}
		if err := r.Applications.Create(ctx, a); err != nil {
			return err
		}
		p.AddApplicant(applicantNRIC)
		return r.Projects.Save(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	e.invalidate(ctx)
	dto := toApplicationDTO(a)
	e.logTransition(dto, "")
	return &dto, nil
}

// peekApplication reads an application outside any lock, to learn which
// project and applicant to lock. Decisions re-read it under the locks.
func (e *Engine) peekApplication(ctx context.Context, applicationID string) (*application.Application, error) {
	var a *application.Application
	err := e.read(ctx, func(r uow.Repos) error {
		var err error
		a, err = r.Applications.GetByApplicationID(ctx, applicationID)
		return err
	})
	return a, err
}

// onApplication locks the application's project and the given people plus
// the applicant, then hands fn the locked project and a fresh application.
func (e *Engine) onApplication(ctx context.Context, applicationID string, nrics []string, fn func(r uow.Repos, p *project.Project, a *application.Application) error) error {
	peek, err := e.peekApplication(ctx, applicationID)
	if err != nil {
		return err
	}
	people := append([]string{peek.ApplicantNRIC}, nrics...)
	return e.inProject(ctx, peek.ProjectName, people, func(r uow.Repos, p *project.Project) error {
		a, err := r.Applications.GetByApplicationID(ctx, applicationID)
		if err != nil {
			return err
		}
		return fn(r, p, a)
	})
}

// DecideApplication approves or rejects a PENDING application. Approval
// needs a unit left but does not reserve it; booking does.
func (e *Engine) DecideApplication(ctx context.Context, managerNRIC, applicationID string, approve bool) (_ *ApplicationDTO, err error) {
	defer e.observe("decide_application", time.Now(), &err)

	var dto ApplicationDTO
	var from application.Status
	err = e.onApplication(ctx, applicationID, []string{managerNRIC}, func(r uow.Repos, p *project.Project, a *application.Application) error {
		if err := requireOwner(ctx, r, managerNRIC, p); err != nil {
			return err
		}
		from = a.Status
		if approve && a.Status == application.StatusPending && p.Remaining(a.FlatType) <= 0 {
			return errs.Reason(errs.ErrNoCapacity, "no %s units left in %s", a.FlatType, p.Name)
		}
		if err := a.Decide(approve, e.clock()); err != nil {
			return err
		}
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		if !approve {
			p.RemoveApplicant(a.ApplicantNRIC)
			if err := r.Projects.Save(ctx, p); err != nil {
				return err
			}
		}
		dto = toApplicationDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !approve {
		e.invalidate(ctx)
	}
	e.logTransition(dto, from)
	return &dto, nil
}

// RequestWithdrawal lets the owner withdraw a PENDING or SUCCESSFUL
// application, pending a manager's decision.
func (e *Engine) RequestWithdrawal(ctx context.Context, applicantNRIC, applicationID string) (_ *ApplicationDTO, err error) {
	defer e.observe("request_withdrawal", time.Now(), &err)

	var dto ApplicationDTO
	var from application.Status
	err = e.onApplication(ctx, applicationID, nil, func(r uow.Repos, _ *project.Project, a *application.Application) error {
		if a.ApplicantNRIC != applicantNRIC {
			return errs.Reason(errs.ErrUnauthorized, "application %s belongs to someone else", applicationID)
		}
		from = a.Status
		if err := a.RequestWithdrawal(e.clock()); err != nil {
			return err
		}
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		dto = toApplicationDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.logTransition(dto, from)
	return &dto, nil
}

// DecideWithdrawal approves a requested withdrawal, which frees the
// applicant to apply again, or rejects it, which restores the status held
// before the request. Neither touches the unit counters.
func (e *Engine) DecideWithdrawal(ctx context.Context, managerNRIC, applicationID string, approve bool) (_ *ApplicationDTO, err error) {
	defer e.observe("decide_withdrawal", time.Now(), &err)

	var dto ApplicationDTO
	var from application.Status
	err = e.onApplication(ctx, applicationID, []string{managerNRIC}, func(r uow.Repos, p *project.Project, a *application.Application) error {
		if err := requireOwner(ctx, r, managerNRIC, p); err != nil {
			return err
		}
		from = a.Status
		if err := a.DecideWithdrawal(approve, e.clock()); err != nil {
			return err
		}
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		if approve {
			p.RemoveApplicant(a.ApplicantNRIC)
			if err := r.Projects.Save(ctx, p); err != nil {
				return err
			}
		}
		dto = toApplicationDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if approve {
		e.invalidate(ctx)
	}
	e.logTransition(dto, from)
	return &dto, nil
}

// GetApplication returns one application to its owner, the project's
// manager or one of its officers.
func (e *Engine) GetApplication(ctx context.Context, viewerNRIC, applicationID string) (_ *ApplicationDTO, err error) {
	defer e.observe("get_application", time.Now(), &err)

	var dto ApplicationDTO
	err = e.read(ctx, func(r uow.Repos) error {
		a, err := r.Applications.GetByApplicationID(ctx, applicationID)
		if err != nil {
			return err
		}
		if a.ApplicantNRIC != viewerNRIC {
			p, err := r.Projects.GetByName(ctx, a.ProjectName)
			if err != nil {
				return err
			}
			if p.ManagerNRIC != viewerNRIC && !p.HasOfficer(viewerNRIC) {
				return errs.Reason(errs.ErrUnauthorized, "%s may not view application %s", viewerNRIC, applicationID)
			}
		}
		dto = toApplicationDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// ListMyApplications returns every application the caller ever made.
func (e *Engine) ListMyApplications(ctx context.Context, applicantNRIC string) (_ []ApplicationDTO, err error) {
	defer e.observe("list_my_applications", time.Now(), &err)

	var out []ApplicationDTO
	err = e.read(ctx, func(r uow.Repos) error {
		if _, err := actor(ctx, r, applicantNRIC); err != nil {
			return err
		}
		as, err := r.Applications.ListByApplicant(ctx, applicantNRIC)
		if err != nil {
			return err
		}
		out = make([]ApplicationDTO, 0, len(as))
		for i := range as {
			out = append(out, toApplicationDTO(&as[i]))
		}
		return nil
	})
	return out, err
}

// ListProjectApplications is open to the project's manager and officers.
func (e *Engine) ListProjectApplications(ctx context.Context, viewerNRIC, projectName string) (_ []ApplicationDTO, err error) {
	defer e.observe("list_project_applications", time.Now(), &err)

	var out []ApplicationDTO
	err = e.read(ctx, func(r uow.Repos) error {
		p, err := r.Projects.GetByName(ctx, projectName)
		if err != nil {
			return err
		}
		if p.ManagerNRIC != viewerNRIC && !p.HasOfficer(viewerNRIC) {
			return errs.Reason(errs.ErrUnauthorized, "%s is not staff on %s", viewerNRIC, projectName)
		}
		as, err := r.Applications.ListByProject(ctx, projectName)
		if err != nil {
			return err
		}
		out = make([]ApplicationDTO, 0, len(as))
		for i := range as {
			out = append(out, toApplicationDTO(&as[i]))
		}
		return nil
	})
	return out, err
}

func (e *Engine) logTransition(dto ApplicationDTO, from application.Status) {
	e.log.Info("application transition",
		zap.String("application_id", dto.ApplicationID),
		zap.String("project", dto.ProjectName),
		zap.String("from", string(from)),
		zap.String("to", dto.Status),
	)
}
