package allocation

import (
	"context"
	"errors"
	"time"

	"flat-allocation/internal/domain/errs"
	"flat-allocation/internal/domain/project"
	"flat-allocation/internal/domain/registration"
	"flat-allocation/internal/domain/uow"
	"flat-allocation/pkg/id"

	"go.uber.org/zap"
)

// RegisterOfficer files a PENDING request by an officer to administer
// projectName.
func (e *Engine) RegisterOfficer(ctx context.Context, officerNRIC, projectName string) (_ *RegistrationDTO, err error) {
	defer e.observe("register_officer", time.Now(), &err)

	var reg *registration.Registration
	err = e.inProject(ctx, projectName, []string{officerNRIC}, func(r uow.Repos, p *project.Project) error {
		who, err := actor(ctx, r, officerNRIC)
		if err != nil {
			return err
		}
		if !who.IsOfficer() {
			return errs.Reason(errs.ErrUnauthorized, "%s is not an officer", officerNRIC)
		}

		held, err := r.Registrations.GetHeldByOfficer(ctx, officerNRIC)
		switch {
		case err == nil:
			return errs.Reason(errs.ErrAlreadyAssigned, "%s holds %s registration for %s", officerNRIC, held.Status, held.ProjectName)
		case !errors.Is(err, errs.ErrNotFound):
			return err
		}

		a, err := r.Applications.GetBlockingByApplicant(ctx, officerNRIC)
		switch {
		case err == nil && a.ProjectName == p.Name && a.Status.Active():
			return errs.Reason(errs.ErrRoleConflict, "%s has %s application to %s", officerNRIC, a.Status, p.Name)
		case err != nil && !errors.Is(err, errs.ErrNotFound):
			return err
		}

		reg = &registration.Registration{
			RegistrationID: id.NewID32(),
			OfficerNRIC:    officerNRIC,
			ProjectName:    p.Name,
			Status:         registration.StatusPending,
		}
		return r.Registrations.Create(ctx, reg)
	})
	if err != nil {
		return nil, err
	}
	e.log.Info("officer registration filed", zap.String("registration_id", reg.RegistrationID), zap.String("project", reg.ProjectName), zap.String("officer", officerNRIC))
	dto := toRegistrationDTO(reg)
	return &dto, nil
}

// onRegistration locks the registration's project, its officer and the
// given people, then hands fn a fresh copy.
func (e *Engine) onRegistration(ctx context.Context, registrationID string, nrics []string, fn func(r uow.Repos, p *project.Project, reg *registration.Registration) error) error {
	var peek *registration.Registration
	err := e.read(ctx, func(r uow.Repos) error {
		var err error
		peek, err = r.Registrations.GetByRegistrationID(ctx, registrationID)
		return err
	})
	if err != nil {
		return err
	}
	people := append([]string{peek.OfficerNRIC}, nrics...)
	return e.inProject(ctx, peek.ProjectName, people, func(r uow.Repos, p *project.Project) error {
		reg, err := r.Registrations.GetByRegistrationID(ctx, registrationID)
		if err != nil {
			return err
		}
		return fn(r, p, reg)
	})
}

// DecideRegistration approves a PENDING registration, taking an officer
// slot, or rejects it, which frees the officer to register elsewhere.
func (e *Engine) DecideRegistration(ctx context.Context, managerNRIC, registrationID string, approve bool) (_ *RegistrationDTO, err error) {
	defer e.observe("decide_registration", time.Now(), &err)

	var dto RegistrationDTO
	err = e.onRegistration(ctx, registrationID, []string{managerNRIC}, func(r uow.Repos, p *project.Project, reg *registration.Registration) error {
		if err := requireOwner(ctx, r, managerNRIC, p); err != nil {
			return err
		}
		if reg.Status != registration.StatusPending {
			return reg.Decide(approve, e.clock())
		}
		if approve {
			if err := p.ReserveOfficerSlot(reg.OfficerNRIC); err != nil {
				return err
			}
		}
		if err := reg.Decide(approve, e.clock()); err != nil {
			return err
		}
		if err := r.Registrations.Save(ctx, reg); err != nil {
			return err
		}
		if approve {
			if err := r.Projects.Save(ctx, p); err != nil {
				return err
			}
		}
		dto = toRegistrationDTO(reg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if approve {
		e.invalidate(ctx)
	}
	e.log.Info("officer registration decided", zap.String("registration_id", registrationID), zap.String("project", dto.ProjectName), zap.String("status", dto.Status))
	return &dto, nil
}

// RevokeOfficer ends an APPROVED assignment and returns the slot.
func (e *Engine) RevokeOfficer(ctx context.Context, managerNRIC, registrationID string) (_ *RegistrationDTO, err error) {
	defer e.observe("revoke_officer", time.Now(), &err)

	var dto RegistrationDTO
	err = e.onRegistration(ctx, registrationID, []string{managerNRIC}, func(r uow.Repos, p *project.Project, reg *registration.Registration) error {
		if err := requireOwner(ctx, r, managerNRIC, p); err != nil {
			return err
		}
		if err := reg.Revoke(e.clock()); err != nil {
			return err
		}
		p.ReleaseOfficerSlot(reg.OfficerNRIC)
		if err := r.Registrations.Save(ctx, reg); err != nil {
			return err
		}
		if err := r.Projects.Save(ctx, p); err != nil {
			return err
		}
		dto = toRegistrationDTO(reg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.invalidate(ctx)
	e.log.Info("officer revoked", zap.String("registration_id", registrationID), zap.String("project", dto.ProjectName), zap.String("officer", dto.OfficerNRIC))
	return &dto, nil
}

// ListRegistrations is open to the project's manager.
func (e *Engine) ListRegistrations(ctx context.Context, managerNRIC, projectName string) (_ []RegistrationDTO, err error) {
	defer e.observe("list_registrations", time.Now(), &err)

	var out []RegistrationDTO
	err = e.read(ctx, func(r uow.Repos) error {
		p, err := r.Projects.GetByName(ctx, projectName)
		if err != nil {
			return err
		}
		if err := requireOwner(ctx, r, managerNRIC, p); err != nil {
			return err
		}
		regs, err := r.Registrations.ListByProject(ctx, projectName)
		if err != nil {
			return err
		}
		out = make([]RegistrationDTO, 0, len(regs))
		for i := range regs {
			out = append(out, toRegistrationDTO(&regs[i]))
		}
		return nil
	})
	return out, err
}

// requireAssigned checks that nric is an officer whose APPROVED
// registration is for projectName.
func requireAssigned(ctx context.Context, r uow.Repos, nric, projectName string) error {
	who, err := actor(ctx, r, nric)
	if err != nil {
		return err
	}
	if !who.IsOfficer() {
		return errs.Reason(errs.ErrUnauthorized, "%s is not an officer", nric)
	}
	reg, err := r.Registrations.GetHeldByOfficer(ctx, nric)
	if errors.Is(err, errs.ErrNotFound) {
		return errs.Reason(errs.ErrUnauthorized, "%s is not assigned to any project", nric)
	}
	if err != nil {
		return err
	}
	if reg.Status != registration.StatusApproved || reg.ProjectName != projectName {
		return errs.Reason(errs.ErrUnauthorized, "%s is not the approved officer of %s", nric, projectName)
	}
	return nil
}
