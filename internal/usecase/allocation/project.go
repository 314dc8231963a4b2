package allocation

import (
	"context"
	"errors"
	"strings"
	"time"

	"flat-allocation/internal/domain/eligibility"
	"flat-allocation/internal/domain/errs"
	"flat-allocation/internal/domain/flat"
	"flat-allocation/internal/domain/person"
	"flat-allocation/internal/domain/project"
	"flat-allocation/internal/domain/registration"
	"flat-allocation/internal/domain/uow"

	"go.uber.org/zap"
)

// RegisterPerson stores a new person keyed by NRIC.
func (e *Engine) RegisterPerson(ctx context.Context, in RegisterPersonInput) (_ *PersonDTO, err error) {
	defer e.observe("register_person", time.Now(), &err)

	in.NRIC = strings.ToUpper(strings.TrimSpace(in.NRIC))
	in.Name = strings.TrimSpace(in.Name)
	switch {
	case !person.ValidNRIC(in.NRIC):
		return nil, errs.Reason(errs.ErrInvalidInput, "malformed NRIC %q", in.NRIC)
	case in.Name == "":
		return nil, errs.Reason(errs.ErrInvalidInput, "name is required")
	case in.Age <= 0:
		return nil, errs.Reason(errs.ErrInvalidInput, "age must be positive")
	case in.MaritalStatus != person.Single && in.MaritalStatus != person.Married:
		return nil, errs.Reason(errs.ErrInvalidInput, "unknown marital status %q", in.MaritalStatus)
	case in.Role != person.RoleApplicant && in.Role != person.RoleOfficer && in.Role != person.RoleManager:
		return nil, errs.Reason(errs.ErrInvalidInput, "unknown role %q", in.Role)
	}

	unlock := e.lock("", in.NRIC)
	defer unlock()

	p := &person.Person{
		NRIC:          in.NRIC,
		Name:          in.Name,
		Age:           in.Age,
		MaritalStatus: in.MaritalStatus,
		Role:          in.Role,
	}
	err = e.uow.WithinTx(ctx, func(r uow.Repos) error {
		_, err := r.People.GetByNRIC(ctx, in.NRIC)
		switch {
		case err == nil:
			return errs.Reason(errs.ErrInvalidInput, "NRIC %s is already registered", in.NRIC)
		case !errors.Is(err, errs.ErrNotFound):
			return err
		}
		return r.People.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	e.log.Info("person registered", zap.String("nric", p.NRIC), zap.String("role", string(p.Role)))
	return toPersonDTO(p), nil
}

func validateProject(in ProjectInput) error {
	switch {
	case in.OpenDate.IsZero() || in.CloseDate.IsZero():
		return errs.Reason(errs.ErrInvalidInput, "open and close dates are required")
	case in.CloseDate.Before(in.OpenDate):
		return errs.Reason(errs.ErrInvalidInput, "close date is before open date")
	case in.TwoRoomUnits < 0 || in.ThreeRoomUnits < 0:
		return errs.Reason(errs.ErrInvalidInput, "unit counts must not be negative")
	case in.TwoRoomPrice < 0 || in.ThreeRoomPrice < 0:
		return errs.Reason(errs.ErrInvalidInput, "prices must not be negative")
	case in.OfficerSlots < 0 || in.OfficerSlots > project.MaxOfficerSlots:
		return errs.Reason(errs.ErrInvalidInput, "officer slots must be within 0..%d", project.MaxOfficerSlots)
	}
	return nil
}

func applyProjectInput(p *project.Project, in ProjectInput) {
	p.Neighborhood = strings.TrimSpace(in.Neighborhood)
	p.OpenDate = in.OpenDate.UTC()
	p.CloseDate = in.CloseDate.UTC()
	p.Visible = in.Visible
	p.TwoRoomUnits = in.TwoRoomUnits
	p.ThreeRoomUnits = in.ThreeRoomUnits
	p.TwoRoomPrice = in.TwoRoomPrice
	p.ThreeRoomPrice = in.ThreeRoomPrice
}

// managerFree fails with ErrManagerBusy when another project of the manager
// shares a day with p.
func managerFree(ctx context.Context, r uow.Repos, p *project.Project) error {
	owned, err := r.Projects.ListByManager(ctx, p.ManagerNRIC)
	if err != nil {
		return err
	}
	for i := range owned {
		if owned[i].Name != p.Name && owned[i].Overlaps(p) {
			return errs.Reason(errs.ErrManagerBusy, "%s already handles %s in that period", p.ManagerNRIC, owned[i].Name)
		}
	}
	return nil
}

func requireManager(ctx context.Context, r uow.Repos, nric string) (*person.Person, error) {
	m, err := actor(ctx, r, nric)
	if err != nil {
		return nil, err
	}
	if !m.IsManager() {
		return nil, errs.Reason(errs.ErrUnauthorized, "%s is not a manager", nric)
	}
	return m, nil
}

// requireOwner checks that nric is the manager in charge of p.
func requireOwner(ctx context.Context, r uow.Repos, nric string, p *project.Project) error {
	if _, err := requireManager(ctx, r, nric); err != nil {
		return err
	}
	if p.ManagerNRIC != nric {
		return errs.Reason(errs.ErrUnauthorized, "%s does not manage %s", nric, p.Name)
	}
	return nil
}

// CreateProject opens a new project owned by the calling manager.
func (e *Engine) CreateProject(ctx context.Context, managerNRIC string, in ProjectInput) (_ *ProjectDTO, err error) {
	defer e.observe("create_project", time.Now(), &err)

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, errs.Reason(errs.ErrInvalidInput, "project name is required")
	}
	if err := validateProject(in); err != nil {
		return nil, err
	}

	unlock := e.lock(in.Name, managerNRIC)
	defer unlock()

	p := &project.Project{
		Name:           in.Name,
		OfficerSlots:   in.OfficerSlots,
		ManagerNRIC:    managerNRIC,
		OfficerNRICs:   []string{},
		ApplicantNRICs: []string{},
	}
	applyProjectInput(p, in)

	err = e.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := requireManager(ctx, r, managerNRIC); err != nil {
			return err
		}
		_, err := r.Projects.GetByName(ctx, in.Name)
		switch {
		case err == nil:
			return errs.Reason(errs.ErrInvalidInput, "project %s already exists", in.Name)
		case !errors.Is(err, errs.ErrNotFound):
			return err
		}
		if err := managerFree(ctx, r, p); err != nil {
			return err
		}
		return r.Projects.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	e.invalidate(ctx)
	e.log.Info("project created", zap.String("project", p.Name), zap.String("manager", managerNRIC))
	dto := toProjectDTO(p, flat.All)
	return &dto, nil
}

// UpdateProject replaces the editable fields. OfficerSlots is the total
// capacity; officers already attached keep their slots.
func (e *Engine) UpdateProject(ctx context.Context, managerNRIC, name string, in ProjectInput) (_ *ProjectDTO, err error) {
	defer e.observe("update_project", time.Now(), &err)

	if err := validateProject(in); err != nil {
		return nil, err
	}

	var dto ProjectDTO
	err = e.inProject(ctx, name, []string{managerNRIC}, func(r uow.Repos, p *project.Project) error {
		if err := requireOwner(ctx, r, managerNRIC, p); err != nil {
			return err
		}
		if in.OfficerSlots < len(p.OfficerNRICs) {
			return errs.Reason(errs.ErrInvalidInput, "%d officers already assigned to %s", len(p.OfficerNRICs), name)
		}
		applyProjectInput(p, in)
		p.OfficerSlots = in.OfficerSlots - len(p.OfficerNRICs)
		if err := managerFree(ctx, r, p); err != nil {
			return err
		}
		if err := r.Projects.Save(ctx, p); err != nil {
			return err
		}
		dto = toProjectDTO(p, flat.All)
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.invalidate(ctx)
	e.log.Info("project updated", zap.String("project", name))
	return &dto, nil
}

func (e *Engine) SetVisibility(ctx context.Context, managerNRIC, name string, visible bool) (_ *ProjectDTO, err error) {
	defer e.observe("set_visibility", time.Now(), &err)

	var dto ProjectDTO
	err = e.inProject(ctx, name, []string{managerNRIC}, func(r uow.Repos, p *project.Project) error {
		if err := requireOwner(ctx, r, managerNRIC, p); err != nil {
			return err
		}
		p.Visible = visible
		if err := r.Projects.Save(ctx, p); err != nil {
			return err
		}
		dto = toProjectDTO(p, flat.All)
		return nil
	})
	if err != nil {
		return nil, err
	}
	e.invalidate(ctx)
	e.log.Info("project visibility changed", zap.String("project", name), zap.Bool("visible", visible))
	return &dto, nil
}

// DeleteProject removes a project nobody is attached to. Registrations still
// waiting for a decision are rejected with it.
func (e *Engine) DeleteProject(ctx context.Context, managerNRIC, name string) (err error) {
	defer e.observe("delete_project", time.Now(), &err)

	err = e.inProject(ctx, name, []string{managerNRIC}, func(r uow.Repos, p *project.Project) error {
		if err := requireOwner(ctx, r, managerNRIC, p); err != nil {
			return err
		}
		if p.InUse() {
			return errs.Reason(errs.ErrProjectInUse, "%s has %d officers and %d applicants", name, len(p.OfficerNRICs), len(p.ApplicantNRICs))
		}
		// pending registrations must not outlive the project
		regs, err := r.Registrations.ListByProject(ctx, name)
		if err != nil {
			return err
		}
		now := e.clock()
		for i := range regs {
			if regs[i].Status != registration.StatusPending {
				continue
			}
			if err := regs[i].Decide(false, now); err != nil {
				return err
			}
			if err := r.Registrations.Save(ctx, &regs[i]); err != nil {
				return err
			}
		}
		return r.Projects.DeleteByName(ctx, name)
	})
	if err != nil {
		return err
	}
	e.invalidate(ctx)
	e.log.Info("project deleted", zap.String("project", name))
	return nil
}

// ListProjects returns what viewerNRIC may see. Managers see every project
// with every flat type. Everyone else sees visible projects open today,
// showing only the flat types they qualify for, plus any project they
// administer as officer.
func (e *Engine) ListProjects(ctx context.Context, viewerNRIC string) (_ []ProjectDTO, err error) {
	defer e.observe("list_projects", time.Now(), &err)

	var viewer *person.Person
	var all []project.Project
	var gen int64
	cached := false
	if e.cache != nil {
		all, gen, cached = e.cache.GetAll(ctx)
	}
	err = e.read(ctx, func(r uow.Repos) error {
		v, err := actor(ctx, r, viewerNRIC)
		if err != nil {
			return err
		}
		viewer = v
		if cached {
			return nil
		}
		all, err = r.Projects.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if e.cache != nil && !cached {
		e.cache.SetAll(ctx, gen, all)
	}

	now := e.clock()
	out := make([]ProjectDTO, 0, len(all))
	for i := range all {
		p := &all[i]
		switch {
		case viewer.IsManager():
			out = append(out, toProjectDTO(p, flat.All))
		case p.HasOfficer(viewer.NRIC):
			out = append(out, toProjectDTO(p, flat.All))
		case eligibility.ProjectOpen(p, now):
			types := eligibility.AllowedFlatTypes(viewer.Profile())
			if len(types) > 0 {
				out = append(out, toProjectDTO(p, types))
			}
		}
	}
	return out, nil
}
