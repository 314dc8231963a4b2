// Package allocation runs the flat allocation workflow: applications,
// officer assignments, bookings and invoices. Every mutating call holds the
// project lock, then the person locks, then a project-row transaction.
package allocation

import (
	"context"
	"errors"
	"slices"
	"time"

	"flat-allocation/internal/domain/errs"
	"flat-allocation/internal/domain/person"
	"flat-allocation/internal/domain/project"
	"flat-allocation/internal/domain/uow"
	"flat-allocation/internal/infrastructure/metrics"
	"flat-allocation/pkg/keylock"

	"go.uber.org/zap"
)

type Engine struct {
	uow   uow.UnitOfWork
	locks *keylock.Locker
	cache project.Cache
	log   *zap.Logger
	now   func() time.Time
}

type Option func(*Engine)

// WithCache serves ListProjects from c. Nil disables caching.
func WithCache(c project.Cache) Option { return func(e *Engine) { e.cache = c } }

func WithLogger(l *zap.Logger) Option { return func(e *Engine) { e.log = l } }

func WithClock(now func() time.Time) Option { return func(e *Engine) { e.now = now } }

// WithLocker shares one locker between engines over the same store.
func WithLocker(l *keylock.Locker) Option { return func(e *Engine) { e.locks = l } }

func NewEngine(tx uow.UnitOfWork, opts ...Option) *Engine {
	e := &Engine{
		uow:   tx,
		locks: keylock.New(),
		log:   zap.NewNop(),
		now:   time.Now,
	}
	for _, o := range opts {
		o(e)
	}
	if e.log == nil {
		e.log = zap.NewNop()
	}
	return e
}

func (e *Engine) clock() time.Time { return e.now().UTC() }

// lock takes project:<name> and then the person keys in sorted order.
func (e *Engine) lock(projectName string, nrics ...string) func() {
	people := slices.Clone(nrics)
	slices.Sort(people)
	keys := make([]string, 0, len(people)+1)
	if projectName != "" {
		keys = append(keys, "project:"+projectName)
	}
	for _, n := range people {
		keys = append(keys, "person:"+n)
	}
	return e.locks.LockAll(keys...)
}

// inProject runs fn under the project and person locks, inside a
// transaction that holds the project row.
func (e *Engine) inProject(ctx context.Context, name string, nrics []string, fn func(r uow.Repos, p *project.Project) error) error {
	unlock := e.lock(name, nrics...)
	defer unlock()
	return e.uow.WithinProjectTx(ctx, name, fn)
}

// read runs fn in a transaction without taking any lock.
func (e *Engine) read(ctx context.Context, fn func(r uow.Repos) error) error {
	return e.uow.WithinTx(ctx, fn)
}

// actor loads the person behind nric; an unknown actor is not entitled to
// anything.
func actor(ctx context.Context, r uow.Repos, nric string) (*person.Person, error) {
	p, err := r.People.GetByNRIC(ctx, nric)
	if errors.Is(err, errs.ErrNotFound) {
		return nil, errs.Reason(errs.ErrUnauthorized, "unknown actor %s", nric)
	}
	return p, err
}

func (e *Engine) invalidate(ctx context.Context) {
	if e.cache != nil {
		e.cache.Invalidate(ctx)
	}
}

// observe is deferred by every public operation with its named error.
func (e *Engine) observe(op string, start time.Time, err *error) {
	metrics.Observe(op, start, *err)
	if *err != nil {
		e.log.Debug("operation rejected", zap.String("op", op), zap.String("kind", errs.Kind(*err)), zap.Error(*err))
	}
}
