// Package session executes build sessions over the product dependency graph.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/swiftbuild/helper/internal/core/domain"
	"github.com/swiftbuild/helper/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Runner drives the build, test and install phases of one session.
type Runner struct {
	logger ports.Logger
	tracer ports.Tracer
	store  ports.RecordStore
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger, tracer ports.Tracer, store ports.RecordStore) *Runner {
	return &Runner{
		logger: logger,
		tracer: tracer,
		store:  store,
	}
}

// phase binds an action to the descriptor predicate gating it and the
// method executing it.
type phase struct {
	action  domain.Action
	applies func(ports.Descriptor, domain.HostTarget) bool
	run     func(ports.Descriptor, context.Context, domain.HostTarget) error
}

func phases() []phase {
	return []phase{
		{
			action:  domain.ActionBuild,
			applies: func(d ports.Descriptor, h domain.HostTarget) bool { return d.ShouldBuild(h) },
			run:     func(d ports.Descriptor, ctx context.Context, h domain.HostTarget) error { return d.Build(ctx, h) },
		},
		{
			action:  domain.ActionTest,
			applies: func(d ports.Descriptor, h domain.HostTarget) bool { return d.ShouldTest(h) },
			run:     func(d ports.Descriptor, ctx context.Context, h domain.HostTarget) error { return d.Test(ctx, h) },
		},
		{
			action:  domain.ActionInstall,
			applies: func(d ports.Descriptor, h domain.HostTarget) bool { return d.ShouldInstall(h) },
			run:     func(d ports.Descriptor, ctx context.Context, h domain.HostTarget) error { return d.Install(ctx, h) },
		},
	}
}

// Run validates the product graph and executes the session phases in
// dependency order. Upstream products that no descriptor covers are
// provided by the installed toolchain and participate in ordering only.
// The first failing phase aborts the session.
func (r *Runner) Run(ctx context.Context, sess *domain.Session, descriptors []ports.Descriptor) error {
	index := make(map[domain.InternedString]ports.Descriptor, len(descriptors))

	graph := domain.NewGraph()
	for _, desc := range descriptors {
		name := domain.NewInternedString(desc.Name())
		deps := make([]domain.InternedString, 0, len(desc.Dependencies()))
		for _, dep := range desc.Dependencies() {
			deps = append(deps, domain.NewInternedString(dep))
		}
		if err := graph.AddProduct(&domain.Product{Name: name, Dependencies: deps}); err != nil {
			return err
		}
		index[name] = desc
	}
	for _, desc := range descriptors {
		for _, dep := range desc.Dependencies() {
			interned := domain.NewInternedString(dep)
			if _, registered := index[interned]; !registered {
				graph.AddExternal(interned)
			}
		}
	}

	if err := graph.Validate(); err != nil {
		return err
	}

	levels := graph.Levels()
	jobs := sess.Jobs
	if jobs < 1 {
		jobs = 1
	}

	for _, ph := range phases() {
		if err := r.runPhase(ctx, sess, index, levels, ph, jobs); err != nil {
			return errors.Join(domain.ErrSessionFailed, err)
		}
	}

	return nil
}

// runPhase executes one phase level by level. Products within a level are
// independent and may run concurrently, bounded by jobs.
func (r *Runner) runPhase(
	ctx context.Context,
	sess *domain.Session,
	index map[domain.InternedString]ports.Descriptor,
	levels [][]domain.Product,
	ph phase,
	jobs int,
) error {
	for _, level := range levels {
		g, groupCtx := errgroup.WithContext(ctx)
		g.SetLimit(jobs)

		for _, product := range level {
			if product.External {
				r.logger.Debug(product.Name.String() + ": provided by installed toolchain")
				continue
			}
			desc := index[product.Name]
			if !ph.applies(desc, sess.Host) {
				continue
			}
			g.Go(func() error {
				return r.runAction(groupCtx, sess, desc, ph)
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runAction(ctx context.Context, sess *domain.Session, desc ports.Descriptor, ph phase) error {
	name := desc.Name()
	r.logger.Info(name + ": " + ph.action.String())

	_, span := r.tracer.Start(ctx, name+" "+ph.action.String())
	err := ph.run(desc, ctx, sess.Host)

	record := domain.Record{
		Product:     name,
		Action:      ph.action.String(),
		Fingerprint: sess.Fingerprint(),
		Success:     err == nil,
		Timestamp:   time.Now(),
	}
	if putErr := r.store.Put(record); putErr != nil {
		// The state file is advisory; a write failure never fails the build.
		r.logger.Error(putErr)
	}

	if err != nil {
		span.RecordError(err)
		return zerr.With(zerr.Wrap(err, ph.action.String()+" failed"), "product", name)
	}
	span.End()
	return nil
}
