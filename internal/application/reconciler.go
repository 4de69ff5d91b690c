package application

import (
	"context"
	"fmt"

	"github.com/OliveiraNt/pubsub-bootstrap/internal/domain"
	"github.com/OliveiraNt/pubsub-bootstrap/internal/utils"
)

// Reconciler drives a topology definition to existence through a resource client.
type Reconciler struct {
	client domain.ResourceClient
}

// NewReconciler creates a reconciler bound to client.
func NewReconciler(client domain.ResourceClient) *Reconciler {
	return &Reconciler{client: client}
}

// Reconcile creates every topic and then every subscription of def, in
// definition order, one call at a time. Resources that already exist count as
// success. The first other error stops the run: the returned report ends with
// that failed outcome and nothing after it is attempted. Resources created
// before the failure are left in place.
func (r *Reconciler) Reconcile(ctx context.Context, def domain.Definition) *domain.Report {
	report := &domain.Report{Definition: def.Name}

	for _, t := range def.Topics {
		o := r.createTopic(ctx, t)
		report.Add(o)
		if !o.OK() {
			logSummary(report)
			return report
		}
	}

	for _, s := range def.Subscriptions {
		o := r.createSubscription(ctx, s)
		report.Add(o)
		if !o.OK() {
			logSummary(report)
			return report
		}
	}

	logSummary(report)
	return report
}

func (r *Reconciler) createTopic(ctx context.Context, t domain.Topic) domain.Outcome {
	o := domain.Outcome{Kind: domain.KindTopic, Project: t.Project, Name: t.Name}
	log := utils.Logger.With("kind", o.Kind, "project", t.Project, "name", t.Name)

	res, err := r.create(ctx, func() (domain.CreateResult, error) {
		return r.client.CreateTopic(ctx, t.Project, t.Name)
	})
	classify(&o, res, err)

	switch o.Status {
	case domain.StatusCreated:
		log.Info("topic created")
	case domain.StatusAlreadyExists:
		log.Info("topic already exists")
	default:
		log.Error("create topic failed", "err", o.Err)
	}
	return o
}

func (r *Reconciler) createSubscription(ctx context.Context, s domain.Subscription) domain.Outcome {
	o := domain.Outcome{Kind: domain.KindSubscription, Project: s.Project, Name: s.Name}
	log := utils.Logger.With("kind", o.Kind, "project", s.Project, "name", s.Name, "topic", s.Topic.Name)
	if s.Filtered() {
		log = log.With("filter", s.Filter)
	}

	res, err := r.create(ctx, func() (domain.CreateResult, error) {
		return r.client.CreateSubscription(ctx, s.Project, s.Name, s.Topic.Name, s.Filter)
	})
	classify(&o, res, err)

	switch o.Status {
	case domain.StatusCreated:
		log.Info("subscription created")
	case domain.StatusAlreadyExists:
		log.Info("subscription already exists")
	default:
		log.Error("create subscription failed", "err", o.Err)
	}
	return o
}

// create refuses to issue a call once ctx is done.
func (r *Reconciler) create(ctx context.Context, call func() (domain.CreateResult, error)) (domain.CreateResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.Created, err
	}
	return call()
}

func classify(o *domain.Outcome, res domain.CreateResult, err error) {
	if err != nil {
		o.Status = domain.StatusFailed
		o.Err = err
		return
	}
	switch res {
	case domain.Created:
		o.Status = domain.StatusCreated
	case domain.AlreadyExists:
		o.Status = domain.StatusAlreadyExists
	default:
		o.Status = domain.StatusFailed
		o.Err = fmt.Errorf("unexpected create result: %s", res)
	}
}

func logSummary(report *domain.Report) {
	utils.Logger.Info("reconciliation finished",
		"definition", report.Definition,
		"created", report.Count(domain.StatusCreated),
		"existing", report.Count(domain.StatusAlreadyExists),
		"failed", report.Count(domain.StatusFailed),
	)
}
