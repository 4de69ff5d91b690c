package domain

import "fmt"

// ResourceKind distinguishes topics from subscriptions in outcomes.
type ResourceKind string

const (
	KindTopic        ResourceKind = "topic"
	KindSubscription ResourceKind = "subscription"
)

// CreateResult is the non-error result of a create call.
type CreateResult int

const (
	// Created means the resource did not exist and was created by this call.
	Created CreateResult = iota
	// AlreadyExists means the resource was present before the call.
	AlreadyExists
)

func (r CreateResult) String() string {
	switch r {
	case Created:
		return "created"
	case AlreadyExists:
		return "already exists"
	default:
		return fmt.Sprintf("CreateResult(%d)", int(r))
	}
}

// OutcomeStatus is the per-resource verdict recorded in a Report.
type OutcomeStatus string

const (
	StatusCreated       OutcomeStatus = "created"
	StatusAlreadyExists OutcomeStatus = "already-exists"
	StatusFailed        OutcomeStatus = "failed"
)

// Outcome records what happened to a single resource.
type Outcome struct {
	Kind    ResourceKind
	Project string
	Name    string
	Status  OutcomeStatus
	Err     error
}

// OK reports whether the outcome counts as success.
func (o Outcome) OK() bool {
	return o.Status != StatusFailed
}

// ResourceError identifies the resource whose creation failed.
type ResourceError struct {
	Kind    ResourceKind
	Project string
	Name    string
	Err     error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("create %s %q in project %q: %v", e.Kind, e.Name, e.Project, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// Report is the ordered list of outcomes of one reconciliation run.
type Report struct {
	Definition string
	Outcomes   []Outcome
}

// Add appends an outcome.
func (r *Report) Add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// AllOK is true when no outcome failed.
func (r *Report) AllOK() bool {
	for _, o := range r.Outcomes {
		if !o.OK() {
			return false
		}
	}
	return true
}

// Err returns the failure of the first failed outcome, or nil.
func (r *Report) Err() error {
	for _, o := range r.Outcomes {
		if o.OK() {
			continue
		}
		return &ResourceError{Kind: o.Kind, Project: o.Project, Name: o.Name, Err: o.Err}
	}
	return nil
}

// Count returns how many outcomes have the given status.
func (r *Report) Count(status OutcomeStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}
