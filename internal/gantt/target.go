package gantt

// DateTarget is a task whose planned dates can be edited: a phase or a work package.
// The interface is sealed, so a project can never be passed where dates are edited.
type DateTarget interface {
	TaskID() string
	Kind() TaskKind
	dateTarget()
}

// ProgressTarget is a task whose progress can be edited: a project, a phase or a work package.
type ProgressTarget interface {
	TaskID() string
	Kind() TaskKind
	progressTarget()
}

// ProjectTarget addresses a project. It accepts progress only.
type ProjectTarget struct{ ID string }

func (t ProjectTarget) TaskID() string  { return t.ID }
func (t ProjectTarget) Kind() TaskKind  { return KindProject }
func (t ProjectTarget) progressTarget() {}

// PhaseTarget addresses a phase.
type PhaseTarget struct{ ID string }

func (t PhaseTarget) TaskID() string  { return t.ID }
func (t PhaseTarget) Kind() TaskKind  { return KindPhase }
func (t PhaseTarget) dateTarget()     {}
func (t PhaseTarget) progressTarget() {}

// WorkPackageTarget addresses a work package.
type WorkPackageTarget struct{ ID string }

func (t WorkPackageTarget) TaskID() string  { return t.ID }
func (t WorkPackageTarget) Kind() TaskKind  { return KindWorkPackage }
func (t WorkPackageTarget) dateTarget()     {}
func (t WorkPackageTarget) progressTarget() {}

// NewDateTarget resolves a wire task kind to a DateTarget.
func NewDateTarget(kind TaskKind, id string) (DateTarget, error) {
	switch kind {
	case KindPhase:
		return PhaseTarget{ID: id}, nil
	case KindWorkPackage:
		return WorkPackageTarget{ID: id}, nil
	}
	return nil, ErrUnsupportedTaskKind
}

// NewProgressTarget resolves a wire task kind to a ProgressTarget.
func NewProgressTarget(kind TaskKind, id string) (ProgressTarget, error) {
	switch kind {
	case KindProject:
		return ProjectTarget{ID: id}, nil
	case KindPhase:
		return PhaseTarget{ID: id}, nil
	case KindWorkPackage:
		return WorkPackageTarget{ID: id}, nil
	}
	return nil, ErrUnsupportedTaskKind
}
