package board

import (
	"sync/atomic"

	"github.com/sleipnirhq/sleipnir/internal/domain/issue"
	"github.com/sleipnirhq/sleipnir/internal/domain/sprint"
)

// Engine is the one-shot recompute entry point. The guard suppresses
// nested rebuild triggers caused by the pass itself re-touching derived
// fields; the single logical caller never runs two rebuilds at once.
type Engine struct {
	rebuilding atomic.Bool
}

// Rebuild runs the full recomputation pass and returns the filtered view.
// A reentrant call is suppressed and returns ok=false with an empty view.
func (e *Engine) Rebuild(issues []*issue.Issue, sprints []*sprint.Sprint, params Params) (View, bool) {
	if !e.rebuilding.CompareAndSwap(false, true) {
		return View{}, false
	}
	defer e.rebuilding.Store(false)

	Refresh(issues, sprints)
	return Filter(issues, params), true
}
