package issue

// ChildChoice is the caller's already-resolved answer to the "what happens
// to linked children" prompt. The core never presents UI; the orchestration
// layer collects the choice and passes it in.
type ChildChoice string

const (
	// ChoiceCascade applies the operation to the children as well.
	ChoiceCascade ChildChoice = "cascade"
	// ChoiceUnlink detaches the children and leaves them in place.
	ChoiceUnlink ChildChoice = "unlink"
	// ChoiceCancel aborts the operation.
	ChoiceCancel ChildChoice = "cancel"
)

// ChildHandling is the resolved plan for an archive or delete operation.
type ChildHandling struct {
	CascadeChildren bool
	UnlinkChildren  bool
	Abort           bool
}

// DecideChildHandling maps a child count and a caller choice to a handling
// plan. Issues without children never prompt, so the choice is ignored and
// the operation proceeds directly.
func DecideChildHandling(childCount int, choice ChildChoice) ChildHandling {
	if childCount == 0 {
		return ChildHandling{}
	}
	switch choice {
	case ChoiceCascade:
		return ChildHandling{CascadeChildren: true}
	case ChoiceUnlink:
		return ChildHandling{UnlinkChildren: true}
	default:
		return ChildHandling{Abort: true}
	}
}
