package apitype

import "fmt"

type ActionKind int

const (
	ActionOpen ActionKind = iota
	ActionOpenWith
	ActionReveal
	ActionCopyToClipboard
)

const PreviewApplicationId = "com.apple.Preview"

func (s ActionKind) String() string {
	switch s {
	case ActionOpen:
		return "Open"
	case ActionOpenWith:
		return "OpenWith"
	case ActionReveal:
		return "Reveal"
	case ActionCopyToClipboard:
		return "CopyToClipboard"
	}
	return fmt.Sprintf("ActionKind(%d)", int(s))
}

// Action is a user gesture on a single image. Only the constructors below
// produce valid values; the application id is set for ActionOpenWith only.
type Action struct {
	kind          ActionKind
	applicationId string
}

func OpenAction() Action {
	return Action{kind: ActionOpen}
}

func OpenWithAction(applicationId string) Action {
	return Action{kind: ActionOpenWith, applicationId: applicationId}
}

func OpenWithPreviewAction() Action {
	return OpenWithAction(PreviewApplicationId)
}

func RevealAction() Action {
	return Action{kind: ActionReveal}
}

func CopyToClipboardAction() Action {
	return Action{kind: ActionCopyToClipboard}
}

func (s Action) Kind() ActionKind {
	return s.kind
}

func (s Action) ApplicationId() string {
	return s.applicationId
}

func (s Action) String() string {
	if s.kind == ActionOpenWith {
		return "OpenWith{" + s.applicationId + "}"
	}
	return s.kind.String()
}
