package mode

import "fmt"

// ModalKind is the tag of a Modal.
type ModalKind int

const (
	ModalNone ModalKind = iota
	ModalMenu
	ModalDialog
	ModalSelect
	ModalConfirm
	ModalDiff
)

func (k ModalKind) String() string {
	switch k {
	case ModalMenu:
		return "menu"
	case ModalDialog:
		return "dialog"
	case ModalSelect:
		return "select"
	case ModalConfirm:
		return "confirm"
	case ModalDiff:
		return "diff"
	default:
		return "none"
	}
}

// Purpose says what a dialog, select or confirm is for.
type Purpose int

const (
	PurposeNone Purpose = iota
	PurposeNewBranch
	PurposeNewRemoteBranch
	PurposeCommit
	PurposeCommitUnstaged
	PurposeRemoteSelect
	PurposeDiscardFile
	PurposeDiscardAll
	PurposeAddRepo
	PurposeRemoveRepo
)

var purposeNames = map[Purpose]string{
	PurposeNewBranch:       "new-branch",
	PurposeNewRemoteBranch: "new-remote-branch",
	PurposeCommit:          "commit",
	PurposeCommitUnstaged:  "commit-unstaged",
	PurposeRemoteSelect:    "remote-select",
	PurposeDiscardFile:     "discard-file",
	PurposeDiscardAll:      "discard-all",
	PurposeAddRepo:         "add-repo",
	PurposeRemoveRepo:      "remove-repo",
}

func (p Purpose) String() string {
	if s, ok := purposeNames[p]; ok {
		return s
	}
	return "none"
}

// Modal is the single visible overlay. Menu and Diff carry no purpose.
type Modal struct {
	Kind    ModalKind
	Purpose Purpose
}

func (m Modal) String() string {
	if m.Purpose == PurposeNone {
		return m.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", m.Kind, m.Purpose)
}

// IsNone reports whether no modal is open.
func (m Modal) IsNone() bool { return m.Kind == ModalNone }

func NoModal() Modal              { return Modal{} }
func MenuModal() Modal            { return Modal{Kind: ModalMenu} }
func DiffModal() Modal            { return Modal{Kind: ModalDiff} }
func DialogModal(p Purpose) Modal { return Modal{Kind: ModalDialog, Purpose: p} }
func SelectModal(p Purpose) Modal { return Modal{Kind: ModalSelect, Purpose: p} }
func ConfirmModal(p Purpose) Modal {
	return Modal{Kind: ModalConfirm, Purpose: p}
}

// Coordinator tracks which modal, if any, is open. At most one modal is
// open at a time and base navigation is active only while none is.
type Coordinator struct {
	active Modal
}

// Active returns the open modal.
func (c Coordinator) Active() Modal { return c.active }

// Is reports whether m is the open modal.
func (c Coordinator) Is(m Modal) bool { return c.active == m }

// Navigating reports whether the base list owns the keyboard.
func (c Coordinator) Navigating() bool { return c.active.IsNone() }

// CanExit reports whether Escape at the base list may leave the view.
func (c Coordinator) CanExit() bool { return c.active.IsNone() }

// Open shows m if nothing else is open. The returned bool says whether it
// was honored.
func (c Coordinator) Open(m Modal) (Coordinator, bool) {
	if m.IsNone() || !c.active.IsNone() {
		return c, false
	}
	c.active = m
	return c, true
}

// Close hides m if it is the open modal; any other modal is left alone.
func (c Coordinator) Close(m Modal) Coordinator {
	if c.active == m {
		c.active = Modal{}
	}
	return c
}

// Reset closes whatever is open, as when the view is torn down.
func (c Coordinator) Reset() Coordinator {
	c.active = Modal{}
	return c
}
