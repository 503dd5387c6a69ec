package mode

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/twig/internal/dispatch"
	"github.com/zjrosen/twig/internal/log"
	"github.com/zjrosen/twig/internal/mode/shared"
	"github.com/zjrosen/twig/internal/nav"
	"github.com/zjrosen/twig/internal/records"
	"github.com/zjrosen/twig/internal/ui/menu"
	"github.com/zjrosen/twig/internal/ui/modal"
	"github.com/zjrosen/twig/internal/ui/picker"
	"github.com/zjrosen/twig/internal/ui/styles"
)

// ModalResult is what a finished modal hands back to its view. Done is
// false while the modal is still open.
type ModalResult struct {
	Done      bool
	Modal     Modal
	Submitted bool
	// Value is the dialog text or the chosen select option.
	Value string
	// Command is the menu command to run.
	Command string
}

// Base is the state every list view shares: the records on screen, the
// selection within them, and the one modal that may cover them. Views embed
// it and own a copy; nothing here is shared between views.
type Base struct {
	Modals    Coordinator
	Selection nav.Selection
	Records   records.View
	Width     int
	Height    int

	menu    menu.Model
	dialog  modal.Model
	choose  picker.Model
	confirm modal.Model
}

// SetRecords installs a rebuilt view of the same source, keeping the
// selection where it was when it still fits.
func (b *Base) SetRecords(v records.View) {
	b.Records = v
	b.Selection = nav.Clamp(b.Selection, v.Len())
}

// ReplaceRecords installs a view of a different source and clears the
// selection.
func (b *Base) ReplaceRecords(v records.View) {
	b.Records = v
	b.Selection = nav.None()
}

// Selected returns the selected record. The selection index is a record
// id, not a display position.
func (b Base) Selected() (records.Record, bool) {
	i, ok := b.Selection.Index()
	if !ok {
		return records.Record{}, false
	}
	return b.Records.Lookup(i)
}

// SetSize records the view size.
func (b *Base) SetSize(width, height int) {
	b.Width = width
	b.Height = height
	b.menu = b.menu.SetSize(width, height)
	b.dialog = b.dialog.SetSize(width, height)
	b.choose = b.choose.SetSize(width, height)
	b.confirm = b.confirm.SetSize(width, height)
}

// Resolve turns a key into an action and applies the parts every view
// handles the same way: moving the selection and opening the menu. Run and
// Exit are left to the caller.
func (b *Base) Resolve(msg tea.KeyMsg, table dispatch.Table, title string) dispatch.Action {
	act := dispatch.Resolve(msg, table, dispatch.State{
		Navigating: b.Modals.Navigating(),
		Selected:   !b.Selection.IsNone(),
		Length:     b.Records.Len(),
	})
	switch act.Kind {
	case dispatch.MovePrev:
		b.Selection = nav.MovePrev(b.Selection, b.Records.Len())
	case dispatch.MoveNext:
		b.Selection = nav.MoveNext(b.Selection, b.Records.Len())
	case dispatch.OpenMenu:
		b.OpenMenu(title, table)
	}
	return act
}

// Exit clears the selection and signals the app to leave the view.
func (b *Base) Exit() tea.Cmd {
	if !b.Modals.CanExit() {
		return nil
	}
	b.Selection = nav.None()
	return func() tea.Msg { return ExitMsg{} }
}

// Click selects the record under a left click while navigating.
func (b *Base) Click(msg tea.MouseMsg, list shared.List) bool {
	if !b.Modals.Navigating() && !b.Modals.Is(DiffModal()) {
		return false
	}
	id, ok := list.Clicked(msg, b.Records)
	if !ok {
		return false
	}
	b.Selection = nav.At(id)
	return true
}

func (b *Base) open(m Modal) bool {
	var ok bool
	b.Modals, ok = b.Modals.Open(m)
	if !ok {
		log.Debug(log.CatMode, "modal refused", "want", m, "active", b.Modals.Active())
	}
	return ok
}

// OpenMenu shows the command menu of table.
func (b *Base) OpenMenu(title string, table dispatch.Table) bool {
	if !b.open(MenuModal()) {
		return false
	}
	b.menu = menu.New(title, table, !b.Selection.IsNone()).SetSize(b.Width, b.Height)
	return true
}

// OpenDialog shows a text input for p.
func (b *Base) OpenDialog(p Purpose, cfg modal.Config) tea.Cmd {
	if !b.open(DialogModal(p)) {
		return nil
	}
	b.dialog = modal.New(cfg).SetSize(b.Width, b.Height)
	return b.dialog.Init()
}

// OpenSelect shows a list of options for p.
func (b *Base) OpenSelect(p Purpose, title string, options []picker.Option) bool {
	if !b.open(SelectModal(p)) {
		return false
	}
	b.choose = picker.New(title, options).SetSize(b.Width, b.Height)
	return true
}

// OpenConfirm asks a yes/no question for p.
func (b *Base) OpenConfirm(p Purpose, cfg modal.Config) bool {
	cfg.Confirm = true
	if !b.open(ConfirmModal(p)) {
		return false
	}
	b.confirm = modal.New(cfg).SetSize(b.Width, b.Height)
	return true
}

// OpenDiff marks the diff panel as the open modal. The view owns the panel.
func (b *Base) OpenDiff() bool { return b.open(DiffModal()) }

// CloseModal closes m if it is open.
func (b *Base) CloseModal(m Modal) { b.Modals = b.Modals.Close(m) }

// UpdateModal routes msg to the open menu, dialog, select or confirm. A
// modal that is submitted or cancelled closes itself before its result is
// returned, so the caller may open the next modal straight away.
func (b *Base) UpdateModal(msg tea.Msg) (ModalResult, tea.Cmd) {
	active := b.Modals.Active()
	finish := func(res ModalResult) (ModalResult, tea.Cmd) {
		b.Modals = b.Modals.Close(active)
		res.Done = true
		res.Modal = active
		return res, nil
	}

	switch active.Kind {
	case ModalMenu:
		var res menu.Result
		b.menu, res = b.menu.Update(msg)
		switch {
		case res.Chosen:
			return finish(ModalResult{Submitted: true, Command: res.Command})
		case res.Cancelled:
			return finish(ModalResult{})
		}
	case ModalSelect:
		var res picker.Result
		b.choose, res = b.choose.Update(msg)
		switch res.Outcome {
		case picker.Chosen:
			return finish(ModalResult{Submitted: true, Value: res.Option.Value})
		case picker.Cancelled:
			return finish(ModalResult{})
		}
	case ModalDialog, ModalConfirm:
		target := &b.dialog
		if active.Kind == ModalConfirm {
			target = &b.confirm
		}
		var res modal.Result
		var cmd tea.Cmd
		*target, res, cmd = target.Update(msg)
		switch res.Outcome {
		case modal.Submitted:
			return finish(ModalResult{Submitted: true, Value: res.Value})
		case modal.Cancelled:
			return finish(ModalResult{})
		}
		return ModalResult{}, cmd
	}
	return ModalResult{}, nil
}

// Overlay draws the open menu, dialog, select or confirm over bg.
func (b Base) Overlay(bg string) string {
	switch b.Modals.Active().Kind {
	case ModalMenu:
		return b.menu.Overlay(bg)
	case ModalDialog:
		return b.dialog.Overlay(bg)
	case ModalSelect:
		return b.choose.Overlay(bg)
	case ModalConfirm:
		return b.confirm.Overlay(bg)
	}
	return bg
}

// HelpBar renders the bindings of table as one line of "key desc" pairs.
func HelpBar(width int, bindings ...key.Binding) string {
	var parts []string
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, styles.HelpKeyStyle.Render(h.Key)+" "+styles.HelpDescStyle.Render(h.Desc))
	}
	line := strings.Join(parts, styles.HelpDescStyle.Render(" · "))
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}
