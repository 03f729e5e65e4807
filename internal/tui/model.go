// Package tui is a terminal front end for the ledger, built on bubbletea.
//
// Keys:
//
//	up/down, k/j   move the cursor over the friend list
//	enter, space   select or deselect the friend under the cursor
//	a              open or close the add-friend panel
//	tab, shift+tab move between form fields
//	left/right     change who paid (on the payer field)
//	enter          submit the focused form
//	esc            close the focused form
//	q, ctrl+c      quit
package tui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmynk/splitneat/internal/forms"
	"github.com/mmynk/splitneat/internal/ledger"
	"github.com/mmynk/splitneat/internal/models"
	"github.com/mmynk/splitneat/internal/view"
)

// Focus is the part of the screen receiving keys.
type Focus int

const (
	// FocusList moves the cursor and selects friends.
	FocusList Focus = iota
	// FocusAddFriend edits the add-friend panel.
	FocusAddFriend
	// FocusSplitBill edits the split-bill form of the selected friend.
	FocusSplitBill
)

// Fields of the add-friend form.
const (
	addName = iota
	addImage
	addFieldCount
)

// Fields of the split-bill form. splitPayer is not a text input.
const (
	splitBill = iota
	splitPaidByUser
	splitPayer
	splitFieldCount
)

// Model is the bubbletea model of the whole screen.
type Model struct {
	ctx    context.Context
	ledger *ledger.Ledger
	styles Styles

	snap   ledger.Snapshot
	cursor int
	focus  Focus
	field  int

	addInputs   [2]textinput.Model
	splitInputs [2]textinput.Model
	payer       models.Payer

	err error
}

// New creates the model and loads the first snapshot.
func New(ctx context.Context, l *ledger.Ledger) (Model, error) {
	m := Model{
		ctx:    ctx,
		ledger: l,
		styles: DefaultStyles(),
		payer:  models.PayerUser,
	}

	m.addInputs[addName] = newInput("Friend name")
	m.addInputs[addImage] = newInput("https://i.pravatar.cc/150")
	m.splitInputs[splitBill] = newInput("0")
	m.splitInputs[splitPaidByUser] = newInput("0")

	if err := m.refresh(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "│ "
	ti.CharLimit = 256
	ti.Width = 40
	return ti
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Focus returns the part of the screen receiving keys.
func (m Model) Focus() Focus {
	return m.focus
}

// Snapshot returns the ledger state the model last rendered.
func (m Model) Snapshot() ledger.Snapshot {
	return m.snap
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.focus {
	case FocusAddFriend:
		return m.updateAddFriend(key)
	case FocusSplitBill:
		return m.updateSplitBill(key)
	default:
		return m.updateList(key)
	}
}

func (m Model) updateList(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.snap.Friends)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.snap.Friends) == 0 {
			break
		}
		m.selectFriend(m.snap.Friends[m.cursor].ID)
		if m.snap.Selected != nil {
			m.focusForm(FocusSplitBill)
		}
	case "a":
		m.toggleAddFriend()
	case "tab":
		switch {
		case m.snap.ShowAddFriend:
			m.focusForm(FocusAddFriend)
		case m.snap.Selected != nil:
			m.focusForm(FocusSplitBill)
		}
	}
	return m, nil
}

func (m Model) updateAddFriend(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.toggleAddFriend()
		return m, nil
	case "tab", "down":
		m.moveField(1, addFieldCount)
		return m, nil
	case "shift+tab", "up":
		m.moveField(-1, addFieldCount)
		return m, nil
	case "enter":
		m.submitAddFriend()
		return m, nil
	}

	var cmd tea.Cmd
	m.addInputs[m.field], cmd = m.addInputs[m.field].Update(key)
	return m, cmd
}

func (m Model) updateSplitBill(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		// Closing the form deselects the friend.
		if m.snap.Selected != nil {
			m.selectFriend(m.snap.Selected.ID)
		}
		m.focusList()
		return m, nil
	case "tab", "down":
		m.moveField(1, splitFieldCount)
		return m, nil
	case "shift+tab", "up":
		m.moveField(-1, splitFieldCount)
		return m, nil
	case "enter":
		m.submitSplitBill()
		return m, nil
	}

	if m.field == splitPayer {
		switch key.String() {
		case "left", "right", " ":
			m.payer = m.payer.Other()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.splitInputs[m.field], cmd = m.splitInputs[m.field].Update(key)
	return m, cmd
}

// SplitForm returns the split-bill form as currently typed.
func (m Model) SplitForm() forms.SplitBill {
	return forms.SplitBill{
		Bill:       m.splitInputs[splitBill].Value(),
		PaidByUser: m.splitInputs[splitPaidByUser].Value(),
		Payer:      m.payer,
	}
}

// AddFriendForm returns the add-friend form as currently typed.
func (m Model) AddFriendForm() forms.AddFriend {
	return forms.AddFriend{
		Name:  m.addInputs[addName].Value(),
		Image: m.addInputs[addImage].Value(),
	}
}

func (m *Model) submitAddFriend() {
	form := m.AddFriendForm()
	_, err := form.Submit(m.ctx, m.ledger)
	if errors.Is(err, forms.ErrRejected) {
		return
	}
	if err != nil {
		m.setError(err)
		return
	}

	m.resetAddFriend()
	m.refresh()
	m.focusList()
}

func (m *Model) submitSplitBill() {
	form := m.SplitForm()
	_, err := form.Submit(m.ctx, m.ledger)
	if errors.Is(err, forms.ErrRejected) {
		return
	}
	if err != nil && !errors.Is(err, ledger.ErrNoSelection) {
		m.setError(err)
		return
	}

	m.resetSplitBill()
	m.refresh()
	m.focusList()
}

func (m *Model) selectFriend(id int) {
	if err := m.ledger.SelectFriend(m.ctx, id); err != nil {
		m.setError(err)
		return
	}
	m.refresh()
}

func (m *Model) toggleAddFriend() {
	if open := m.ledger.ToggleAddFriendPanel(); open {
		m.refresh()
		m.focusForm(FocusAddFriend)
		return
	}
	m.resetAddFriend()
	m.refresh()
	m.focusList()
}

func (m *Model) refresh() error {
	snap, err := m.ledger.Snapshot(m.ctx)
	if err != nil {
		m.setError(err)
		return err
	}
	m.snap = snap
	m.err = nil
	if m.cursor >= len(snap.Friends) {
		m.cursor = max(len(snap.Friends)-1, 0)
	}
	return nil
}

func (m *Model) setError(err error) {
	slog.Error("Ledger operation failed", "error", err)
	m.err = err
}

func (m *Model) focusForm(f Focus) {
	m.blurAll()
	m.focus = f
	m.field = 0
	m.applyFieldFocus()
}

func (m *Model) focusList() {
	m.blurAll()
	m.focus = FocusList
	m.field = 0
}

func (m *Model) moveField(delta, count int) {
	m.field = (m.field + delta + count) % count
	m.applyFieldFocus()
}

func (m *Model) applyFieldFocus() {
	m.blurAll()
	switch m.focus {
	case FocusAddFriend:
		m.addInputs[m.field].Focus()
	case FocusSplitBill:
		if m.field < len(m.splitInputs) {
			m.splitInputs[m.field].Focus()
		}
	}
}

func (m *Model) blurAll() {
	for i := range m.addInputs {
		m.addInputs[i].Blur()
	}
	for i := range m.splitInputs {
		m.splitInputs[i].Blur()
	}
}

func (m *Model) resetAddFriend() {
	for i := range m.addInputs {
		m.addInputs[i].Reset()
	}
}

func (m *Model) resetSplitBill() {
	for i := range m.splitInputs {
		m.splitInputs[i].Reset()
	}
	m.payer = models.PayerUser
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("💰 SplitNeat"))
	b.WriteString("\n")

	for i, row := range view.FriendList(m.snap) {
		cursor := "  "
		if m.focus == FocusList && i == m.cursor {
			cursor = m.styles.Cursor.Render("> ")
		}

		name := m.styles.Name.Render(row.Name)
		if row.Selected {
			name = m.styles.Selected.Render(row.Name)
		}

		b.WriteString(cursor + name + "  " + m.styles.Tone(row.Tone).Render(row.Message))
		b.WriteString("  [" + row.ButtonLabel + "]\n")
	}

	summary := view.SummaryOf(m.snap)
	b.WriteString(m.styles.Tone(summary.Tone).Render(summary.Message))
	b.WriteString("\n")

	if m.snap.ShowAddFriend {
		b.WriteString(m.renderAddFriend())
		b.WriteString("\n")
	}
	b.WriteString("[a] " + view.AddFriendButtonLabel(m.snap.ShowAddFriend) + "\n")

	if m.snap.Selected != nil {
		b.WriteString(m.renderSplitBill(*m.snap.Selected))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.help()))
	return b.String()
}

func (m Model) renderAddFriend() string {
	var b strings.Builder
	b.WriteString(m.label("Friend Name", m.focus == FocusAddFriend && m.field == addName) + "\n")
	b.WriteString(m.addInputs[addName].View() + "\n")
	b.WriteString(m.label("Image URL", m.focus == FocusAddFriend && m.field == addImage) + "\n")
	b.WriteString(m.addInputs[addImage].View())
	return m.styles.Panel.Render(b.String())
}

func (m Model) renderSplitBill(friend models.Friend) string {
	labels := view.SplitBillFor(friend)
	focused := func(field int) bool { return m.focus == FocusSplitBill && m.field == field }

	payer := labels.UserOption
	if m.payer == models.PayerFriend {
		payer = labels.FriendOption
	}

	var b strings.Builder
	b.WriteString(m.styles.Heading.Render(labels.Heading) + "\n")
	b.WriteString(m.label("Bill value", focused(splitBill)) + "\n")
	b.WriteString(m.splitInputs[splitBill].View() + "\n")
	b.WriteString(m.label("Your expense", focused(splitPaidByUser)) + "\n")
	b.WriteString(m.splitInputs[splitPaidByUser].View() + "\n")
	b.WriteString(m.label(labels.FriendField, false) + "\n")
	b.WriteString("│ " + m.SplitForm().PaidByFriend() + "\n")
	b.WriteString(m.label("Who paid the bill?", focused(splitPayer)) + "\n")
	b.WriteString("◀ " + payer + " ▶")
	return m.styles.Panel.Render(b.String())
}

func (m Model) label(text string, focused bool) string {
	if focused {
		return m.styles.Focused.Render(text)
	}
	return m.styles.Label.Render(text)
}

func (m Model) help() string {
	switch m.focus {
	case FocusAddFriend:
		return "tab: next field • enter: add friend • esc: close"
	case FocusSplitBill:
		return "tab: next field • ←/→: who paid • enter: split bill • esc: deselect"
	default:
		return "↑/↓: move • enter: select • a: add friend • q: quit"
	}
}
