package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitneat/internal/ledger"
	"github.com/mmynk/splitneat/internal/models"
	"github.com/mmynk/splitneat/internal/storage/memory"
)

func newTestModel(t *testing.T, opts ...ledger.Option) Model {
	t.Helper()

	l := ledger.New(memory.New(), opts...)
	require.NoError(t, l.Seed(context.Background(), models.SeedFriends()))

	m, err := New(context.Background(), l)
	require.NoError(t, err)
	return m
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()

	for _, k := range keys {
		updated, _ := m.Update(k)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok, "Update returned %T", updated)
	}
	return m
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	return press(t, m, runes(s))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func balanceOf(t *testing.T, m Model, id int) string {
	t.Helper()

	for _, f := range m.Snapshot().Friends {
		if f.ID == id {
			return f.Balance.String()
		}
	}
	t.Fatalf("friend %d not in snapshot", id)
	return ""
}

func TestModel_InitialView(t *testing.T) {
	m := newTestModel(t)

	require.Equal(t, FocusList, m.Focus())
	require.Len(t, m.Snapshot().Friends, 3)

	out := m.View()
	require.Contains(t, out, "You and Alice Johnson are even")
	require.Contains(t, out, "You owe Bob Smith $7")
	require.Contains(t, out, "Charlie Rose owes you $14")
	require.Contains(t, out, "➕ Add Friend")
	require.NotContains(t, out, "Split a bill with")
}

func TestModel_SplitUserPays(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, keyDown, keyEnter)
	require.Equal(t, FocusSplitBill, m.Focus())
	require.NotNil(t, m.Snapshot().Selected)
	require.Equal(t, 2, m.Snapshot().Selected.ID)
	require.Contains(t, m.View(), "Split a bill with Bob Smith")

	m = typeText(t, m, "100")
	m = press(t, m, keyTab)
	m = typeText(t, m, "40")
	require.Equal(t, "60", m.SplitForm().PaidByFriend())
	require.Contains(t, m.View(), "Bob Smith's expense")

	m = press(t, m, keyEnter)

	require.Equal(t, "53", balanceOf(t, m, 2))
	require.Nil(t, m.Snapshot().Selected)
	require.Equal(t, FocusList, m.Focus())
	require.Equal(t, "", m.SplitForm().Bill)
	require.Equal(t, models.PayerUser, m.SplitForm().Payer)
	require.Contains(t, m.View(), "Bob Smith owes you $53")
}

func TestModel_SplitFriendPays(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, keyDown, keyDown, keyEnter)
	m = typeText(t, m, "50")
	m = press(t, m, keyTab)
	m = typeText(t, m, "50")
	m = press(t, m, keyTab, keySpace)
	require.Equal(t, models.PayerFriend, m.SplitForm().Payer)

	m = press(t, m, keyEnter)

	require.Equal(t, "-36", balanceOf(t, m, 3))
	require.Contains(t, m.View(), "You owe Charlie Rose $36")
}

func TestModel_SplitRejectedKeepsInput(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, keyEnter)
	m = typeText(t, m, "100")
	m = press(t, m, keyTab)
	m = typeText(t, m, "120")
	m = press(t, m, keyEnter)

	require.Equal(t, "0", balanceOf(t, m, 1))
	require.NotNil(t, m.Snapshot().Selected)
	require.Equal(t, FocusSplitBill, m.Focus())
	require.Equal(t, "100", m.SplitForm().Bill)
	require.Equal(t, "120", m.SplitForm().PaidByUser)
}

func TestModel_EscDeselects(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, keyEnter)
	require.NotNil(t, m.Snapshot().Selected)

	m = press(t, m, keyEsc)
	require.Nil(t, m.Snapshot().Selected)
	require.Equal(t, FocusList, m.Focus())
}

func TestModel_ToggleSelection(t *testing.T) {
	m := newTestModel(t)

	for i := 0; i < 2; i++ {
		m = press(t, m, keyEnter)
		require.NotNil(t, m.Snapshot().Selected)
		require.Equal(t, 1, m.Snapshot().Selected.ID)

		m = press(t, m, keyEsc)
		require.Nil(t, m.Snapshot().Selected)
	}
}

func TestModel_AddFriend(t *testing.T) {
	m := newTestModel(t, ledger.WithIDSource(func() int { return 42 }))

	m = press(t, m, runes("a"))
	require.Equal(t, FocusAddFriend, m.Focus())
	require.True(t, m.Snapshot().ShowAddFriend)
	require.Contains(t, m.View(), "Close")

	m = typeText(t, m, "Dana")
	m = press(t, m, keyTab)
	m = typeText(t, m, "https://i.pravatar.cc/48")
	m = press(t, m, keyEnter)

	snap := m.Snapshot()
	require.Len(t, snap.Friends, 4)
	dana := snap.Friends[3]
	require.Equal(t, 42, dana.ID)
	require.Equal(t, "Dana", dana.Name)
	require.Equal(t, "https://i.pravatar.cc/48?=42", dana.Image)
	require.True(t, dana.Balance.IsZero())
	require.False(t, snap.ShowAddFriend)
	require.Equal(t, FocusList, m.Focus())
	require.Equal(t, "", m.AddFriendForm().Name)
	require.Contains(t, m.View(), "You and Dana are even")
}

func TestModel_AddFriendRejectsEmptyFields(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, runes("a"))
	m = typeText(t, m, "Dana")
	m = press(t, m, keyEnter)

	require.Len(t, m.Snapshot().Friends, 3)
	require.True(t, m.Snapshot().ShowAddFriend)
	require.Equal(t, FocusAddFriend, m.Focus())
	require.Equal(t, "Dana", m.AddFriendForm().Name)
}

func TestModel_ClosingAddPanelResetsInput(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, runes("a"))
	m = typeText(t, m, "Dana")
	m = press(t, m, keyEsc)

	require.False(t, m.Snapshot().ShowAddFriend)
	require.Equal(t, FocusList, m.Focus())
	require.Equal(t, "", m.AddFriendForm().Name)

	m = press(t, m, runes("a"))
	require.Equal(t, "", m.AddFriendForm().Name)
}

func TestModel_SelectingClosesAddPanel(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, runes("a"))
	require.True(t, m.Snapshot().ShowAddFriend)

	// Back to the list with the panel still open.
	m.focusList()
	m = press(t, m, keyEnter)
	require.False(t, m.Snapshot().ShowAddFriend)
	require.Equal(t, FocusSplitBill, m.Focus())
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)

	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		require.NotNil(t, cmd)
		require.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_HelpFollowsFocus(t *testing.T) {
	m := newTestModel(t)
	require.True(t, strings.Contains(m.View(), "a: add friend"))

	m = press(t, m, keyEnter)
	require.Contains(t, m.View(), "enter: split bill")
}
