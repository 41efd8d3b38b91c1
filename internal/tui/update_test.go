package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stamptrail/stampbook/internal/api"
	"github.com/stamptrail/stampbook/internal/config"
	"github.com/stamptrail/stampbook/internal/model"
	"github.com/stamptrail/stampbook/internal/route"
	"github.com/stamptrail/stampbook/internal/session"
)

// memTokens is an in-memory session.TokenStore.
type memTokens struct {
	token string
}

func (s *memTokens) Load() (string, error)   { return s.token, nil }
func (s *memTokens) Save(token string) error { s.token = token; return nil }
func (s *memTokens) Clear() error            { s.token = ""; return nil }

func newTestModel(t *testing.T, token string) Model {
	t.Helper()

	cfg := config.DefaultConfig()
	sess := session.NewStore(&memTokens{token: token})
	sess.Initialize()
	client := api.NewClient("http://127.0.0.1:1", sess.Token)

	m := NewModel(cfg, sess, client)
	next, _ := m.Update(sessionInitializedMsg{})
	return next.(Model)
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func extractedRows() []model.Entry {
	return []model.Entry{
		{Country: "Japan", AirportName: "Narita", ArrivalDeparture: model.Arrival, Date: "01/02/2024"},
		{Country: "France", AirportName: "CDG", ArrivalDeparture: model.Departure, Date: "10/02/2024"},
	}
}

func TestStaleSaveResultReleasesSlot(t *testing.T) {
	m := newTestModel(t, "tok")
	require.Equal(t, route.PathHome, m.path)

	m = step(t, m, uploadResultMsg{generation: m.generation, rows: extractedRows()})
	require.Equal(t, 2, m.table.Len())
	require.True(t, m.gridFocus)

	m = step(t, m, keyPress('s'))
	require.True(t, m.table.Saving())
	saveGen := m.generation

	// Navigate away while the save is in flight.
	m = step(t, m, keyPress('H'))
	require.Equal(t, route.PathHistory, m.path)

	m = step(t, m, saveResultMsg{generation: saveGen, count: 2})
	assert.False(t, m.table.Saving(), "the slot is released when the request settles")
	assert.NotContains(t, m.message, "saved", "a stale result must not announce success")

	// A later save must still be possible.
	m = step(t, m, keyPress('b'))
	require.Equal(t, route.PathHome, m.path)
	m = step(t, m, keyPress('s'))
	assert.True(t, m.table.Saving())
	assert.Equal(t, "Saving...", m.message)
}

func TestSecondSaveRejectedWhilePending(t *testing.T) {
	m := newTestModel(t, "tok")
	m = step(t, m, uploadResultMsg{generation: m.generation, rows: extractedRows()})

	m = step(t, m, keyPress('s'))
	require.True(t, m.table.Saving())

	m = step(t, m, keyPress('s'))
	assert.True(t, m.table.Saving())
	assert.Equal(t, "Save already in progress...", m.message)
}

func TestStaleAuthResultClearsBusyWithoutLogin(t *testing.T) {
	m := newTestModel(t, "")
	require.Equal(t, route.PathRoot, m.path)

	m.path = route.PathLogin
	m.authBusy = true
	staleGen := m.generation

	m.navigate(route.PathRoot)

	m = step(t, m, authResultMsg{generation: staleGen, token: "tok"})
	assert.False(t, m.authBusy, "the submission settles even on another screen")
	assert.False(t, m.sess.IsAuthenticated(), "a stale token is never applied")
	assert.Equal(t, route.PathRoot, m.path)
}

func TestStaleUploadResultClearsBusyWithoutLoadingRows(t *testing.T) {
	m := newTestModel(t, "tok")

	m.uploading = true
	staleGen := m.generation
	m.navigate(route.PathHistory)

	m = step(t, m, uploadResultMsg{generation: staleGen, rows: extractedRows()})
	assert.False(t, m.uploading)
	assert.Zero(t, m.table.Len(), "stale rows never reach the grid")
}

func TestDelayedNavigationCancelledByNavigation(t *testing.T) {
	m := newTestModel(t, "")
	require.True(t, m.decision.ShowLoginCTA)

	next, cmd := m.Update(keyPress('l'))
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.ctaPressed)
	ctaGen := m.generation

	// Navigating to signup before the delay fires invalidates the pending
	// navigation.
	m = step(t, m, keyPress('s'))
	require.Equal(t, route.PathSignup, m.path)

	m = step(t, m, delayedNavMsg{generation: ctaGen, path: route.PathLogin})
	assert.Equal(t, route.PathSignup, m.path)

	m = step(t, m, delayedNavMsg{generation: m.generation, path: route.PathLogin})
	assert.Equal(t, route.PathLogin, m.path)
}
