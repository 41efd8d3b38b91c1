package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/stamptrail/stampbook/internal/api"
	"github.com/stamptrail/stampbook/internal/config"
	"github.com/stamptrail/stampbook/internal/grid"
	"github.com/stamptrail/stampbook/internal/history"
	"github.com/stamptrail/stampbook/internal/logger"
	"github.com/stamptrail/stampbook/internal/model"
	"github.com/stamptrail/stampbook/internal/route"
	"github.com/stamptrail/stampbook/internal/session"
)

// authField identifies the focused input on the login/signup screens
type authField int

const (
	fieldUsername authField = iota
	fieldPassword
)

// Model is the main TUI model
type Model struct {
	cfg    *config.Config
	sess   *session.Store
	client *api.Client

	// Routing
	path     string
	decision route.Decision
	// ctaPressed hides the welcome decoration the moment the login
	// call-to-action fires, before the delayed navigation lands.
	ctaPressed bool

	// generation stamps async commands; results from a previous screen
	// are discarded so a torn-down view is never mutated late.
	generation int

	// UI state
	width  int
	height int

	// Auth screens
	username textinput.Model
	password textinput.Model
	focus    authField
	authBusy bool

	// Home screen
	fileInput textinput.Model
	table     *grid.Grid
	gridFocus bool // false: file input, true: grid
	rowCursor int
	colCursor grid.Column
	editing   bool
	editInput textinput.Model
	uploading bool

	// History screen
	historyView    *history.View
	historyCursor  int
	historyLoading bool

	// Map screen
	locations  []model.MapEntry
	mapLoading bool

	message string
}

// NewModel creates the TUI model. Session restore happens in Init so the
// loading state is visible like any other screen.
func NewModel(cfg *config.Config, sess *session.Store, client *api.Client) Model {
	username := textinput.New()
	username.Placeholder = "Username"
	username.CharLimit = 64
	username.Width = 32

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 64
	password.Width = 32
	password.EchoMode = textinput.EchoPassword

	fileInput := textinput.New()
	fileInput.Placeholder = "Path to passport page (.jpg, .png, .pdf)..."
	fileInput.CharLimit = 256
	fileInput.Width = 50

	editInput := textinput.New()
	editInput.CharLimit = 256
	editInput.Width = 40

	m := Model{
		cfg:         cfg,
		sess:        sess,
		client:      client,
		path:        route.PathRoot,
		username:    username,
		password:    password,
		fileInput:   fileInput,
		editInput:   editInput,
		table:       grid.New(),
		historyView: &history.View{},
	}
	m.decision = route.Evaluate(m.path, sess.IsAuthenticated(), sess.Initialized())

	logger.Debug("TUI model initialized")
	return m
}

// navDelay returns the configured login navigation delay.
func (m Model) navDelay() time.Duration {
	if m.cfg.NavDelay <= 0 {
		return 300 * time.Millisecond
	}
	return time.Duration(m.cfg.NavDelay) * time.Millisecond
}

// navigate moves to a new path, reruns the guard and invalidates any
// in-flight async results for the previous screen.
func (m *Model) navigate(path string) {
	m.generation++
	m.path = path
	m.ctaPressed = false
	m.message = ""
	m.refreshGuard()
}

// refreshGuard recomputes the routing decision from current session state,
// following at most one redirect.
func (m *Model) refreshGuard() {
	m.decision = route.Evaluate(m.path, m.sess.IsAuthenticated(), m.sess.Initialized())
	if m.decision.RedirectTo != "" {
		m.path = m.decision.RedirectTo
		m.decision = route.Evaluate(m.path, m.sess.IsAuthenticated(), m.sess.Initialized())
	}
}

// currentRow returns the selected grid row, or nil when the grid is empty.
func (m *Model) currentRow() *model.Entry {
	if m.rowCursor < m.table.Len() {
		row, err := m.table.Row(m.rowCursor)
		if err == nil {
			return &row
		}
	}
	return nil
}

func (m *Model) resetAuthInputs() {
	m.username.SetValue("")
	m.password.SetValue("")
	m.focus = fieldUsername
	m.username.Focus()
	m.password.Blur()
}
