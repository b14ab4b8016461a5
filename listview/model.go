package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/treelist/tree"
	"github.com/iw2rmb/treelist/view"
)

// Model is a Bubble Tea component that renders a view.State as a tree list
// and dispatches keys to it.
type Model struct {
	cfg   Config
	state *view.State
	log   logrus.FieldLogger

	mode         Mode
	err          error
	showGuides   bool
	showFullHelp bool

	width    int
	viewport viewport.Model
	help     help.Model

	lastVersion uint64
	lastMode    string
}

// New returns a list over model. A StructuralInconsistency from the first
// flatten is returned with a usable Model.
func New(model tree.Model, cfg Config) (Model, error) {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Glyphs.isZero() {
		cfg.Glyphs = UnicodeGlyphs()
	}
	if cfg.LabelMin <= 0 {
		cfg.LabelMin = 10
	}
	if cfg.Values == nil {
		if v, ok := model.(tree.ValueProvider); ok {
			cfg.Values = v
		}
	}
	log := cfg.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	if cfg.View.Logger == nil {
		cfg.View.Logger = log
	}

	state, err := view.New(model, cfg.View)
	m := Model{
		cfg:        cfg,
		state:      state,
		log:        log,
		mode:       Browsing{},
		err:        err,
		showGuides: cfg.ShowGuides,
		viewport:   viewport.New(0, 0),
		help:       help.New(),
	}
	m.lastVersion = state.Version()
	m.lastMode = ModeName(m.mode)
	m.rebuildContent()
	return m, err
}

// State returns the underlying view state. Hosts may mutate it directly;
// the next Update picks the change up.
func (m Model) State() *view.State { return m.state }

func (m Model) Mode() Mode { return m.mode }

// Err returns the error of the last dispatched action, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sizes the component. One row is reserved for the status line and
// one for the header when columns are shown with a header. At least one list
// row is kept, so a component shorter than its chrome overflows by a row.
func (m Model) SetSize(width, height int) Model {
	width, height = max(width, 0), max(height, 0)
	m.width = width
	m.help.Width = width
	m.viewport.Width = width
	m.viewport.Height = max(height-m.chromeRows(), 1)
	m.state.SetViewportHeight(m.viewport.Height)
	m.rebuildContent()
	return m
}

// SetModel swaps the host tree, keeping view state by node id.
func (m Model) SetModel(model tree.Model) (Model, error) {
	err := m.state.SetModel(model)
	if err != nil {
		m.err = err
	}
	m.sync()
	return m, err
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		m.sync()
		return m, cmd
	case tea.MouseMsg:
		var cmd tea.Cmd
		m, cmd = m.updateMouse(msg)
		m.sync()
		return m, cmd
	default:
		// the host may have mutated the state directly
		m.sync()
		return m, nil
	}
}

func (m Model) chromeRows() int {
	rows := 1
	if m.showHeader() {
		rows++
	}
	return rows
}

// sync rebuilds the content and fires OnChange when the state version or
// the mode moved since the last call.
func (m *Model) sync() {
	ver, mode := m.state.Version(), ModeName(m.mode)
	m.rebuildContent()
	if ver == m.lastVersion && mode == m.lastMode {
		return
	}
	m.lastVersion, m.lastMode = ver, mode
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.state, m.mode))
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}
