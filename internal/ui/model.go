package ui

import (
	"reflect"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/floatkit/floatnav/internal/logging/events"
	"github.com/floatkit/floatnav/internal/menu"
	"github.com/floatkit/floatnav/internal/nav"
	"github.com/floatkit/floatnav/internal/popup"
	"github.com/floatkit/floatnav/internal/source"
	"github.com/floatkit/floatnav/internal/theme"
	"github.com/floatkit/floatnav/internal/ui/command"
	uistate "github.com/floatkit/floatnav/internal/ui/state"
)

type level = uistate.Level

const (
	menuHeaderSeparator = "→"
	defaultRootTitle    = "workspace"
)

var styles = theme.Default()

var headerSegmentCleaner = strings.NewReplacer("_", " ", "-", " ")

type msgHandler func(tea.Msg) tea.Cmd

// popupLevel ties one menu level to the engine that drives its navigation.
type popupLevel struct {
	level  *level
	engine *nav.Engine
	sched  *nav.ManualScheduler
	node   *menu.Node
}

// Model implements the Bubble Tea model for the popup navigation demo.
type Model struct {
	stack        []*popupLevel
	loading      bool
	pendingID    string
	pendingLabel string
	pendingKey   nav.Key
	errMsg       string
	infoMsg      string
	infoExpire   time.Time
	width        int
	height       int
	fixedWidth   bool
	fixedHeight  bool
	source       *source.Watcher
	sourceState  map[source.Kind]error
	showFooter   bool
	verbose      bool

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler

	registry *menu.Registry
	bus      *command.Bus
	tree     *popup.Tree
	baseOpts nav.Options
	menuCtx  menu.Context

	focus      focusRef
	activeDesc string
	hoverLevel string
	hoverIndex int

	layout layoutInfo
}

// NewModel initialises the UI state with the root menu and configuration.
func NewModel(width, height int, showFooter, verbose bool, opts nav.Options, watcher *source.Watcher) *Model {
	m := &Model{
		registry:    menu.BuildRegistry(),
		bus:         command.New(),
		tree:        popup.NewTree(),
		source:      watcher,
		sourceState: map[source.Kind]error{},
		showFooter:  showFooter,
		verbose:     verbose,
		baseOpts:    opts,
		hoverIndex:  -1,
		focus:       focusRef{index: -1},
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	root := m.newPopupLevel("root", "Main Menu", menu.RootItems(), m.registry.Root(), "")
	m.stack = []*popupLevel{root}
	root.engine.SetPageSize(m.maxVisibleItems())
	root.engine.SetOpen(true)
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

// newPopupLevel builds a level together with its navigation engine and
// registers the popup container in the tree.
func (m *Model) newPopupLevel(id, title string, items []menu.Item, node *menu.Node, parentID string) *popupLevel {
	if node == nil {
		node, _ = m.registry.Find(id)
	}
	lvl := uistate.NewLevel(id, title, items, node)
	pl := &popupLevel{
		level: lvl,
		sched: &nav.ManualScheduler{},
		node:  node,
	}
	opts := m.baseOpts
	if cols := lvl.Cols(); cols > 1 {
		opts.Cols = cols
		opts.Orientation = nav.OrientationBoth
	}
	opts.Nested = parentID != ""
	m.tree.Register(id, parentID, &levelContainer{model: m, id: id})
	pl.engine = nav.New(nav.Params{
		ID:       id,
		ParentID: parentID,
		List:     lvl,
		Options:  opts,
		OnNavigate: func(index int, ok bool) {
			m.onNavigate(pl, index, ok)
		},
		RequestOpen: func(open bool, key nav.Key) {
			m.onRequestOpen(pl, open, key)
		},
		Focus:     &levelSink{model: m, id: id},
		Scheduler: pl.sched,
		Tree:      m.tree,
	})
	return pl
}

func (m *Model) onNavigate(pl *popupLevel, index int, ok bool) {
	if !ok {
		return
	}
	pl.level.EnsureVisible(pl.level.RowOf(index), m.maxVisibleItems())
}

func (m *Model) onRequestOpen(pl *popupLevel, open bool, key nav.Key) {
	if open {
		if !pl.engine.IsOpen() {
			pl.engine.SetOpen(true)
		}
		return
	}
	if m.currentLevel() == pl {
		m.closeTopLevel()
	}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.source != nil {
		cmds = append(cmds, waitForSourceEvent(m.source))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(frameMsg{}):          m.handleFrameMsg,
		reflect.TypeOf(categoryLoadedMsg{}): m.handleCategoryLoadedMsg,
		reflect.TypeOf(menu.ActionResult{}): m.handleActionResultMsg,
		reflect.TypeOf(sourceEventMsg{}):    m.handleSourceEventMsg,
		reflect.TypeOf(sourceDoneMsg{}):     m.handleSourceDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if m.pendingFrame() {
		cmds = append(cmds, frameTick())
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) pendingFrame() bool {
	for _, pl := range m.stack {
		if pl.sched.Pending() {
			return true
		}
	}
	return false
}

func (m *Model) handleFrameMsg(tea.Msg) tea.Cmd {
	for _, pl := range m.stack {
		pl.sched.Flush()
	}
	return nil
}

func (m *Model) currentLevel() *popupLevel {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

func (m *Model) findLevel(id string) *popupLevel {
	for _, pl := range m.stack {
		if pl.level.ID == id {
			return pl
		}
	}
	return nil
}

// closeTopLevel closes the top popup and returns focus to its parent. The
// root popup never closes this way; quitting is the caller's decision.
func (m *Model) closeTopLevel() bool {
	if len(m.stack) <= 1 {
		return false
	}
	top := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	top.engine.SetOpen(false)
	top.engine.Teardown()
	m.tree.Unregister(top.level.ID)
	events.UI.MenuPop(top.level.ID)
	m.errMsg = ""
	m.forceClearInfo()
	return true
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
