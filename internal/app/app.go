// Package app is the root bubbletea model. It owns the timeline engine and
// the playback transport and routes input to the toolbar, the timeline view
// and the popups.
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/cutline/internal/app/popupctl"
	"github.com/llehouerou/cutline/internal/keymap"
	"github.com/llehouerou/cutline/internal/timeline"
	"github.com/llehouerou/cutline/internal/transport"
	"github.com/llehouerou/cutline/internal/ui/layout"
	"github.com/llehouerou/cutline/internal/ui/timelineview"
	"github.com/llehouerou/cutline/internal/ui/toolbar"
)

// Model is the root application model.
type Model struct {
	Engine    *timeline.Engine
	Transport *transport.Transport
	Toolbar   toolbar.Model
	Timeline  timelineview.Model
	Popups    *popupctl.Manager
	Layout    layout.Regions
	ErrorMsg  string
	Width     int
	Height    int

	keys         *keymap.Resolver
	log          *zap.Logger
	engineSub    *timeline.Subscription
	transportSub *transport.Subscription
}

// New creates the application over an engine and its transport.
func New(e *timeline.Engine, tr *transport.Transport, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	return Model{
		Engine:       e,
		Transport:    tr,
		Toolbar:      toolbar.New(e),
		Timeline:     timelineview.New(e),
		Popups:       popupctl.New(),
		keys:         keymap.NewResolver(keymap.Bindings),
		log:          log,
		engineSub:    e.Subscribe(),
		transportSub: tr.Subscribe(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("cutline"),
		m.WatchEngine(),
		m.WatchTransport(),
	)
}

// Close stops playback and releases the event subscriptions.
func (m Model) Close() {
	m.Transport.Close()
	m.Engine.Close()
}

// setError records a status-line error; an empty message clears it.
func (m *Model) setError(msg string) {
	if msg != "" {
		m.log.Info("user-visible error", zap.String("message", msg))
	}
	m.ErrorMsg = msg
}

// sync pulls engine and transport state into the components after a
// change made outside of them.
func (m *Model) sync() {
	m.Timeline.Refresh()
	m.Toolbar.SetPlaying(m.Transport.IsPlaying())
}
