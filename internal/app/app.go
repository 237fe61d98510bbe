// Package app contains the root Bubble Tea model for the countdown screen.
package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rishabh06704/getdaysleft/internal/countdown"
	"github.com/rishabh06704/getdaysleft/internal/keys"
	"github.com/rishabh06704/getdaysleft/internal/log"
	"github.com/rishabh06704/getdaysleft/internal/pubsub"
	"github.com/rishabh06704/getdaysleft/internal/share"
	helpview "github.com/rishabh06704/getdaysleft/internal/ui/help"
	"github.com/rishabh06704/getdaysleft/internal/ui/logview"
	"github.com/rishabh06704/getdaysleft/internal/ui/toaster"
	"github.com/rishabh06704/getdaysleft/internal/watcher"
)

// Focus targets, in tab order.
const (
	focusDate = iota
	focusTime
	focusStart
	focusReset
	focusCopy
	focusCount
)

// Mouse zone IDs.
const (
	zoneDate  = "getdaysleft-date"
	zoneTime  = "getdaysleft-time"
	zoneStart = "getdaysleft-start"
	zoneReset = "getdaysleft-reset"
	zoneCopy  = "getdaysleft-copy"
)

// copyFailed is shown when neither clipboard mechanism worked.
const copyFailed = "Could not copy link"

// Settings are the parts of the configuration that can change while running.
type Settings struct {
	Formatter *countdown.Formatter
	Linker    share.Linker
}

// Options configures a new Model.
type Options struct {
	Date      string // pre-filled date input
	Time      string // pre-filled time input
	AutoStart bool   // start right away when Date is set
	Settings  Settings
	ShowHelp  bool // short help line under the buttons
	Mouse     bool // clickable fields and buttons
	Debug     bool // enables the ctrl+x log pane

	// Watcher and Reload enable config hot reload. Both must be set.
	Watcher *watcher.Watcher
	Reload  func() (Settings, error)

	Clock      countdown.Clock     // nil uses the wall clock
	Scheduler  countdown.Scheduler // nil ticks on the Bubble Tea loop
	TickPeriod time.Duration       // zero uses countdown.TickPeriod
}

type startMsg struct{}

type copyResultMsg struct {
	link string
	err  error
}

// Model is the root application state.
type Model struct {
	screen *screen
	ctrl   *countdown.Controller
	events *pubsub.Broker[countdown.Event]
	ticks  *tickQueue

	ctx    context.Context
	cancel context.CancelFunc

	eventListener  *pubsub.ContinuousListener[countdown.Event]
	configListener *pubsub.ContinuousListener[watcher.Event]
	logListener    *log.LogListener
	reload         func() (Settings, error)
	linker         share.Linker

	inputs [2]textinput.Model
	focus  int

	keys      keys.KeyMap
	helpBar   help.Model
	helpView  helpview.Model
	showHelp  bool
	showKeys  bool
	mouse     bool
	debug     bool
	logView   logview.Model
	autoStart bool

	toaster toaster.Model

	width  int
	height int
}

// New creates the countdown screen. Call Close when the program exits.
func New(opts Options) Model {
	ctx, cancel := context.WithCancel(context.Background())

	scr := newScreen()
	ticks := newTickQueue()
	events := pubsub.NewBroker[countdown.Event]()

	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = countdown.NewTickerScheduler(ticks.Dispatch)
	}
	ctrlOpts := []countdown.Option{countdown.WithPublisher(events)}
	if opts.Clock != nil {
		ctrlOpts = append(ctrlOpts, countdown.WithClock(opts.Clock))
	}
	if opts.TickPeriod > 0 {
		ctrlOpts = append(ctrlOpts, countdown.WithPeriod(opts.TickPeriod))
	}

	km := keys.DefaultKeyMap()
	m := Model{
		screen:    scr,
		ctrl:      countdown.NewController(scr, scheduler, opts.Settings.Formatter, ctrlOpts...),
		events:    events,
		ticks:     ticks,
		ctx:       ctx,
		cancel:    cancel,
		reload:    opts.Reload,
		linker:    opts.Settings.Linker,
		keys:      km,
		helpBar:   help.New(),
		helpView:  helpview.New(km),
		showKeys:  opts.ShowHelp,
		mouse:     opts.Mouse,
		debug:     opts.Debug,
		autoStart: opts.AutoStart,
		toaster:   toaster.New(),
		logView:   logview.New(),
	}

	m.inputs[focusDate] = newInput("YYYY-MM-DD", 10, opts.Date)
	m.inputs[focusTime] = newInput("HH:MM", 8, opts.Time)
	m.inputs[focusDate].Focus()

	m.eventListener = pubsub.NewContinuousListener[countdown.Event](ctx, events)
	if opts.Watcher != nil && opts.Reload != nil {
		m.configListener = pubsub.NewContinuousListener[watcher.Event](ctx, opts.Watcher.Broker())
	}
	if opts.Debug {
		m.logListener = log.NewListener(ctx)
	}
	return m
}

func newInput(placeholder string, limit int, value string) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.SetValue(value)
	return in
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		m.eventListener.Listen(),
		m.ticks.wait(m.ctx.Done()),
	}
	if m.configListener != nil {
		cmds = append(cmds, m.configListener.Listen())
	}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	if m.autoStart && strings.TrimSpace(m.inputs[focusDate].Value()) != "" {
		cmds = append(cmds, func() tea.Msg { return startMsg{} })
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpBar.Width = msg.Width
		m.helpView = m.helpView.SetSize(msg.Width, msg.Height)
		m.logView = m.logView.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.mouse {
			return m, nil
		}
		return m.handleMouse(msg)

	case startMsg:
		return m.start()

	case tickMsg:
		msg.run()
		cmd := m.flushNotices()
		return m, tea.Batch(cmd, m.ticks.wait(m.ctx.Done()))

	case pubsub.Event[countdown.Event]:
		var cmd tea.Cmd
		if msg.Type == countdown.EventStopped {
			cmd = m.showToast(countdown.ToastComplete, toaster.StyleSuccess)
		}
		return m, tea.Batch(cmd, m.eventListener.Listen())

	case pubsub.Event[watcher.Event]:
		cmd := m.reloadSettings()
		return m, tea.Batch(cmd, m.configListener.Listen())

	case log.LogEvent:
		m.logView = m.logView.Append(msg.Payload)
		return m, m.logListener.Listen()

	case copyResultMsg:
		cmd := m.copyResult(msg)
		return m, cmd

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.logView.Visible() && msg.Type != tea.KeyCtrlC {
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.showHelp && msg.Type == tea.KeyEsc {
			m.showHelp = false
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case m.debug && key.Matches(msg, m.keys.ToggleLog):
		m.logView = m.logView.Toggle()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		cmd := m.setFocus((m.focus + 1) % focusCount)
		return m, cmd

	case key.Matches(msg, m.keys.PrevField):
		cmd := m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, cmd

	case key.Matches(msg, m.keys.Reset):
		return m.reset()

	case key.Matches(msg, m.keys.CopyLink):
		cmd := m.copyLink()
		return m, cmd

	case key.Matches(msg, m.keys.Start):
		switch m.focus {
		case focusReset:
			return m.reset()
		case focusCopy:
			cmd := m.copyLink()
			return m, cmd
		default:
			return m.start()
		}
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	switch {
	case zone.Get(zoneStart).InBounds(msg):
		return m.start()
	case zone.Get(zoneReset).InBounds(msg):
		return m.reset()
	case zone.Get(zoneCopy).InBounds(msg):
		cmd := m.copyLink()
		return m, cmd
	case zone.Get(zoneDate).InBounds(msg):
		cmd := m.setFocus(focusDate)
		return m, cmd
	case zone.Get(zoneTime).InBounds(msg):
		cmd := m.setFocus(focusTime)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus > focusTime {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) start() (tea.Model, tea.Cmd) {
	if err := m.ctrl.Start(m.inputs[focusDate].Value(), m.inputs[focusTime].Value()); err != nil {
		log.Debug(log.CatUI, "start rejected", "error", err)
	}
	cmd := m.flushNotices()
	return m, cmd
}

func (m Model) reset() (tea.Model, tea.Cmd) {
	m.ctrl.Reset()
	cmd := m.flushNotices()
	return m, cmd
}

func (m *Model) setFocus(target int) tea.Cmd {
	m.focus = target
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == target {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

// copyLink copies the share link off the UI loop; the result comes back
// as a copyResultMsg.
func (m *Model) copyLink() tea.Cmd {
	date := strings.TrimSpace(m.inputs[focusDate].Value())
	if date == "" {
		return m.showToast(countdown.ToastNoDate, toaster.StyleError)
	}
	timeStr := m.inputs[focusTime].Value()
	linker := m.linker
	return func() tea.Msg {
		link, err := linker.Copy(date, timeStr)
		return copyResultMsg{link: link, err: err}
	}
}

func (m *Model) copyResult(msg copyResultMsg) tea.Cmd {
	switch {
	case msg.err == nil:
		return m.showToast(countdown.ToastCopied, toaster.StyleSuccess)
	case errors.Is(msg.err, share.ErrMissingDate):
		return m.showToast(countdown.ToastNoDate, toaster.StyleError)
	default:
		return m.showToast(copyFailed, toaster.StyleError)
	}
}

func (m *Model) reloadSettings() tea.Cmd {
	s, err := m.reload()
	if err != nil {
		log.ErrorErr(log.CatConfig, "reloading config", err)
		return m.showToast("Config error: "+err.Error(), toaster.StyleError)
	}

	m.ctrl.SetFormatter(s.Formatter)
	if s.Linker.Copier == nil {
		s.Linker.Copier = m.linker.Copier
	}
	m.linker = s.Linker

	log.Info(log.CatConfig, "config reloaded")
	return m.showToast("Config reloaded", toaster.StyleInfo)
}

func (m *Model) showToast(text string, style toaster.Style) tea.Cmd {
	var cmd tea.Cmd
	m.toaster, cmd = m.toaster.Show(text, style, toaster.DefaultDuration)
	return cmd
}

// flushNotices turns alerts and toasts raised by the controller into toasts.
func (m *Model) flushNotices() tea.Cmd {
	var cmds []tea.Cmd
	for _, n := range m.screen.drain() {
		cmds = append(cmds, m.showToast(n.text, n.style))
	}
	return tea.Batch(cmds...)
}

// Controller returns the countdown controller driving the screen.
func (m Model) Controller() *countdown.Controller {
	return m.ctrl
}

// Close stops the countdown and every listener.
func (m *Model) Close() {
	m.cancel()
	m.ctrl.Reset()
	m.events.Close()
}
