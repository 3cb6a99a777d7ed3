// Copyright (c) 2026 Keymaster Team
// Keynav - keyboard-aware form navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/keynav/buildvars"
	coreform "github.com/toeirei/keynav/core/form"
	"github.com/toeirei/keynav/core/keyboard"
	"github.com/toeirei/keynav/core/notify"
	"github.com/toeirei/keynav/i18n"
	"github.com/toeirei/keynav/internal/logging"
	"github.com/toeirei/keynav/ui/tui/models/components/header"
	"github.com/toeirei/keynav/ui/tui/models/components/stack"
	"github.com/toeirei/keynav/ui/tui/models/components/toolbar"
	"github.com/toeirei/keynav/ui/tui/models/components/vkeyboard"
	windowtitle "github.com/toeirei/keynav/ui/tui/models/helpers/title"
	"github.com/toeirei/keynav/ui/tui/models/views/footer"
	"github.com/toeirei/keynav/ui/tui/models/views/sampleform"
	"github.com/toeirei/keynav/ui/tui/util"
)

// KeyboardHeightMsg carries a new keyboard height from the observer into
// the event loop.
type KeyboardHeightMsg struct {
	Height float64
}

type Model struct {
	keyMap       *KeyMap
	ctrl         *coreform.Controller
	observer     *keyboard.HeightObserver
	stack        *stack.Model
	footer       *util.Model
	titleHandler *windowtitle.TitleHandler
	// keyboardHeight is the last height delivered as KeyboardHeightMsg.
	keyboardHeight int
}

// New lays out header, form, toolbar, keyboard and footer. The toolbar and
// keyboard rows are sized from the observer, so they collapse as soon as
// the keyboard announces that it hides.
func New(ctrl *coreform.Controller, center *notify.Center, observer *keyboard.HeightObserver) *Model {
	keyMap := BaseKeyMap()
	_footer := footer.New(&keyMap)
	_footer_ptr := util.ModelPointer(_footer)

	keyboardSize := stack.FuncSize(1, func(_, _ int) int {
		return int(observer.Height())
	})
	toolbarSize := stack.FuncSize(2, func(_, _ int) int {
		// the toolbar only makes sense next to a keyboard
		if observer.Height() <= 0 {
			return 0
		}
		return toolbar.Height
	})

	version := buildvars.VersionOrDefault("unknown version")
	appTitle := i18n.T("app.title")

	return &Model{
		keyMap:   &keyMap,
		ctrl:     ctrl,
		observer: observer,
		stack: stack.New(
			stack.WithOrientation(stack.Vertical),
			stack.WithFocus(stack.FocusIndex(1)),
			stack.WithItem(util.ModelPointer(header.New(i18n.T("form.title"))), header.SizeConfig),
			stack.WithItem(util.ModelPointer(sampleform.New(ctrl)), stack.VariableSize(1)),
			stack.WithItem(util.ModelPointer(toolbar.New(ctrl,
				i18n.T("toolbar.done"),
				i18n.T("toolbar.previous"),
				i18n.T("toolbar.next"),
			)), toolbarSize),
			stack.WithItem(util.ModelPointer(vkeyboard.New(center)), keyboardSize),
			stack.WithItem(_footer_ptr, footer.SizeConfig),
		),
		footer:       _footer_ptr,
		titleHandler: windowtitle.NewHandler(fmt.Sprintf("%s %s", appTitle, version), " | "),
	}
}

// BridgeKeyboardHeight forwards observer changes to send until cancel is
// called. Observer callbacks may run inside Update, so heights are queued
// and a single goroutine delivers them in the order they were observed.
func (m Model) BridgeKeyboardHeight(send func(tea.Msg)) (cancel func()) {
	var (
		mu      sync.Mutex
		pending []float64
		wake    = make(chan struct{}, 1)
		done    = make(chan struct{})
	)

	unsubscribe := m.observer.Subscribe(func(height float64) {
		mu.Lock()
		pending = append(pending, height)
		mu.Unlock()
		select {
		case wake <- struct{}{}:
		default:
		}
	})

	go func() {
		for {
			select {
			case <-done:
				return
			case <-wake:
			}
			mu.Lock()
			batch := pending
			pending = nil
			mu.Unlock()
			for _, height := range batch {
				select {
				case <-done:
					return
				default:
				}
				send(KeyboardHeightMsg{Height: height})
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			unsubscribe()
			close(done)
		})
	}
}

func (m Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.stack.Init()
	focusCmd, keyMap := m.stack.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// help is only reachable while no field takes text input
	_, editing := m.ctrl.Focused()
	m.keyMap.Help.SetEnabled(!editing)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Exit):
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Help):
			util.BorrowModelFunc(m.footer, func(_footer *footer.Model) {
				_footer.ToggleExpanded()
			})
			return m, m.stack.Update(nil)
		}
	case KeyboardHeightMsg:
		m.keyboardHeight = int(msg.Height)
		logging.Debugf("layout for keyboard height %d", m.keyboardHeight)
	}

	// handle window title messages
	if cmd := m.titleHandler.Handle(msg); cmd != nil {
		return m, cmd
	}
	// handle other messages
	return m, m.stack.Update(msg)
}

func (m Model) View() string {
	return m.stack.View()
}

// KeyboardHeight is the last height the observer reported through
// BridgeKeyboardHeight.
func (m Model) KeyboardHeight() int {
	return m.keyboardHeight
}

// Sizes reports the rows given to header, form, toolbar, keyboard and
// footer in the last layout pass.
func (m Model) Sizes() []int {
	return m.stack.Sizes()
}

var _ tea.Model = (*Model)(nil)
