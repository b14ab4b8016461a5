package main

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/treelist/listview"
	"github.com/iw2rmb/treelist/tree"
	"github.com/iw2rmb/treelist/view"
)

type fileChangeMsg struct{}

type watchErrMsg struct{ err error }

type reloadedMsg struct {
	tree *tree.Memory
	err  error
}

type systemClipboard struct{}

func (systemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

type app struct {
	opt     options
	list    listview.Model
	watcher *fsnotify.Watcher
	log     logrus.FieldLogger
}

func newApp(opt options, m *tree.Memory, log logrus.FieldLogger) (app, error) {
	km, err := opt.keyMap()
	if err != nil {
		return app{}, err
	}
	glyphs := listview.UnicodeGlyphs()
	if opt.ASCII {
		glyphs = listview.ASCIIGlyphs()
	}

	list, err := listview.New(m, listview.Config{
		View:       view.Options{Expand: view.ExpandPolicyRoot},
		KeyMap:     km,
		Style:      listview.DefaultStyle(),
		Glyphs:     glyphs,
		ShowGuides: opt.Guides,
		ShowHelp:   opt.Help,
		Columns:    columns,
		ShowHeader: true,
		LabelTitle: "Name",
		Clipboard:  systemClipboard{},
		Logger:     log,
		OnChange: func(ev listview.ChangeEvent) {
			log.WithFields(logrus.Fields{
				"version":  ev.Version,
				"kind":     ev.Change.Kind.String(),
				"selected": ev.Selected,
				"mode":     listview.ModeName(ev.Mode),
			}).Debug("treelist-demo: change")
		},
	})
	if err != nil {
		return app{}, err
	}

	a := app{opt: opt, list: list, log: log}
	if opt.State == "" {
		return a, nil
	}
	root, _ := m.Root()
	snap, ok, err := loadState(opt.State, string(root))
	switch {
	case err != nil:
		log.WithError(err).Warn("treelist-demo: ignoring saved state")
	case ok:
		if err := list.State().Restore(snap); err != nil {
			log.WithError(err).Warn("treelist-demo: restore failed")
		}
	}
	return a, nil
}

// watch registers every loaded directory with w. fsnotify is not recursive.
func (a *app) watch(w *fsnotify.Watcher, m *tree.Memory) {
	a.watcher = w
	if w == nil {
		return
	}
	for _, dir := range loadedDirs(m) {
		if err := w.Add(dir); err != nil {
			a.log.WithError(err).WithField("dir", dir).Debug("treelist-demo: not watching")
		}
	}
}

func (a app) Init() tea.Cmd {
	if a.watcher == nil {
		return nil
	}
	return a.waitForChange()
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fileChangeMsg:
		// shows as stale until the reload lands
		a.list.State().Invalidate()
		return a, a.reload()
	case watchErrMsg:
		a.log.WithError(msg.err).Warn("treelist-demo: watcher")
		return a, a.waitForChange()
	case reloadedMsg:
		if msg.err != nil {
			a.log.WithError(msg.err).Warn("treelist-demo: reload failed")
			return a, a.waitForChange()
		}
		var err error
		if a.list, err = a.list.SetModel(msg.tree); err != nil {
			a.log.WithError(err).Warn("treelist-demo: reloaded tree is inconsistent")
		}
		a.watch(a.watcher, msg.tree)
		return a, a.waitForChange()
	}

	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

func (a app) View() string { return a.list.View() }

func (a app) reload() tea.Cmd {
	opt, log := a.opt, a.log
	return func() tea.Msg {
		m, err := loadDir(opt.Root, opt.Depth, log)
		return reloadedMsg{tree: m, err: err}
	}
}

// waitForChange blocks until a relevant file system event arrives.
func (a app) waitForChange() tea.Cmd {
	w := a.watcher
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if ev.Op == fsnotify.Chmod {
					continue
				}
				// let bursts of writes settle
				time.Sleep(50 * time.Millisecond)
				return fileChangeMsg{}
			case err, ok := <-w.Errors:
				if !ok {
					return nil
				}
				return watchErrMsg{err: err}
			}
		}
	}
}
