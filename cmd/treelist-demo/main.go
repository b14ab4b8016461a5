// Command treelist-demo browses a directory with the treelist component.
//
// Edits (add, rename, delete, cut and paste) change the in-memory tree only.
// With --watch the tree is reloaded from disk on every change, which
// discards them.
package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/treelist"
	"github.com/iw2rmb/treelist/tree"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:          "treelist-demo [dir]",
		Short:        "Browse a directory as a tree list",
		Args:         cobra.MaximumNArgs(1),
		Version:      treelist.Version(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opt, err := loadOptions(cmd, v, args)
			if err != nil {
				return err
			}
			return run(cmd, opt)
		},
	}
	addFlags(cmd, v)
	return cmd
}

func run(cmd *cobra.Command, opt options) error {
	log, closeLog, err := newLogger(opt)
	if err != nil {
		return err
	}
	defer closeLog()

	m, err := loadDir(opt.Root, opt.Depth, log)
	if err != nil {
		return err
	}
	if opt.Print {
		_, err := fmt.Fprint(cmd.OutOrStdout(), tree.Dump(m, m))
		return err
	}

	a, err := newApp(opt, m, log)
	if err != nil {
		return err
	}
	if opt.Watch {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("create file watcher: %w", err)
		}
		defer w.Close()
		a.watch(w, m)
	}

	final, err := tea.NewProgram(a, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	if err != nil {
		return err
	}
	if opt.State == "" {
		return nil
	}
	fa, ok := final.(app)
	if !ok {
		return nil
	}
	root, _ := m.Root()
	if err := saveState(opt.State, string(root), fa.list.State().Snapshot()); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	log.WithField("file", opt.State).Info("treelist-demo: state saved")
	return nil
}

func newLogger(opt options) (logrus.FieldLogger, func(), error) {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if opt.LogFile == "" {
		l.SetOutput(io.Discard)
		return l, func() {}, nil
	}
	level, err := logrus.ParseLevel(opt.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	l.SetLevel(level)
	f, err := os.OpenFile(opt.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	l.SetOutput(f)
	return l, func() { _ = f.Close() }, nil
}
