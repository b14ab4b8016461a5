package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/treelist/listview"
)

// options are the resolved demo settings. Flags win over TREELIST_*
// environment variables, which win over the config file.
type options struct {
	Root     string
	Depth    int
	KeyMap   string
	Profile  string
	ASCII    bool
	Guides   bool
	Help     bool
	State    string
	Watch    bool
	Print    bool
	LogFile  string
	LogLevel string
}

func addFlags(cmd *cobra.Command, v *viper.Viper) {
	f := cmd.Flags()
	f.String("config", "", "config file (default is $HOME/.config/treelist/config.yaml)")
	f.Int("depth", 3, "directory levels to load, 0 for no limit")
	f.String("keymap", "", "YAML keymap file")
	f.String("profile", listview.ProfileDefault.String(), "key profile: default, vim or arrows")
	f.Bool("ascii", false, "draw with ASCII glyphs")
	f.Bool("guides", true, "draw guide lines")
	f.Bool("show-help", false, "show key help in the status line")
	f.String("state", "", "file to restore view state from and save it to on exit")
	f.Bool("watch", false, "reload the tree when the directory changes")
	f.Bool("print", false, "print the tree and exit")
	f.String("log", "", "log file (logging is off when empty)")
	f.String("log-level", "info", "log level")

	for _, name := range []string{"depth", "keymap", "profile", "ascii", "guides", "show-help", "state", "watch", "print", "log", "log-level"} {
		_ = v.BindPFlag(name, f.Lookup(name))
	}
}

func loadOptions(cmd *cobra.Command, v *viper.Viper, args []string) (options, error) {
	v.SetEnvPrefix("TREELIST")
	v.AutomaticEnv()

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "treelist"))
		}
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return options{}, fmt.Errorf("read config: %w", err)
		}
	}

	opt := options{
		Root:     ".",
		Depth:    v.GetInt("depth"),
		KeyMap:   v.GetString("keymap"),
		Profile:  v.GetString("profile"),
		ASCII:    v.GetBool("ascii"),
		Guides:   v.GetBool("guides"),
		Help:     v.GetBool("show-help"),
		State:    v.GetString("state"),
		Watch:    v.GetBool("watch"),
		Print:    v.GetBool("print"),
		LogFile:  v.GetString("log"),
		LogLevel: v.GetString("log-level"),
	}
	if len(args) > 0 {
		opt.Root = args[0]
	}
	if opt.Depth < 0 {
		return options{}, fmt.Errorf("depth must not be negative: %d", opt.Depth)
	}
	return opt, nil
}

// keyMap builds the bindings from the keymap file or the profile name.
func (o options) keyMap() (listview.KeyMap, error) {
	if o.KeyMap == "" {
		p, ok := listview.ParseProfile(o.Profile)
		if !ok {
			return listview.KeyMap{}, fmt.Errorf("unknown profile %q", o.Profile)
		}
		return listview.KeyMapFor(p), nil
	}
	f, err := os.Open(o.KeyMap)
	if err != nil {
		return listview.KeyMap{}, err
	}
	defer f.Close()
	return listview.LoadKeyMap(f)
}
