// Package config defines the root command line of kbdoverlay.
package config

import (
	"github.com/Alia5/kbdoverlay/internal/cmd"
)

// LogConfig configures logging output.
type LogConfig struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"KBDOVERLAY_LOG_LEVEL"`
	File    string `help:"Write logs to this file instead of the console" type:"path" env:"KBDOVERLAY_LOG_FILE"`
	RawFile string `help:"Record raw API traffic to this file" type:"path" env:"KBDOVERLAY_LOG_RAW_FILE"`
	Color   bool   `help:"Colour console output when attached to a terminal" default:"true" negatable:"" env:"KBDOVERLAY_LOG_COLOR"`
}

// CLI is the root command.
type CLI struct {
	Config string `help:"Config file (json, yaml or toml)" type:"path" env:"KBDOVERLAY_CONFIG"`

	Log LogConfig `embed:"" prefix:"log."`

	cmd.Globals `embed:""`

	Server   cmd.Server        `cmd:"" help:"Serve the lookup API over TCP"`
	Locales  cmd.Locales       `cmd:"" help:"List locales"`
	Locale   cmd.Locale        `cmd:"" help:"Dump every key of a locale"`
	Key      cmd.Key           `cmd:"" help:"Look up the glyph on one key"`
	Layout   cmd.Layout        `cmd:"" help:"List layouts or dump one layout's geometry"`
	Shortcut cmd.Shortcut      `cmd:"" help:"List shortcuts or resolve a descriptor"`
	Action   cmd.Action        `cmd:"" help:"Resolve the action a key press triggers"`
	Resolve  cmd.Resolve       `cmd:"" help:"Map a language tag or input method id to a locale"`
	Validate cmd.Validate      `cmd:"" help:"Check the table for errors"`
	Export   cmd.Export        `cmd:"" help:"Write the table as a data document"`
	Query    cmd.Query         `cmd:"" help:"Query the table document with a gjson path"`
	Render   cmd.Render        `cmd:"" help:"Draw a locale's keyboard in the terminal"`
	Cfg      cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}
