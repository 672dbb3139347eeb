package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/Alia5/kbdoverlay/internal/configpaths"
	"github.com/Alia5/kbdoverlay/overlay/codec"

	"github.com/alecthomas/kong"
	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
}

// ConfigInit scaffolds a configuration file for a specific command.
type ConfigInit struct {
	Command string `arg:"" name:"command" help:"Command to generate config for" enum:"server,global"`
	Format  string `help:"Output format" enum:"json,yaml,toml" default:"json"`
	Dest    string `help:"Destination file path (defaults to current directory)" type:"path"`
	User    bool   `help:"Write to the user config directory instead of the current directory"`
	Force   bool   `help:"Overwrite if the file already exists"`
}

// Flags that never belong in a config file.
var skipFlags = map[string]bool{"help": true, "config": true}

// Run writes every flag of the chosen command with its default value,
// keyed the way the matching config resolver looks it up.
func (c *ConfigInit) Run(kctx *kong.Context) error {
	format := codec.NormalizeFormat(c.Format)
	if format == "" {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}

	node, err := commandNode(kctx.Model, c.Command)
	if err != nil {
		return err
	}
	root := configTemplate(node, format)

	dest, err := c.destination(string(format))
	if err != nil {
		return err
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}

	var data []byte
	switch format {
	case codec.JSON:
		data, err = json.MarshalIndent(root, "", "  ")
	case codec.YAML:
		data, err = yaml.Marshal(root)
	case codec.TOML:
		data, err = toml.Marshal(root)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", dest)
	return nil
}

func (c *ConfigInit) destination(format string) (string, error) {
	base := c.Command
	if base == "global" {
		base = "config"
	}
	switch {
	case c.Dest != "":
		return c.Dest, nil
	case c.User:
		return configpaths.DefaultNamedConfigPath(base, format)
	default:
		return base + "." + format, nil
	}
}

func commandNode(app *kong.Application, name string) (*kong.Node, error) {
	if name == "global" {
		return app.Node, nil
	}
	for _, child := range app.Children {
		if child.Type == kong.CommandNode && child.Name == name {
			return child, nil
		}
	}
	return nil, fmt.Errorf("unknown command %q; expected 'server' or 'global'", name)
}

// configTemplate lays the flags out for the resolver of format.
//
// kong.JSON ignores the command and walks nested objects split on ".",
// with "-" spelled "_". The YAML and TOML loaders key a subcommand's
// flags under the command name and look up the full flag name there.
func configTemplate(node *kong.Node, format codec.Format) map[string]any {
	root := map[string]any{}
	section := root
	if format != codec.JSON && node.Type == kong.CommandNode {
		section = map[string]any{}
		root[node.Name] = section
	}
	for _, flag := range node.Flags {
		if flag.Hidden || skipFlags[flag.Name] {
			continue
		}
		// An empty path resolves to the working directory, so leave it out.
		if flag.Tag.Type == "path" && !flag.HasDefault {
			continue
		}
		val := flagDefault(flag)
		if format != codec.JSON {
			section[flag.Name] = val
			continue
		}
		parts := strings.Split(strings.ReplaceAll(flag.Name, "-", "_"), ".")
		m := section
		for _, p := range parts[:len(parts)-1] {
			sub, ok := m[p].(map[string]any)
			if !ok {
				sub = map[string]any{}
				m[p] = sub
			}
			m = sub
		}
		m[parts[len(parts)-1]] = val
	}
	return root
}

var durationType = reflect.TypeOf(time.Duration(0))

// flagDefault types the tag default so the template decodes back into the flag.
func flagDefault(flag *kong.Flag) any {
	def := flag.Default
	t := flag.Target.Type()
	if t == durationType {
		if def == "" {
			return "0s"
		}
		return def
	}
	switch t.Kind() {
	case reflect.Bool:
		b, _ := strconv.ParseBool(def)
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, _ := strconv.ParseInt(def, 10, 64)
		return n
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, _ := strconv.ParseUint(def, 10, 64)
		return n
	case reflect.Float32, reflect.Float64:
		f, _ := strconv.ParseFloat(def, 64)
		return f
	case reflect.Slice:
		if def == "" {
			return []string{}
		}
		return strings.Split(def, ",")
	default:
		return def
	}
}
