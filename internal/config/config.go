// Package config loads command tables from YAML or TOML files.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nesv/cmds"
)

// Format of a command table file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the format from a file name's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.Errorf("unsupported command table extension %q", filepath.Ext(path))
}

// File is a command table, as authored on disk.
type File struct {
	Name        string    `yaml:"name" toml:"name"`
	Version     string    `yaml:"version" toml:"version"`
	Description string    `yaml:"description" toml:"description"`
	Debug       bool      `yaml:"debug" toml:"debug"`
	DefaultRule *Rule     `yaml:"default_rule" toml:"default_rule"`
	Commands    []Command `yaml:"commands" toml:"commands"`
}

// Rule is a rule notation together with an argument amount.
type Rule struct {
	Rule   string `yaml:"rule" toml:"rule"`
	Amount int    `yaml:"amount" toml:"amount"`
}

// Command mirrors cmds.Command, minus the callback.
type Command struct {
	Name        string `yaml:"name" toml:"name"`
	Usage       string `yaml:"usage" toml:"usage"`
	Description string `yaml:"description" toml:"description"`
	Help        string `yaml:"help" toml:"help"`
	Rule        string `yaml:"rule" toml:"rule"`
	Amount      int    `yaml:"amount" toml:"amount"`
}

// Load reads the command table at path.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open command table")
	}
	defer f.Close()

	file, err := Decode(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return file, nil
}

// Decode reads a command table in the given format from r.
func Decode(r io.Reader, format Format) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read command table")
	}

	var file File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "decode yaml")
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &file)
		if err != nil {
			return nil, errors.Wrap(err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.Errorf("unknown keys %v", undecoded)
		}
	default:
		return nil, errors.Errorf("unsupported format %q", format)
	}

	for i, c := range file.Commands {
		if strings.TrimSpace(c.Usage) == "" {
			return nil, errors.Errorf("commands[%d]: usage is required", i)
		}
	}
	return &file, nil
}

// Apply registers the table's commands on p and copies the program settings
// the table declares. When cb is not nil it is asked for the callback of
// every command.
func (f *File) Apply(p *cmds.Program, cb func(c Command) cmds.CallbackFunc) {
	if f.Name != "" {
		p.Name = f.Name
	}
	if f.Version != "" {
		p.Version = f.Version
	}
	if f.Description != "" {
		p.Description = f.Description
	}
	p.Debug = p.Debug || f.Debug
	if f.DefaultRule != nil {
		p.DefaultRule(f.DefaultRule.Rule, f.DefaultRule.Amount)
	}
	for _, c := range f.Commands {
		var fn cmds.CallbackFunc
		if cb != nil {
			fn = cb(c)
		}
		p.AddCmd(cmds.Command{
			Name:        c.Name,
			Usage:       c.Usage,
			Description: c.Description,
			Help:        c.Help,
			Rule:        c.Rule,
			Amount:      c.Amount,
			Callback:    fn,
		})
	}
}
