package faber

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls emission formatting and the per-dialect choices
// spec.md leaves open: class-method default visibility and the target
// dialect name. LoadConfig fills unset fields from DefaultConfig; a
// Config built by hand reaches the emitter as-is, so an empty Indent,
// StatementTerminator, or DefaultMethodVisibility emits no indentation,
// no terminators, or no visibility keyword.
type Config struct {
	Indent               string `yaml:"indent"`
	StatementTerminator   string `yaml:"statement_terminator"`
	DefaultMethodVisibility string `yaml:"default_method_visibility"` // "public" or "private"
	Dialect               string `yaml:"dialect"`
}

// DefaultConfig matches the teacher's own "no config file present"
// behavior: sane built-in defaults rather than a required file.
func DefaultConfig() Config {
	return Config{
		Indent:                  "  ",
		StatementTerminator:     ";",
		DefaultMethodVisibility: "public",
		Dialect:                 "default",
	}
}

// LoadConfig reads a ".faber.yaml" file at path, filling in
// DefaultConfig's values for anything left unset. A missing file is
// not an error: it returns DefaultConfig unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg, err
	}
	if fileCfg.Indent != "" {
		cfg.Indent = fileCfg.Indent
	}
	if fileCfg.StatementTerminator != "" {
		cfg.StatementTerminator = fileCfg.StatementTerminator
	}
	if fileCfg.DefaultMethodVisibility != "" {
		cfg.DefaultMethodVisibility = fileCfg.DefaultMethodVisibility
	}
	if fileCfg.Dialect != "" {
		cfg.Dialect = fileCfg.Dialect
	}
	return cfg, nil
}
