// Package config builds a [github.com/ardnew/multilog.Logger] from a
// declarative YAML or TOML document.
//
// A document names a verbosity level, an optional broadcast prefix, and the
// list of targets to register, in dispatch order:
//
//	level: warning
//	prefix: "[api]"
//	targets:
//	  - type: console
//	    whole-message-color: false
//	  - type: file
//	    path: logs/app.log
//	    append: true
//
// [Load] selects the decoder by file extension (".toml" for TOML, anything
// else YAML), and [Config.Build] constructs the logger:
//
//	cfg, err := config.Load("multilog.yaml")
//	if err != nil { ... }
//	logger, err := cfg.Build()
//
// [Watch] keeps a built logger's level and prefix in sync with the file as
// it is rewritten.
package config
