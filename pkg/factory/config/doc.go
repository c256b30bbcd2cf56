/*
Package config loads factory settings from YAML or JSON.

# Overview

Config wraps a decoded map[string]any and exposes typed accessors that fall
back to a default when a key is missing or has the wrong type. Settings is the
typed view a factory and the factoryctl tool consume.

# Basic Usage

	cfg, err := config.FromFile("factory.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	settings := config.LoadSettings(cfg)

	f := factory.New("shapes", shapes.Contract, factory.WithSettings(settings))

# Settings Keys

	log_level: info          # debug, info, warn, error
	log_format: text         # text or json
	metrics: false           # OTel metrics on produce
	tracing: false           # OTel spans on produce
	warn_on_collision: true  # warn when discovery drops a duplicate name
	ledger_path: ""          # SQLite audit file; empty disables the ledger

Nested keys may be addressed with dots, e.g. cfg.String("ledger.path", "").
*/
package config
