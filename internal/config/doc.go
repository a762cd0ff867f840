// Package config loads widgetctl's optional TOML settings file.
package config
