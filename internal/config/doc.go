// Package config loads terminal configuration from YAML files with
// environment variable substitution, default values, and validation.
package config
