// Package config loads, normalizes, and validates framed project files.
//
// A project file (framed.toml) names the bezel asset, fonts, default
// template, the device and language matrix, and the ordered list of
// screens and groups to render. Relative paths are resolved against the
// directory holding the file, so a project can be rendered from anywhere.
//
// Always obtain settings through this package so downstream code receives
// trimmed keys, absolute paths, and clear validation errors.
package config
