// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface for reading it from a
// project file.
//
// The `config.Model` is the single source of truth for directory layout,
// compiler settings and notifications. Every component receives the parts it
// needs explicitly instead of reaching for package-level path constants.
// Concrete loader implementations, such as for HCL, are provided in separate
// packages.
package config
