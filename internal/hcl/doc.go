// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It parses the optional project file, evaluates its expressions
// against a small evaluation context (environment variables and string
// functions) and translates the result into the format-agnostic config.Model.
package hcl
