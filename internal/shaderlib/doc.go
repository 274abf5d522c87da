// Package shaderlib carries the built-in Slang library that generated shaders
// import, and installs it into a project's core include directory so the
// compiler can always resolve it.
package shaderlib
