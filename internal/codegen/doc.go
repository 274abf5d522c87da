// Package codegen turns a scene.Description into Slang shader source.
//
// The generated body is a flat sequence of statements: one accumulator
// declaration, one block per shape and a closing return. It is injected into
// a base template at the Marker comment and written under the generated
// shader directory at a path derived from the scene name.
package codegen
