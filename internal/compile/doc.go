// Package compile describes a single invocation of the Slang compiler and
// runs it as an external process.
//
// A Job is built either with NewJob, which takes every required parameter up
// front, or with a Builder, which validates at Build time and reports the
// first missing field as a sentinel error. Jobs are executed by a Toolchain,
// which owns the compiler binary, the include directories and the Runner used
// to launch the process.
package compile
