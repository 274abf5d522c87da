package testutil

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// Invocation is one recorded compiler launch.
type Invocation struct {
	Binary string
	Args   []string
}

// Flag returns the value following name in the arguments, or "".
func (i Invocation) Flag(name string) string {
	idx := slices.Index(i.Args, name)
	if idx < 0 || idx+1 >= len(i.Args) {
		return ""
	}
	return i.Args[idx+1]
}

// StubRunner stands in for the shader compiler. Successful invocations write
// a small file at the -o destination, like the real compiler would.
type StubRunner struct {
	// Fail decides whether an invocation fails. Nil means every call succeeds.
	Fail func(Invocation) bool

	mu          sync.Mutex
	invocations []Invocation
}

func (s *StubRunner) Run(_ context.Context, name string, args []string) ([]byte, int, error) {
	inv := Invocation{Binary: name, Args: slices.Clone(args)}
	s.mu.Lock()
	s.invocations = append(s.invocations, inv)
	s.mu.Unlock()

	if s.Fail != nil && s.Fail(inv) {
		return []byte("error: stub compiler failure"), 1, errors.New("exit status 1")
	}
	if dest := inv.Flag("-o"); dest != "" {
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return nil, -1, err
		}
		if err := os.WriteFile(dest, []byte("compiled "+inv.Flag("-entry")), 0o644); err != nil {
			return nil, -1, err
		}
	}
	return nil, 0, nil
}

// Invocations returns a copy of the recorded launches, in call order.
func (s *StubRunner) Invocations() []Invocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.invocations)
}
