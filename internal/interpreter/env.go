package interpreter

import (
	"fmt"
	"sort"
	"strings"
)

// Environment holds script variables

type Environment struct {
	vars map[string]int
}

func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]int)}
}

func (e *Environment) Get(name string) (int, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Lookup is Get with an error for undefined names.
func (e *Environment) Lookup(name string) (int, error) {
	v, ok := e.vars[name]
	if !ok {
		return 0, fmt.Errorf("undefined variable %s", name)
	}
	return v, nil
}

func (e *Environment) Set(name string, val int) {
	e.vars[name] = val
}

// String lists variables sorted by name, e.g. "a=1 b=2".
func (e *Environment) String() string {
	names := make([]string, 0, len(e.vars))
	for n := range e.vars {
		names = append(names, n)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = fmt.Sprintf("%s=%d", n, e.vars[n])
	}
	return strings.Join(parts, " ")
}
