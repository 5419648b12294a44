package interpreter

import (
	"errors"
	"io"
	"strings"

	"cleaningrobot/internal/cleaning"
)

var (
	ErrStepLimit = errors.New("step limit exceeded")
	ErrNoInput   = errors.New("no more input")
)

// Context stores everything a running program touches

type Context struct {
	Env   *Environment
	Model *cleaning.Model

	// Input lines consumed by read statements.
	Input []string
	// Output receives say statements, one line each.
	Output io.Writer

	// MaxSteps bounds the number of executed statements; 0 means unbounded.
	MaxSteps int
	steps    int

	// OnStep runs after every movement statement.
	OnStep func(*cleaning.Model)
}

// NewContext prepares a context for running against m.
func NewContext(m *cleaning.Model, out io.Writer) *Context {
	if out == nil {
		out = io.Discard
	}
	return &Context{Env: NewEnvironment(), Model: m, Output: out}
}

// SetInput splits raw stdin-style text into input lines.
func (c *Context) SetInput(raw string) {
	raw = strings.TrimRight(raw, "\n")
	if raw == "" {
		c.Input = nil
		return
	}
	c.Input = strings.Split(raw, "\n")
}

// Steps reports how many statements have run.
func (c *Context) Steps() int { return c.steps }

func (c *Context) tick() error {
	c.steps++
	if c.MaxSteps > 0 && c.steps > c.MaxSteps {
		return ErrStepLimit
	}
	return nil
}

func (c *Context) nextInput() (string, error) {
	if len(c.Input) == 0 {
		return "", ErrNoInput
	}
	line := c.Input[0]
	c.Input = c.Input[1:]
	return line, nil
}

func (c *Context) moved() {
	if c.OnStep != nil {
		c.OnStep(c.Model)
	}
}
