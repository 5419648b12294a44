// Package interpreter runs small command scripts against a cleaning model.
//
//	n = 3;
//	repeat n { forward; turn 90; }
//	while not obstacle FORWARD { forward; }
//	if clean { say "done"; } else { move LEFT; }
package interpreter

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type Program struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Pos lexer.Position

	Move    *Move    `parser:"  @@ ';'"`
	Forward *Forward `parser:"| @@ ';'"`
	Turn    *Turn    `parser:"| @@ ';'"`
	Face    *Face    `parser:"| @@ ';'"`
	Say     *Say     `parser:"| @@ ';'"`
	Read    *Read    `parser:"| @@ ';'"`
	Repeat  *Repeat  `parser:"| @@"`
	While   *While   `parser:"| @@"`
	If      *If      `parser:"| @@"`
	Assign  *Assign  `parser:"| @@ ';'"`
}

type Move struct {
	Dir string `parser:"'move' @('LEFT'|'RIGHT'|'UP'|'DOWN')"`
}

type Forward struct {
	Steps *Expr `parser:"'forward' @@?"`
}

type Turn struct {
	Delta *Expr `parser:"'turn' @@"`
}

type Face struct {
	Angle *Expr `parser:"'face' @@"`
}

type Say struct {
	Text  *string `parser:"'say' ( @String"`
	Value *Expr   `parser:"| @@ )"`
}

type Read struct {
	Name string `parser:"'read' @Ident"`
}

type Repeat struct {
	Count *Expr        `parser:"'repeat' @@"`
	Body  []*Statement `parser:"'{' @@* '}'"`
}

type While struct {
	Cond *Cond        `parser:"'while' @@"`
	Body []*Statement `parser:"'{' @@* '}'"`
}

type If struct {
	Cond *Cond        `parser:"'if' @@"`
	Then []*Statement `parser:"'{' @@* '}'"`
	Else []*Statement `parser:"( 'else' '{' @@* '}' )?"`
}

type Assign struct {
	Name string `parser:"@Ident"`
	Expr *Expr  `parser:"'=' @@"`
}

type Cond struct {
	Not      bool    `parser:"@'not'?"`
	Obstacle *string `parser:"(   'obstacle' @('LEFT'|'RIGHT'|'FORWARD')"`
	Clean    bool    `parser:"  | @'clean'"`
	Goal     bool    `parser:"  | @'goal' )"`
}

type Expr struct {
	Left *Term     `parser:"@@"`
	Rest []*OpTerm `parser:"@@*"`
}

type OpTerm struct {
	Op    string `parser:"@('+'|'-')"`
	Right *Term  `parser:"@@"`
}

type Term struct {
	Neg    bool    `parser:"@'-'?"`
	Number *int    `parser:"( @Int"`
	Ident  *string `parser:"| @Ident )"`
}

var parser = participle.MustBuild[Program](
	participle.Unquote("String"),
	participle.UseLookahead(2),
)

func Parse(data string) (*Program, error) {
	return parser.ParseString("input", data)
}

// RuntimeError locates a failure in the script source.
type RuntimeError struct {
	Pos lexer.Position
	Err error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %v", e.Pos, e.Err)
}

func (e *RuntimeError) Unwrap() error { return e.Err }

// at attaches pos to err unless an inner statement already did.
func at(pos lexer.Position, err error) error {
	if err == nil {
		return nil
	}
	var re *RuntimeError
	if errors.As(err, &re) {
		return err
	}
	return &RuntimeError{Pos: pos, Err: err}
}
