package interpreter

import (
	"fmt"
	"strconv"
	"strings"

	"cleaningrobot/internal/cleaning"
)

func (p *Program) Exec(ctx *Context) error {
	return execBlock(ctx, p.Statements)
}

func execBlock(ctx *Context, stmts []*Statement) error {
	for _, stmt := range stmts {
		if err := stmt.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Statement) Exec(ctx *Context) error {
	if err := ctx.tick(); err != nil {
		return at(s.Pos, err)
	}
	return at(s.Pos, s.exec(ctx))
}

func (s *Statement) exec(ctx *Context) error {
	switch {
	case s.Move != nil:
		ctx.Model.MoveDirection(cleaning.Direction(s.Move.Dir))
		ctx.moved()
	case s.Forward != nil:
		steps := 1
		if s.Forward.Steps != nil {
			v, err := s.Forward.Steps.Eval(ctx)
			if err != nil {
				return err
			}
			steps = v
		}
		// each attempt costs one step
		for i := 0; i < steps; i++ {
			if err := ctx.tick(); err != nil {
				return err
			}
			ctx.Model.MoveForward(1)
		}
		ctx.moved()
	case s.Turn != nil:
		v, err := s.Turn.Delta.Eval(ctx)
		if err != nil {
			return err
		}
		ctx.Model.Turn(v)
		ctx.moved()
	case s.Face != nil:
		v, err := s.Face.Angle.Eval(ctx)
		if err != nil {
			return err
		}
		ctx.Model.MoveRobotAngle(v)
		ctx.moved()
	case s.Say != nil:
		return s.Say.exec(ctx)
	case s.Read != nil:
		line, err := ctx.nextInput()
		if err != nil {
			return err
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return fmt.Errorf("read %s: %w", s.Read.Name, err)
		}
		ctx.Env.Set(s.Read.Name, v)
	case s.Repeat != nil:
		n, err := s.Repeat.Count.Eval(ctx)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := ctx.tick(); err != nil {
				return err
			}
			if err := execBlock(ctx, s.Repeat.Body); err != nil {
				return err
			}
		}
	case s.While != nil:
		for s.While.Cond.Eval(ctx) {
			// an empty body must still consume budget
			if err := ctx.tick(); err != nil {
				return err
			}
			if err := execBlock(ctx, s.While.Body); err != nil {
				return err
			}
		}
	case s.If != nil:
		if s.If.Cond.Eval(ctx) {
			return execBlock(ctx, s.If.Then)
		}
		return execBlock(ctx, s.If.Else)
	case s.Assign != nil:
		val, err := s.Assign.Expr.Eval(ctx)
		if err != nil {
			return err
		}
		ctx.Env.Set(s.Assign.Name, val)
	}
	return nil
}

func (s *Say) exec(ctx *Context) error {
	if s.Text != nil {
		_, err := fmt.Fprintln(ctx.Output, *s.Text)
		return err
	}
	v, err := s.Value.Eval(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.Output, v)
	return err
}

func (c *Cond) Eval(ctx *Context) bool {
	var res bool
	switch {
	case c.Obstacle != nil:
		res = ctx.Model.HasObstacleAtDirection(*c.Obstacle)
	case c.Clean:
		res = ctx.Model.IsFloorClean()
	case c.Goal:
		res = ctx.Model.HasRobotReachedGoalPosition()
	}
	return res != c.Not
}

func (e *Expr) Eval(ctx *Context) (int, error) {
	val, err := e.Left.Eval(ctx)
	if err != nil {
		return 0, err
	}
	for _, rt := range e.Rest {
		v, err := rt.Right.Eval(ctx)
		if err != nil {
			return 0, err
		}
		switch rt.Op {
		case "+":
			val += v
		case "-":
			val -= v
		}
	}
	return val, nil
}

func (t *Term) Eval(ctx *Context) (int, error) {
	var v int
	switch {
	case t.Number != nil:
		v = *t.Number
	case t.Ident != nil:
		var err error
		if v, err = ctx.Env.Lookup(*t.Ident); err != nil {
			return 0, err
		}
	default:
		return 0, fmt.Errorf("invalid term")
	}
	if t.Neg {
		v = -v
	}
	return v, nil
}
