package exprconf

import "github.com/pkg/errors"

// Op is a power-series operation.
type Op string

const (
	OpShow  Op = "show"
	OpNeg   Op = "neg"
	OpAdd   Op = "add"
	OpSub   Op = "sub"
	OpMul   Op = "mul"
	OpPow   Op = "pow"
	OpDiff  Op = "diff"
	OpInt   Op = "int"
	OpScale Op = "scale"
	OpSums  Op = "sums"
	OpEval  Op = "eval"
)

var arity = map[Op]int{
	OpShow:  1,
	OpNeg:   1,
	OpAdd:   2,
	OpSub:   2,
	OpMul:   2,
	OpPow:   1,
	OpDiff:  1,
	OpInt:   1,
	OpScale: 1,
	OpSums:  1,
	OpEval:  1,
}

// Expr is one named expression. Args name series or earlier expressions.
type Expr struct {
	Name string   `toml:"name"`
	Op   Op       `toml:"op"`
	Args []string `toml:"args"`
	// Reverse renders in descending powers.
	Reverse bool `toml:"reverse"`
	// Terms overrides the file-wide term count for this expression.
	Terms *int `toml:"terms"`
	// Factor is the multiplier of scale.
	Factor *float64 `toml:"factor"`
	// Power is the exponent of pow.
	Power *int `toml:"power"`
	// At is the point sums and eval are evaluated at.
	At *float64 `toml:"at"`
}

// TermCount returns the expression's own term count, or fallback.
func (x Expr) TermCount(fallback int) int {
	if x.Terms == nil {
		return fallback
	}
	return *x.Terms
}

func (x Expr) validate() error {
	n, ok := arity[x.Op]
	if !ok {
		return errors.Wrapf(ErrInvalid, "unknown op %q", x.Op)
	}
	if len(x.Args) != n {
		return errors.Wrapf(ErrInvalid, "op %s takes %d argument(s), got %d", x.Op, n, len(x.Args))
	}
	if x.Terms != nil && *x.Terms <= 0 {
		return errors.Wrapf(ErrInvalid, "terms must be positive, got %d", *x.Terms)
	}
	switch x.Op {
	case OpScale:
		if x.Factor == nil {
			return errors.Wrap(ErrInvalid, "scale needs a factor")
		}
	case OpPow:
		if x.Power == nil || *x.Power < 0 {
			return errors.Wrap(ErrInvalid, "pow needs a non-negative power")
		}
	case OpSums, OpEval:
		if x.At == nil {
			return errors.Wrapf(ErrInvalid, "%s needs a point to evaluate at", x.Op)
		}
	}
	return nil
}
