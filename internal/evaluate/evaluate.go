// Package evaluate turns an expression config into views and renders them.
package evaluate

import (
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"lazyseq/internal/exprconf"
	"lazyseq/powerseries"
	"lazyseq/seqs"
	"lazyseq/views"
)

// ErrUnknownExpr is returned by Run for a requested name the config does not define.
var ErrUnknownExpr = errors.New("unknown expression")

// Result is the rendering of one expression.
type Result struct {
	Name        string
	Op          exprconf.Op
	Rendering   string
	Cardinality views.Cardinality
	// Truncated is set when only the first Terms coefficients were rendered.
	Truncated bool
	Terms     int
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithLogger sets the logger evaluation steps are reported to.
func WithLogger(l *logrus.Logger) Option {
	return func(e *Evaluator) {
		e.log = l
	}
}

// WithTerms overrides the term count of the config and of every expression.
func WithTerms(n int) Option {
	return func(e *Evaluator) {
		e.terms = n
	}
}

// WithReverse renders every expression in descending powers.
func WithReverse(reverse bool) Option {
	return func(e *Evaluator) {
		e.reverse = reverse
	}
}

// Evaluator holds the views built so far, keyed by series or expression name.
type Evaluator struct {
	cfg     *exprconf.Config
	log     *logrus.Logger
	terms   int
	reverse bool
	env     map[string]views.View[float64]
}

// New builds a view for every series in cfg. cfg is expected to be validated.
func New(cfg *exprconf.Config, opts ...Option) (*Evaluator, error) {
	e := &Evaluator{
		cfg: cfg,
		env: make(map[string]views.View[float64], len(cfg.Series)+len(cfg.Exprs)),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		// silent unless the caller asks for logs
		e.log = logrus.New()
		e.log.SetOutput(io.Discard)
	}

	for _, name := range cfg.SeriesNames() {
		v, err := source(cfg.Series[name])
		if err != nil {
			return nil, errors.Wrapf(err, "series %q", name)
		}
		e.log.WithFields(logrus.Fields{
			"series":      name,
			"kind":        cfg.Series[name].Kind(),
			"cardinality": v.Cardinality().String(),
			"capability":  v.Capability().String(),
		}).Debug("built series")
		e.env[name] = v
	}
	return e, nil
}

func source(src exprconf.Source) (views.View[float64], error) {
	switch src.Kind() {
	case "coefficients":
		if src.List {
			return views.NewList(src.Coefficients...), nil
		}
		return views.FromSlice(src.Coefficients), nil
	case "iota":
		return views.Iota(*src.Iota), nil
	case "cycle":
		c, err := views.Cycle[float64](views.FromSlice(src.Cycle))
		if err != nil {
			return nil, err
		}
		return c, nil
	case "geometric":
		g := *src.Geometric
		next := func(x float64) float64 { return x * g.Ratio }
		if g.Limit > 0 {
			return views.IterateN(next, g.Seed, g.Limit), nil
		}
		return views.Iterate(next, g.Seed), nil
	default:
		return nil, errors.Wrap(exprconf.ErrInvalid, "source has no single kind")
	}
}

// Run evaluates the config's expressions in order and returns the results for names, or for
// every expression when names is empty. Expressions are evaluated even when not requested,
// since later ones may refer to them.
func (e *Evaluator) Run(names ...string) ([]Result, error) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	for n := range want {
		if !e.defines(n) {
			return nil, errors.Wrapf(ErrUnknownExpr, "%q", n)
		}
	}

	var results []Result
	for _, x := range e.cfg.Exprs {
		if len(want) > 0 && !want[x.Name] {
			if _, err := e.Eval(x); err != nil {
				return nil, err
			}
			continue
		}
		res, err := e.Eval(x)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (e *Evaluator) defines(name string) bool {
	for _, x := range e.cfg.Exprs {
		if x.Name == name {
			return true
		}
	}
	return false
}

// Eval builds the view of x, binds it to x's name, and renders it.
func (e *Evaluator) Eval(x exprconf.Expr) (Result, error) {
	v, err := e.build(x)
	if err != nil {
		return Result{}, errors.Wrapf(err, "expr %q", x.Name)
	}
	e.env[x.Name] = v

	logger := e.log.WithFields(logrus.Fields{
		"expr":        x.Name,
		"op":          string(x.Op),
		"args":        strings.Join(x.Args, ","),
		"cardinality": v.Cardinality().String(),
		"capability":  v.Capability().String(),
	})
	logger.Debug("built expression")

	res, err := e.render(x, v)
	if err != nil {
		return Result{}, errors.Wrapf(err, "expr %q", x.Name)
	}
	logger.WithField("truncated", res.Truncated).Debug("rendered expression")
	return res, nil
}

func (e *Evaluator) build(x exprconf.Expr) (views.View[float64], error) {
	args := make([]views.View[float64], len(x.Args))
	for i, name := range x.Args {
		v, ok := e.env[name]
		if !ok {
			return nil, errors.Wrapf(exprconf.ErrInvalid, "undefined argument %q", name)
		}
		args[i] = v
	}

	switch x.Op {
	case exprconf.OpShow:
		return args[0], nil
	case exprconf.OpNeg:
		return powerseries.Negate(args[0]), nil
	case exprconf.OpAdd:
		return powerseries.Add(args[0], args[1]), nil
	case exprconf.OpSub:
		return powerseries.Subtract(args[0], args[1]), nil
	case exprconf.OpMul:
		p, err := powerseries.Multiply(args[0], args[1])
		if err != nil {
			return nil, err
		}
		return p, nil
	case exprconf.OpPow:
		return powerseries.Pow(args[0], *x.Power)
	case exprconf.OpDiff:
		return powerseries.Differentiate(args[0]), nil
	case exprconf.OpInt:
		return powerseries.Integrate(args[0]), nil
	case exprconf.OpScale:
		return powerseries.Scale(args[0], *x.Factor), nil
	case exprconf.OpSums:
		return powerseries.PartialSums(args[0], *x.At), nil
	case exprconf.OpEval:
		// rendered from the series itself; see render
		return args[0], nil
	default:
		return nil, errors.Wrapf(exprconf.ErrInvalid, "unknown op %q", x.Op)
	}
}

func (e *Evaluator) termCount(x exprconf.Expr) int {
	if e.terms > 0 {
		return e.terms
	}
	return x.TermCount(e.cfg.TermCount())
}

func (e *Evaluator) render(x exprconf.Expr, v views.View[float64]) (Result, error) {
	terms := e.termCount(x)
	res := Result{
		Name:        x.Name,
		Op:          x.Op,
		Cardinality: v.Cardinality(),
		Terms:       terms,
	}

	if x.Op == exprconf.OpEval {
		res.Rendering = formatFloat(powerseries.Evaluate(v, *x.At, terms))
		res.Truncated = !fitsIn(v, terms)
		return res, nil
	}

	bounded := v
	if !fitsIn(v, terms) {
		bounded = powerseries.Partial(v, terms)
		res.Truncated = true
	}

	if x.Op == exprconf.OpSums {
		sums := seqs.Map(views.All(bounded), formatFloat)
		res.Rendering = strings.Join(slices.Collect(sums), ", ")
		return res, nil
	}

	if !(x.Reverse || e.reverse) {
		str, err := powerseries.ToString(bounded)
		if err != nil {
			return res, err
		}
		res.Rendering = str
		return res, nil
	}

	// a single-pass prefix (a geometric series) cannot be walked backward; it is
	// materialized first
	if _, ok := bounded.End(); !ok || bounded.Capability() < views.Bidirectional {
		coeffs, err := views.Collect(bounded)
		if err != nil {
			return res, err
		}
		bounded = views.FromSlice(coeffs)
	}
	str, err := powerseries.ToStringReverse(bounded)
	if err != nil {
		return res, err
	}
	res.Rendering = str
	return res, nil
}

// fitsIn reports whether v is known to have at most n elements.
func fitsIn(v views.View[float64], n int) bool {
	size, ok := v.Cardinality().Size()
	return ok && size <= n
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
