package exprconf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lazyseq/internal/exprconf"
)

const sample = `
terms = 5

[series.naturals]
iota = 1

[series.binomial]
coefficients = [1, 1]
list = true

[series.alternating]
cycle = [1, -1]

[series.halves]
geometric = { seed = 1, ratio = 0.5, limit = 4 }

[[expr]]
name = "square"
op = "mul"
args = ["binomial", "binomial"]
reverse = true

[[expr]]
name = "half"
op = "scale"
args = ["square"]
factor = 0.5

[[expr]]
name = "plain"
args = ["naturals"]
terms = 3
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "series.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestFromFile(t *testing.T) {
	cfg, err := exprconf.FromFile(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.TermCount())
	assert.Equal(t, []string{"alternating", "binomial", "halves", "naturals"}, cfg.SeriesNames())

	assert.Equal(t, "iota", cfg.Series["naturals"].Kind())
	assert.Equal(t, 1.0, *cfg.Series["naturals"].Iota)
	assert.Equal(t, "coefficients", cfg.Series["binomial"].Kind())
	assert.True(t, cfg.Series["binomial"].List)
	assert.Equal(t, []float64{1, -1}, cfg.Series["alternating"].Cycle)
	assert.Equal(t, &exprconf.Geometric{Seed: 1, Ratio: 0.5, Limit: 4}, cfg.Series["halves"].Geometric)

	require.Len(t, cfg.Exprs, 3)
	assert.Equal(t, exprconf.OpMul, cfg.Exprs[0].Op)
	assert.True(t, cfg.Exprs[0].Reverse)
	assert.Equal(t, 0.5, *cfg.Exprs[1].Factor)
	assert.Equal(t, exprconf.OpShow, cfg.Exprs[2].Op, "op defaults to show")
	assert.Equal(t, 3, cfg.Exprs[2].TermCount(cfg.TermCount()))
	assert.Equal(t, 5, cfg.Exprs[0].TermCount(cfg.TermCount()))
}

func TestFromFile_Defaults(t *testing.T) {
	cfg, err := exprconf.FromFile(writeConfig(t, "[series.a]\ncoefficients = [1]\n"))
	require.NoError(t, err)
	assert.Equal(t, exprconf.DefaultTerms, cfg.TermCount())
	assert.Empty(t, cfg.Exprs)
}

func TestFromFile_Missing(t *testing.T) {
	_, err := exprconf.FromFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		toml    string
		invalid bool
	}{
		{"Syntax", "terms = [", false},
		{"UnknownKey", "colour = 1\n", true},
		{"UnknownSeriesKey", "[series.a]\ncoefs = [1]\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := exprconf.NewConfig([]byte(tt.toml))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, exprconf.ErrInvalid)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		toml string
		msg  string
	}{
		{"NonPositiveTerms", "terms = 0\n", "terms must be positive"},
		{"NoKind", "[series.a]\nlist = true\n", `series "a"`},
		{"TwoKinds", "[series.a]\niota = 1\ncycle = [1]\n", `series "a"`},
		{"ListOnIota", "[series.a]\niota = 1\nlist = true\n", "list applies to coefficients only"},
		{"EmptyCycle", "[series.a]\ncycle = []\n", `series "a"`},
		{"NegativeLimit", "[series.a]\ngeometric = { seed = 1, ratio = 2, limit = -1 }\n", "negative geometric limit"},
		{"UnnamedExpr", "[[expr]]\nop = \"neg\"\nargs = []\n", "has no name"},
		{"UnknownOp", "[series.a]\niota = 1\n[[expr]]\nname = \"x\"\nop = \"root\"\nargs = [\"a\"]\n", "unknown op"},
		{"Arity", "[series.a]\niota = 1\n[[expr]]\nname = \"x\"\nop = \"add\"\nargs = [\"a\"]\n", "takes 2 argument(s)"},
		{"Undefined", "[[expr]]\nname = \"x\"\nop = \"neg\"\nargs = [\"a\"]\n", `undefined argument "a"`},
		{"ForwardReference", "[series.a]\niota = 1\n[[expr]]\nname = \"x\"\nop = \"neg\"\nargs = [\"y\"]\n[[expr]]\nname = \"y\"\nop = \"neg\"\nargs = [\"a\"]\n", `undefined argument "y"`},
		{"Shadowing", "[series.a]\niota = 1\n[[expr]]\nname = \"a\"\nop = \"neg\"\nargs = [\"a\"]\n", "already defined"},
		{"ScaleWithoutFactor", "[series.a]\niota = 1\n[[expr]]\nname = \"x\"\nop = \"scale\"\nargs = [\"a\"]\n", "needs a factor"},
		{"NegativePower", "[series.a]\niota = 1\n[[expr]]\nname = \"x\"\nop = \"pow\"\nargs = [\"a\"]\npower = -2\n", "non-negative power"},
		{"EvalWithoutPoint", "[series.a]\niota = 1\n[[expr]]\nname = \"x\"\nop = \"eval\"\nargs = [\"a\"]\n", "needs a point"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := exprconf.NewConfig([]byte(tt.toml))
			require.NoError(t, err)
			err = cfg.WithDefaultsFilledIn().Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, exprconf.ErrInvalid)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
