// Package exprconf loads the TOML file that declares the named series and the expressions
// evaluated over them.
//
//	terms = 8
//
//	[series.naturals]
//	iota = 1
//
//	[series.square]
//	coefficients = [1, 1]
//
//	[[expr]]
//	name = "sq"
//	op = "mul"
//	args = ["square", "square"]
//	reverse = true
package exprconf

import (
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// DefaultTerms is how many terms of an unbounded result are rendered when neither the file
// nor the expression says.
const DefaultTerms = 8

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid expression config")

// Config is the decoded expression file.
type Config struct {
	Terms  *int              `toml:"terms"`
	Series map[string]Source `toml:"series"`
	Exprs  []Expr            `toml:"expr"`
}

// Source declares one input series. Exactly one of its kinds must be set.
type Source struct {
	// Coefficients is a finite series, stored as a slice.
	Coefficients []float64 `toml:"coefficients"`
	// List stores Coefficients in a linked list instead, which is bidirectional but not
	// random access.
	List bool `toml:"list"`
	// Iota counts up from the given value forever.
	Iota *float64 `toml:"iota"`
	// Cycle repeats the given coefficients forever.
	Cycle []float64 `toml:"cycle"`
	// Geometric generates seed, seed*ratio, seed*ratio^2, ...
	Geometric *Geometric `toml:"geometric"`
}

// Geometric describes a geometric sequence source.
type Geometric struct {
	Seed  float64 `toml:"seed"`
	Ratio float64 `toml:"ratio"`
	// Limit bounds the sequence to that many terms; 0 leaves it infinite.
	Limit int `toml:"limit"`
}

// Kind names the populated field of a source, or "" when none or several are set.
func (s Source) Kind() string {
	var kinds []string
	if s.Coefficients != nil {
		kinds = append(kinds, "coefficients")
	}
	if s.Iota != nil {
		kinds = append(kinds, "iota")
	}
	if s.Cycle != nil {
		kinds = append(kinds, "cycle")
	}
	if s.Geometric != nil {
		kinds = append(kinds, "geometric")
	}
	if len(kinds) != 1 {
		return ""
	}
	return kinds[0]
}

// NewConfig decodes TOML data. Keys the config does not know are an error.
func NewConfig(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse expression config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.Wrapf(ErrInvalid, "unknown keys %v", keys)
	}
	return &cfg, nil
}

// FromFile reads, decodes, defaults and validates the config at path.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file '%s'", path)
	}
	cfg, err := NewConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load '%s'", path)
	}
	withDefaults := cfg.WithDefaultsFilledIn()
	if err := withDefaults.Validate(); err != nil {
		return nil, errors.Wrapf(err, "failed to load '%s'", path)
	}
	return &withDefaults, nil
}

// WithDefaultsFilledIn returns a copy of cfg with unset optional values defaulted.
func (cfg Config) WithDefaultsFilledIn() Config {
	withDefaults := cfg
	if withDefaults.Terms == nil {
		terms := DefaultTerms
		withDefaults.Terms = &terms
	}
	if withDefaults.Series == nil {
		withDefaults.Series = map[string]Source{}
	}
	withDefaults.Exprs = make([]Expr, len(cfg.Exprs))
	for i, x := range cfg.Exprs {
		if x.Op == "" {
			x.Op = OpShow
		}
		withDefaults.Exprs[i] = x
	}
	return withDefaults
}

// TermCount returns the configured term count, or DefaultTerms.
func (cfg Config) TermCount() int {
	if cfg.Terms == nil {
		return DefaultTerms
	}
	return *cfg.Terms
}

// SeriesNames returns the declared series names in sorted order.
func (cfg Config) SeriesNames() []string {
	names := make([]string, 0, len(cfg.Series))
	for name := range cfg.Series {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that every source has one kind, every expression has a known op with the
// right arguments, and every argument names a series or an earlier expression.
func (cfg Config) Validate() error {
	if cfg.Terms != nil && *cfg.Terms <= 0 {
		return errors.Wrapf(ErrInvalid, "terms must be positive, got %d", *cfg.Terms)
	}

	for _, name := range cfg.SeriesNames() {
		src := cfg.Series[name]
		if src.Kind() == "" {
			return errors.Wrapf(ErrInvalid, "series %q: set exactly one of coefficients, iota, cycle, geometric", name)
		}
		if src.List && src.Kind() != "coefficients" {
			return errors.Wrapf(ErrInvalid, "series %q: list applies to coefficients only", name)
		}
		if src.Cycle != nil && len(src.Cycle) == 0 {
			return errors.Wrapf(ErrInvalid, "series %q: cycle is empty", name)
		}
		if src.Geometric != nil && src.Geometric.Limit < 0 {
			return errors.Wrapf(ErrInvalid, "series %q: negative geometric limit", name)
		}
	}

	defined := make(map[string]bool, len(cfg.Series)+len(cfg.Exprs))
	for name := range cfg.Series {
		defined[name] = true
	}
	for i, x := range cfg.Exprs {
		if x.Name == "" {
			return errors.Wrapf(ErrInvalid, "expr #%d has no name", i+1)
		}
		if defined[x.Name] {
			return errors.Wrapf(ErrInvalid, "expr %q: name already defined", x.Name)
		}
		if err := x.validate(); err != nil {
			return errors.Wrapf(err, "expr %q", x.Name)
		}
		for _, arg := range x.Args {
			if !defined[arg] {
				return errors.Wrapf(ErrInvalid, "expr %q: undefined argument %q", x.Name, arg)
			}
		}
		defined[x.Name] = true
	}
	return nil
}
