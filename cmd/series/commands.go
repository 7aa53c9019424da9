package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"lazyseq/internal/evaluate"
	"lazyseq/internal/exprconf"
)

const defaultConfig = "series.toml"

var (
	nameColor = color.New(color.FgCyan, color.Bold)
	noteColor = color.New(color.Faint)
)

func runCommand(app *kingpin.Application) (*kingpin.CmdClause, kingpinHandler) {
	cmd := app.Command("run", "Evaluate the expressions of a config file (all of them unless named).").Default()
	cfgPath := cmd.Flag("config", "TOML file declaring series and expressions").Short('c').Default(defaultConfig).String()
	terms := cmd.Flag("terms", "terms to render for unbounded results, overriding the config").Short('n').Default("0").Int()
	reverse := cmd.Flag("reverse", "render in descending powers").Short('r').Bool()
	names := cmd.Arg("expr", "expressions to print").Strings()

	return cmd, func(log *logrus.Logger, out io.Writer) error {
		if *terms < 0 {
			return errors.Errorf("--terms must not be negative, got %d", *terms)
		}
		cfg, err := exprconf.FromFile(*cfgPath)
		if err != nil {
			return err
		}

		opts := []evaluate.Option{evaluate.WithLogger(log), evaluate.WithReverse(*reverse)}
		if *terms > 0 {
			opts = append(opts, evaluate.WithTerms(*terms))
		}
		e, err := evaluate.New(cfg, opts...)
		if err != nil {
			return errors.Wrapf(err, "failed to evaluate '%s'", *cfgPath)
		}
		results, err := e.Run(*names...)
		if err != nil {
			return errors.Wrapf(err, "failed to evaluate '%s'", *cfgPath)
		}
		log.WithField("results", len(results)).Debug("evaluation done")

		printResults(out, results)
		return nil
	}
}

func checkCommand(app *kingpin.Application) (*kingpin.CmdClause, kingpinHandler) {
	cmd := app.Command("check", "Validate a config file and list what it declares.")
	cfgPath := cmd.Flag("config", "TOML file declaring series and expressions").Short('c').Default(defaultConfig).String()

	return cmd, func(log *logrus.Logger, out io.Writer) error {
		cfg, err := exprconf.FromFile(*cfgPath)
		if err != nil {
			return err
		}
		for _, name := range cfg.SeriesNames() {
			fmt.Fprintf(out, "series %s (%s)\n", nameColor.Sprint(name), cfg.Series[name].Kind())
		}
		for _, x := range cfg.Exprs {
			fmt.Fprintf(out, "expr %s = %s(%s)\n", nameColor.Sprint(x.Name), x.Op, strings.Join(x.Args, ", "))
		}
		return nil
	}
}

func printResults(w io.Writer, results []evaluate.Result) {
	for _, r := range results {
		rendering := r.Rendering
		if rendering == "" {
			rendering = "0"
		}
		fmt.Fprintf(w, "%s = %s", nameColor.Sprint(r.Name), rendering)
		if r.Truncated {
			fmt.Fprint(w, noteColor.Sprintf("  (first %d terms of %s)", r.Terms, r.Cardinality))
		}
		fmt.Fprintln(w)
	}
}
