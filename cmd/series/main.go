package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

// kingpinHandler runs a parsed command, writing results to out.
type kingpinHandler func(log *logrus.Logger, out io.Writer) error

// kingpinCommand registers a command and its flags on app.
type kingpinCommand func(app *kingpin.Application) (*kingpin.CmdClause, kingpinHandler)

var kingpinCommands = []kingpinCommand{
	runCommand,
	checkCommand,
}

func main() {
	if err := run(os.Args[1:], color.Output, os.Stderr); err != nil {
		fmt.Fprintln(color.Error, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

func run(args []string, out, logOut io.Writer) error {
	app := kingpin.New("series", "Evaluate power-series expressions over lazy sequence views.")
	app.HelpFlag.Short('h')

	// global flags
	verbose := app.Flag("verbose", "log evaluation steps").Short('v').Bool()
	noColor := app.Flag("no-color", "disable colored output").Bool()

	handlers := map[string]kingpinHandler{}
	for _, cmdFunction := range kingpinCommands {
		command, handler := cmdFunction(app)
		handlers[command.FullCommand()] = handler
	}

	input, err := app.Parse(args)
	if err != nil {
		return err
	}

	if *noColor {
		color.NoColor = true
	}

	handler, ok := handlers[input]
	if !ok {
		return errors.Errorf("unknown command %q", input)
	}
	return handler(newLogger(logOut, *verbose), out)
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    color.NoColor,
	})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
