package main

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli"

	"github.com/shapestone/shape-httpdate/internal/config"
	"github.com/shapestone/shape-httpdate/pkg/httpdate"
)

// env is the state shared by all commands of one run.
type env struct {
	in    io.Reader
	out   io.Writer
	log   *logrus.Logger
	cfg   *config.Config
	clock func() time.Time
}

func newEnv(in io.Reader, out, errOut io.Writer) *env {
	e := &env{in: in, out: out, log: logrus.New(), clock: time.Now}
	e.log.Out = errOut
	return e
}

// app builds the command-line application around e.
func (e *env) app() *cli.App {
	app := cli.NewApp()
	app.Name = "httpdate"
	app.Usage = "parse, format and validate HTTP-dates"
	app.Description = "httpdate converts between Unix time and the IMF-fixdate, RFC 850 and asctime formats used in HTTP headers."
	app.Version = version()
	app.Writer = e.out
	app.ErrWriter = e.log.Out
	// main maps ExitCoder errors to exit codes, so tests can run commands
	// without the process exiting.
	app.ExitErrHandler = func(*cli.Context, error) {}

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "config file (yaml, json or toml)",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: debug,info,warning,error",
		},
		cli.BoolFlag{
			Name:  "lenient",
			Usage: "accept malformed dates the lenient parser can recover",
		},
		cli.StringFlag{
			Name:  "output, o",
			Usage: "output format: imf, unix or rfc3339",
		},
	}
	app.Before = e.init
	app.Commands = []cli.Command{
		{
			Name:            "parse",
			Usage:           "parse dates from the arguments or stdin, one per line",
			ArgsUsage:       "[date...]",
			SkipFlagParsing: true,
			Action:          e.parse,
		},
		{
			Name:            "format",
			Usage:           "format Unix seconds from the arguments or stdin as IMF-fixdate",
			ArgsUsage:       "[seconds...]",
			SkipFlagParsing: true,
			Action:          e.format,
		},
		{
			Name:   "now",
			Usage:  "print the current date",
			Action: e.now,
		},
		{
			Name:            "validate",
			Usage:           "report whether each date is valid",
			ArgsUsage:       "[date...]",
			SkipFlagParsing: true,
			Action:          e.validate,
		},
		{
			Name:            "ast",
			Usage:           "print the AST of a date as JSON",
			ArgsUsage:       "date",
			SkipFlagParsing: true,
			Action:          e.ast,
		},
	}
	return app
}

func version() string {
	if BuildVersion == "" {
		return "dev"
	}
	if BuildDate == "" {
		return BuildVersion
	}
	return BuildVersion + " (" + BuildDate + ")"
}

// init loads the configuration, applies flag overrides and sets up logging.
func (e *env) init(c *cli.Context) error {
	cfg, err := config.Load(viper.New(), c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("lenient") {
		cfg.Parse.Lenient = c.Bool("lenient")
	}
	if c.IsSet("output") {
		cfg.Output.Format = c.String("output")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lv, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return errors.Wrap(err, "log.level")
	}
	e.log.SetLevel(lv)
	if cfg.Log.Format == config.LogJSON {
		e.log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		e.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	e.cfg = cfg
	e.log.WithFields(logrus.Fields{
		"config":  c.String("config"),
		"lenient": cfg.Parse.Lenient,
		"output":  cfg.Output.Format,
	}).Debug("configuration loaded")
	return nil
}

// render formats d per output.format.
func (e *env) render(d httpdate.HttpDate) string {
	switch e.cfg.Output.Format {
	case config.OutputUnix:
		return strconv.FormatInt(d.Unix(), 10)
	case config.OutputRFC3339:
		return d.Time().Format(time.RFC3339)
	}
	return d.String()
}

func stdinIsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
