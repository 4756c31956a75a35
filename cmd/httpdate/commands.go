package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/urfave/cli"

	"github.com/shapestone/shape-httpdate/internal/config"
	"github.com/shapestone/shape-httpdate/pkg/httpdate"
)

func (e *env) parse(c *cli.Context) error {
	var total, failed int

	if c.NArg() > 0 {
		for _, arg := range c.Args() {
			total++
			d, ok := e.parseArg(arg)
			if !ok {
				failed++
				continue
			}
			fmt.Fprintln(e.out, e.render(d))
		}
		return summarize(total, failed)
	}

	e.noteStdin()
	dec := httpdate.NewDecoder(e.in)
	if e.cfg.Parse.Lenient {
		dec.UseLenient()
	}
	if !e.cfg.Parse.Trim {
		dec.KeepSpace()
	}
	for {
		d, err := dec.Decode()
		if err == io.EOF {
			break
		}
		total++
		line := e.log.WithField("line", dec.Line())
		for _, w := range dec.Warnings() {
			line.Warn(w)
		}
		if errors.Is(err, httpdate.ErrInvalidDate) {
			line.Error("invalid date")
			failed++
			continue
		}
		if err != nil {
			return errors.Wrap(err, "read stdin")
		}
		line.WithField("unix", d.Unix()).Debug("parsed")
		fmt.Fprintln(e.out, e.render(d))
	}
	return summarize(total, failed)
}

// parseArg parses one command-line date, logging why it failed if it did.
func (e *env) parseArg(arg string) (httpdate.HttpDate, bool) {
	log := e.log.WithField("input", arg)
	if !e.cfg.Parse.Trim && strings.TrimSpace(arg) != arg {
		log.Error("surrounding whitespace is not allowed with parse.trim=false")
		return httpdate.HttpDate{}, false
	}

	if e.cfg.Parse.Lenient {
		r := httpdate.ParseLenient(arg)
		for _, w := range r.Warnings {
			log.Warn(w)
		}
		if !r.OK {
			log.Error("invalid date")
			return httpdate.HttpDate{}, false
		}
		return r.Date, true
	}

	d, err := httpdate.ParseString(arg)
	if err != nil {
		log.Error(err)
		return httpdate.HttpDate{}, false
	}
	log.WithField("unix", d.Unix()).Debug("parsed")
	return d, true
}

func (e *env) format(c *cli.Context) error {
	var total, failed int
	enc := httpdate.NewEncoder(e.out)

	err := e.eachInput(c, func(s string) error {
		total++
		log := e.log.WithField("input", s)
		sec, err := cast.ToInt64E(strings.TrimSpace(s))
		if err != nil {
			log.Error("not a number of seconds")
			failed++
			return nil
		}
		if err := enc.Encode(sec); err != nil {
			if err == httpdate.ErrOutOfRange {
				log.Error(err)
				failed++
				return nil
			}
			return errors.Wrap(err, "write")
		}
		log.Debug("formatted")
		return nil
	})
	if err != nil {
		return err
	}
	return summarize(total, failed)
}

func (e *env) now(c *cli.Context) error {
	clock, err := httpdate.NewClock(e.clock, e.cfg.Clock.CacheSize)
	if err != nil {
		return errors.Wrap(err, "clock")
	}
	defer clock.Close()

	s := clock.String()
	if e.cfg.Output.Format != config.OutputIMF {
		d, err := httpdate.ParseString(s)
		if err != nil {
			return errors.Wrapf(err, "clock produced %q", s)
		}
		s = e.render(d)
	}
	fmt.Fprintln(e.out, s)
	e.log.WithField("stats", clock.Stats()).Debug("clock")
	return nil
}

func (e *env) validate(c *cli.Context) error {
	var total, failed int

	err := e.eachInput(c, func(s string) error {
		total++
		err := httpdate.Validate(s)
		if err == nil && !e.cfg.Parse.Trim && strings.TrimSpace(s) != s {
			err = httpdate.ErrInvalidDate
		}
		if err != nil {
			failed++
			e.log.WithField("input", s).Debug(err)
			fmt.Fprintln(e.out, "invalid")
			return nil
		}
		fmt.Fprintln(e.out, "ok")
		return nil
	})
	if err != nil {
		return err
	}
	return summarize(total, failed)
}

func (e *env) ast(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("ast: expected exactly one date argument", 2)
	}

	node, err := httpdate.ParseAST(c.Args().First())
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	out, err := json.MarshalIndent(httpdate.NodeToInterface(node), "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode ast")
	}
	fmt.Fprintln(e.out, string(out))
	return nil
}

// eachInput calls fn for every argument, or for every non-blank stdin line
// when there are no arguments.
func (e *env) eachInput(c *cli.Context, fn func(string) error) error {
	if c.NArg() > 0 {
		for _, arg := range c.Args() {
			if err := fn(arg); err != nil {
				return err
			}
		}
		return nil
	}

	e.noteStdin()
	sc := bufio.NewScanner(e.in)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return errors.Wrap(sc.Err(), "read stdin")
}

func (e *env) noteStdin() {
	if stdinIsTerminal(e.in) {
		e.log.Info("reading from stdin, one value per line")
	}
}

func summarize(total, failed int) error {
	if failed == 0 {
		return nil
	}
	return cli.NewExitError(fmt.Sprintf("%d of %d inputs invalid", failed, total), 1)
}
