package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// BuildDate: Binary file compilation time
// BuildVersion: Binary compiled GIT version
var (
	BuildDate    string
	BuildVersion string
)

func main() {
	app := newEnv(os.Stdin, os.Stdout, os.Stderr).app()
	if err := app.Run(os.Args); err != nil {
		if coder, ok := err.(cli.ExitCoder); ok {
			if msg := coder.Error(); msg != "" {
				logrus.Error(msg)
			}
			os.Exit(coder.ExitCode())
		}
		logrus.Errorf("failed to run application: %v", err)
		os.Exit(1)
	}
}
