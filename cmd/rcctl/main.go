package main

import (
	"fmt"
	"os"
	"runtime"

	"rcwebui/internal/rcctl"

	"github.com/urfave/cli/v2"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	cli.AppHelpTemplate += fmt.Sprintf(`
Try 'rcctl COMMAND --help' for more information.

rcctl %s (%s), runtime %s
`, version, commit, runtime.Version())

	app := rcctl.New()
	app.Version = version

	if err := rcctl.Run(app, os.Args...); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
