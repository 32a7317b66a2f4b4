package rcctl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"rcwebui/internal/settings"
	"rcwebui/pkg/rclone"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

// EnvPassword is read by 'rcctl login URL USER' instead of prompting
const EnvPassword = "RCCTL_PASSWORD"

var cmdLogin = &cli.Command{
	Name:      "login",
	Usage:     "Store the rc daemon address and credentials",
	UsageText: "rcctl login [OPTIONS..] URL [USER]",
	Action:    execLogin,
	Category:  categorySession,
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "no-verify", Usage: "store the login without contacting the daemon"},
	},
	Description: `Saves URL and the credentials to the settings database (see --db). Later
commands talk to this daemon until 'rcctl logout' is run.

If USER is given, the password is read from the terminal (or from RCCTL_PASSWORD).
Without USER the global --auth-key is stored as is, or no credentials at all.

The daemon is asked for its version before anything is written, unless
--no-verify is passed.

Examples:
  rcctl login http://localhost:5572             # No authentication
  rcctl login http://nas:5572 admin             # Prompts for the password
  rcctl --auth-key dXNlcjpwYXNz login http://nas:5572`,
}

var cmdLogout = &cli.Command{
	Name:      "logout",
	Usage:     "Forget the stored rc daemon address and credentials",
	UsageText: "rcctl logout",
	Action:    execLogout,
	Category:  categorySession,
}

func execLogin(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("missing daemon URL, see --help for usage details")
	}
	url := c.Args().Get(0)

	authKey := c.String("auth-key")
	if c.NArg() > 1 {
		if authKey != "" {
			return errors.New("cannot use both USER and --auth-key")
		}
		password, err := loginPassword(c)
		if err != nil {
			return err
		}
		authKey = settings.EncodeAuthKey(c.Args().Get(1), string(password))
	}

	if !c.Bool("no-verify") {
		client := rclone.NewClient(rclone.StaticEndpoint{URL: url, AuthKey: authKey},
			rclone.WithTimeout(c.Duration("timeout")),
			rclone.WithLogger(newLogger(c)),
		)
		version, err := client.GetRcloneVersion(c.Context)
		if err != nil {
			return fmt.Errorf("failed to reach %s: %w", url, explain(err))
		}
		fmt.Fprintf(c.App.ErrWriter, "Connected to rclone %s\n", version.Version)
	}

	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveLogin(url, authKey); err != nil {
		return err
	}
	fmt.Fprintf(c.App.ErrWriter, "Login saved to %s\n", c.String("db"))
	return nil
}

func execLogout(c *cli.Context) error {
	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.ClearLogin(); err != nil {
		return err
	}
	fmt.Fprintln(c.App.ErrWriter, "Logged out")
	return nil
}

func loginPassword(c *cli.Context) ([]byte, error) {
	if password := os.Getenv(EnvPassword); password != "" {
		return []byte(password), nil
	}
	fmt.Fprint(c.App.ErrWriter, "Password: ")
	password, err := readPassword(c.App.Reader)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(c.App.ErrWriter)
	return password, nil
}

// readPassword reads a password without echo when in is a terminal and
// falls back to reading a line otherwise.
func readPassword(in io.Reader) ([]byte, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return term.ReadPassword(int(f.Fd()))
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}
