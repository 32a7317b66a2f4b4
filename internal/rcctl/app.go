// Package rcctl provides the rcctl CLI application
package rcctl

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"rcwebui/internal/settings"
	"rcwebui/pkg/rclone"

	"github.com/urfave/cli/v2"
)

const (
	categorySession = "Session commands"
	categoryCore    = "Daemon commands"
	categoryRemote  = "Remote commands"
	categoryFiles   = "File commands"
)

// Environment variables mirrored by the global flags
const (
	EnvDB      = "RCCTL_DB"
	EnvURL     = "RCCTL_URL"
	EnvAuthKey = "RCCTL_AUTH_KEY"
)

var flagsGlobal = []cli.Flag{
	&cli.StringFlag{Name: "db", EnvVars: []string{EnvDB}, Value: defaultDBPath(), Usage: "settings database written by 'rcctl login'"},
	&cli.StringFlag{Name: "url", EnvVars: []string{EnvURL}, Usage: "rc daemon address, overrides the stored login"},
	&cli.StringFlag{Name: "auth-key", EnvVars: []string{EnvAuthKey}, Usage: "base64 user:password for --url"},
	&cli.DurationFlag{Name: "timeout", Value: rclone.DefaultTimeout, Usage: "timeout for each rc call"},
	&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log every rc call to stderr"},
}

// New creates a new CLI application
func New() *cli.App {
	return &cli.App{
		Name:                   "rcctl",
		Usage:                  "talk to a running rclone rc daemon",
		UsageText:              "rcctl [OPTION..] COMMAND [ARG..]",
		HideVersion:            true,
		EnableBashCompletion:   true,
		UseShortOptionHandling: true,
		Reader:                 os.Stdin,
		Writer:                 os.Stdout,
		ErrWriter:              os.Stderr,
		Flags:                  flagsGlobal,
		Commands: []*cli.Command{
			// Session
			cmdLogin,
			cmdLogout,

			// Daemon
			cmdStats,
			cmdBandwidth,
			cmdVersion,
			cmdJobs,
			cmdJob,
			cmdStop,

			// Remotes
			cmdRemotes,
			cmdProviders,
			cmdDump,
			cmdFsInfo,

			// Files
			cmdList,
			cmdLink,
			cmdURL,
			cmdPurge,
			cmdDelete,
			cmdCleanup,
			cmdBackend,
		},
	}
}

// Run runs the CLI application with the given arguments
func Run(app *cli.App, args ...string) error {
	return app.Run(args)
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "rcctl.db"
	}
	return filepath.Join(dir, "rcctl", "settings.db")
}

// openStore opens the settings database named by --db, creating its
// directory if needed. The caller closes the store.
func openStore(c *cli.Context) (*settings.Store, error) {
	path := c.String("db")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create settings directory: %w", err)
	}
	return settings.New(path)
}

// newClient builds a client that prefers --url over the stored login. The
// returned close func releases the settings database.
func newClient(c *cli.Context) (*rclone.Client, func(), error) {
	store, err := openStore(c)
	if err != nil {
		return nil, nil, err
	}

	client := rclone.NewClient(endpointSource(c, store),
		rclone.WithTimeout(c.Duration("timeout")),
		rclone.WithLogger(newLogger(c)),
	)
	return client, func() { store.Close() }, nil
}

func endpointSource(c *cli.Context, store *settings.Store) rclone.EndpointSource {
	if url := c.String("url"); url != "" {
		return rclone.ChainEndpoints(rclone.StaticEndpoint{URL: url, AuthKey: c.String("auth-key")}, store)
	}
	return store
}

func newLogger(c *cli.Context) *slog.Logger {
	level := slog.LevelWarn
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level}))
}

// withClient runs fn with a client and turns known client errors into
// messages a user can act on.
func withClient(c *cli.Context, fn func(client *rclone.Client) error) error {
	client, closeFn, err := newClient(c)
	if err != nil {
		return err
	}
	defer closeFn()
	return explain(fn(client))
}

func explain(err error) error {
	var httpErr *rclone.HTTPError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, rclone.ErrNoEndpoint):
		return errors.New("not logged in, run 'rcctl login URL' or pass --url")
	case errors.As(err, &httpErr):
		var body struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(httpErr.Body, &body) == nil && body.Error != "" {
			return fmt.Errorf("rc error (HTTP %d): %s", httpErr.StatusCode, body.Error)
		}
		return err
	default:
		return err
	}
}

func printJSON(c *cli.Context, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, string(b))
	return err
}

func parseJobID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid job id %q", s)
	}
	return id, nil
}
