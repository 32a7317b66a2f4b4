package rcctl

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"rcwebui/pkg/rclone"

	"github.com/urfave/cli/v2"
)

var cmdList = &cli.Command{
	Name:      "ls",
	Usage:     "List a directory on a remote",
	UsageText: "rcctl ls [OPTIONS..] FS [PATH]",
	Action:    execList,
	Category:  categoryFiles,
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "recurse", Aliases: []string{"R"}, Usage: "list recursively"},
		&cli.BoolFlag{Name: "dirs-only", Usage: "only list directories"},
		&cli.BoolFlag{Name: "files-only", Usage: "only list files"},
		&cli.BoolFlag{Name: "no-mod-time", Usage: "do not read modification times"},
	},
	Description: `FS is a remote name ("gdrive", "gdrive:") or a local path. PATH is relative
to the root of FS and defaults to the root itself.`,
}

var cmdLink = &cli.Command{
	Name:      "link",
	Usage:     "Create a public link to a file or directory",
	UsageText: "rcctl link FS PATH",
	Action:    execLink,
	Category:  categoryFiles,
}

var cmdURL = &cli.Command{
	Name:      "url",
	Usage:     "Print the daemon URL a file can be downloaded from",
	UsageText: "rcctl url REMOTE PATH NAME",
	Action:    execURL,
	Category:  categoryFiles,
	Description: `Builds the download URL the daemon serves NAME in directory PATH of REMOTE
from. Bucket based remotes (s3, gcs, ...) use a different layout, so the
daemon is asked for the remote's features first.

Examples:
  rcctl url gdrive docs report.pdf      # http://localhost:5572/[gdrive:docs]/report.pdf
  rcctl url s3:bucket logs today.log    # http://localhost:5572/[s3:bucket]/logs/today.log`,
}

var cmdPurge = &cli.Command{
	Name:      "purge",
	Usage:     "Remove a directory and all of its contents",
	UsageText: "rcctl purge FS PATH",
	Action:    execPurge,
	Category:  categoryFiles,
}

var cmdDelete = &cli.Command{
	Name:      "rm",
	Usage:     "Remove a single file",
	UsageText: "rcctl rm FS PATH",
	Action:    execDelete,
	Category:  categoryFiles,
}

var cmdCleanup = &cli.Command{
	Name:      "cleanup",
	Usage:     "Empty the trash of a remote",
	UsageText: "rcctl cleanup FS",
	Action:    execCleanup,
	Category:  categoryFiles,
}

var cmdBackend = &cli.Command{
	Name:      "backend",
	Usage:     "Run a backend specific command",
	UsageText: "rcctl backend [OPTIONS..] COMMAND FS [ARG..]",
	Action:    execBackend,
	Category:  categoryFiles,
	Flags: []cli.Flag{
		&cli.StringSliceFlag{Name: "option", Aliases: []string{"o"}, Usage: "backend option as KEY=VALUE, may be repeated"},
	},
	Description: `Runs COMMAND on the backend of FS, e.g. "rcctl backend features gdrive:".
Use "." as FS to address the daemon's local backend.`,
}

func execList(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("missing FS, see --help for usage details")
	}
	if c.Bool("dirs-only") && c.Bool("files-only") {
		return errors.New("cannot use both --dirs-only and --files-only")
	}

	opt := rclone.Params{}
	for _, name := range []string{"recurse", "dirs-only", "files-only", "no-mod-time"} {
		if c.Bool(name) {
			opt[optionName(name)] = true
		}
	}
	if len(opt) == 0 {
		opt = nil
	}

	return withClient(c, func(client *rclone.Client) error {
		list, err := client.GetFilesList(c.Context, c.Args().Get(0), c.Args().Get(1), opt)
		if err != nil {
			return err
		}
		return printJSON(c, list)
	})
}

// optionName maps a kebab-case flag to rclone's camelCase option name.
func optionName(flag string) string {
	parts := strings.Split(flag, "-")
	for i := 1; i < len(parts); i++ {
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}

func execLink(c *cli.Context) error {
	if c.NArg() < 2 {
		return errors.New("missing FS or PATH, see --help for usage details")
	}
	return withClient(c, func(client *rclone.Client) error {
		link, err := client.CreatePublicLink(c.Context, c.Args().Get(0), c.Args().Get(1))
		if err != nil {
			return err
		}
		return printJSON(c, link)
	})
}

func execURL(c *cli.Context) error {
	if c.NArg() < 3 {
		return errors.New("missing REMOTE, PATH or NAME, see --help for usage details")
	}
	remote, path, name := c.Args().Get(0), c.Args().Get(1), c.Args().Get(2)

	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	source := endpointSource(c, store)
	ep, err := source.RCEndpoint()
	if err != nil {
		return explain(err)
	}

	client := rclone.NewClient(source, rclone.WithTimeout(c.Duration("timeout")), rclone.WithLogger(newLogger(c)))
	info, err := client.GetFsInfo(c.Context, remote)
	if err != nil {
		return explain(err)
	}

	base := strings.TrimRight(ep.URL, "/") + "/"
	_, err = fmt.Fprintln(c.App.Writer, rclone.GetDownloadURLForFile(base, info, remote, path, rclone.Item{Name: name}))
	return err
}

func execPurge(c *cli.Context) error {
	if c.NArg() < 2 {
		return errors.New("missing FS or PATH, see --help for usage details")
	}
	return withClient(c, func(client *rclone.Client) error {
		if _, err := client.PurgeDir(c.Context, c.Args().Get(0), c.Args().Get(1)); err != nil {
			return err
		}
		fmt.Fprintf(c.App.ErrWriter, "Purged %s\n", c.Args().Get(1))
		return nil
	})
}

func execDelete(c *cli.Context) error {
	if c.NArg() < 2 {
		return errors.New("missing FS or PATH, see --help for usage details")
	}
	return withClient(c, func(client *rclone.Client) error {
		if _, err := client.DeleteFile(c.Context, c.Args().Get(0), c.Args().Get(1)); err != nil {
			return err
		}
		fmt.Fprintf(c.App.ErrWriter, "Deleted %s\n", c.Args().Get(1))
		return nil
	})
}

func execCleanup(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("missing FS, see --help for usage details")
	}
	return withClient(c, func(client *rclone.Client) error {
		if _, err := client.CleanTrashForRemote(c.Context, c.Args().Get(0)); err != nil {
			return err
		}
		fmt.Fprintf(c.App.ErrWriter, "Cleaned trash of %s\n", c.Args().Get(0))
		return nil
	})
}

func execBackend(c *cli.Context) error {
	if c.NArg() < 2 {
		return errors.New("missing COMMAND or FS, see --help for usage details")
	}

	opt, err := parseOptions(c.StringSlice("option"))
	if err != nil {
		return err
	}
	args := c.Args().Slice()[2:]

	return withClient(c, func(client *rclone.Client) error {
		resp, err := client.BackendCommand(c.Context, c.Args().Get(0), args, opt, c.Args().Get(1))
		if err != nil {
			return err
		}
		return printJSON(c, resp)
	})
}

// parseOptions turns KEY=VALUE pairs into backend options. Values that are
// valid JSON (true, 3, "x", [..]) are decoded, anything else is kept as a
// string.
func parseOptions(pairs []string) (rclone.Params, error) {
	opt := rclone.Params{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid option %q, expected KEY=VALUE", pair)
		}
		var decoded interface{}
		if err := json.Unmarshal([]byte(value), &decoded); err == nil {
			opt[key] = decoded
		} else {
			opt[key] = value
		}
	}
	return opt, nil
}
