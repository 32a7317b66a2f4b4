package rcctl

import (
	"errors"

	"rcwebui/pkg/rclone"

	"github.com/urfave/cli/v2"
)

var cmdRemotes = &cli.Command{
	Name:      "remotes",
	Usage:     "List configured remotes",
	UsageText: "rcctl remotes",
	Action:    execRemotes,
	Category:  categoryRemote,
}

var cmdProviders = &cli.Command{
	Name:      "providers",
	Usage:     "List storage providers the daemon supports",
	UsageText: "rcctl providers [--names]",
	Action:    execProviders,
	Category:  categoryRemote,
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "names", Aliases: []string{"n"}, Usage: "only print provider names"},
	},
}

var cmdDump = &cli.Command{
	Name:      "dump",
	Usage:     "Dump the daemon's remote configuration",
	UsageText: "rcctl dump",
	Action:    execDump,
	Category:  categoryRemote,
}

var cmdFsInfo = &cli.Command{
	Name:      "fsinfo",
	Usage:     "Show features and hashes of a remote",
	UsageText: "rcctl fsinfo REMOTE",
	Action:    execFsInfo,
	Category:  categoryRemote,
	Description: `REMOTE may be a configured remote name ("gdrive", "gdrive:", "gdrive:some/dir")
or a local path ("/mnt/data"). Only the part before the first colon is sent.`,
}

func execRemotes(c *cli.Context) error {
	return withClient(c, func(client *rclone.Client) error {
		remotes, err := client.GetAllRemoteNames(c.Context)
		if err != nil {
			return err
		}
		return printJSON(c, remotes)
	})
}

func execProviders(c *cli.Context) error {
	return withClient(c, func(client *rclone.Client) error {
		providers, err := client.GetAllProviders(c.Context)
		if err != nil {
			return err
		}
		if !c.Bool("names") {
			return printJSON(c, providers)
		}
		names := make([]string, 0, len(providers.Providers))
		for _, p := range providers.Providers {
			names = append(names, p.Name)
		}
		return printJSON(c, names)
	})
}

func execDump(c *cli.Context) error {
	return withClient(c, func(client *rclone.Client) error {
		dump, err := client.GetAllConfigDump(c.Context)
		if err != nil {
			return err
		}
		return printJSON(c, dump)
	})
}

func execFsInfo(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("missing remote, see --help for usage details")
	}
	return withClient(c, func(client *rclone.Client) error {
		info, err := client.GetFsInfo(c.Context, c.Args().Get(0))
		if err != nil {
			return err
		}
		return printJSON(c, info)
	})
}
