package rcctl

import (
	"errors"
	"fmt"

	"rcwebui/pkg/rclone"

	"github.com/urfave/cli/v2"
)

var cmdStats = &cli.Command{
	Name:      "stats",
	Usage:     "Show transfer statistics",
	UsageText: "rcctl stats [--group GROUP] [--transferred]",
	Action:    execStats,
	Category:  categoryCore,
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "group", Aliases: []string{"g"}, Usage: "only show stats for this group, e.g. job/3"},
		&cli.BoolFlag{Name: "transferred", Aliases: []string{"t"}, Usage: "list completed transfers instead"},
	},
}

var cmdBandwidth = &cli.Command{
	Name:      "bwlimit",
	Usage:     "Show or set the bandwidth limit",
	UsageText: "rcctl bwlimit [RATE]",
	Action:    execBandwidth,
	Category:  categoryCore,
	Description: `Without RATE the current limit is printed. RATE uses rclone's syntax,
e.g. 1M, 10M:100k (upload:download) or off.`,
}

var cmdVersion = &cli.Command{
	Name:      "version",
	Usage:     "Show the daemon's rclone version",
	UsageText: "rcctl version",
	Action:    execVersion,
	Category:  categoryCore,
}

var cmdJobs = &cli.Command{
	Name:      "jobs",
	Usage:     "List job IDs known to the daemon",
	UsageText: "rcctl jobs",
	Action:    execJobs,
	Category:  categoryCore,
}

var cmdJob = &cli.Command{
	Name:      "job",
	Usage:     "Show the status of a job",
	UsageText: "rcctl job ID",
	Action:    execJob,
	Category:  categoryCore,
}

var cmdStop = &cli.Command{
	Name:      "stop",
	Usage:     "Stop a running job",
	UsageText: "rcctl stop ID",
	Action:    execStop,
	Category:  categoryCore,
}

func execStats(c *cli.Context) error {
	return withClient(c, func(client *rclone.Client) error {
		var stats rclone.Params
		var err error
		if c.Bool("transferred") {
			stats, err = client.GetTransferredStats(c.Context, c.String("group"))
		} else {
			stats, err = client.GetStats(c.Context, c.String("group"))
		}
		if err != nil {
			return err
		}
		return printJSON(c, stats)
	})
}

func execBandwidth(c *cli.Context) error {
	return withClient(c, func(client *rclone.Client) error {
		var limit *rclone.BandwidthLimit
		var err error
		if c.NArg() > 0 {
			limit, err = client.SetCurrentBandwidthSetting(c.Context, c.Args().Get(0))
		} else {
			limit, err = client.GetCurrentBandwidthSetting(c.Context)
		}
		if err != nil {
			return err
		}
		return printJSON(c, limit)
	})
}

func execVersion(c *cli.Context) error {
	return withClient(c, func(client *rclone.Client) error {
		version, err := client.GetRcloneVersion(c.Context)
		if err != nil {
			return err
		}
		return printJSON(c, version)
	})
}

func execJobs(c *cli.Context) error {
	return withClient(c, func(client *rclone.Client) error {
		jobs, err := client.ListJobs(c.Context)
		if err != nil {
			return err
		}
		return printJSON(c, jobs)
	})
}

func execJob(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("missing job ID, see --help for usage details")
	}
	id, err := parseJobID(c.Args().Get(0))
	if err != nil {
		return err
	}
	return withClient(c, func(client *rclone.Client) error {
		status, err := client.GetJobStatus(c.Context, id)
		if err != nil {
			return err
		}
		return printJSON(c, status)
	})
}

func execStop(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("missing job ID, see --help for usage details")
	}
	id, err := parseJobID(c.Args().Get(0))
	if err != nil {
		return err
	}
	return withClient(c, func(client *rclone.Client) error {
		if err := client.StopJob(c.Context, id); err != nil {
			return err
		}
		fmt.Fprintf(c.App.ErrWriter, "Job %d stopped\n", id)
		return nil
	})
}
