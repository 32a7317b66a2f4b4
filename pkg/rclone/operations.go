package rclone

import (
	"context"
	"fmt"
)

type fsRemoteRequest struct {
	Fs     string `json:"fs"`
	Remote string `json:"remote"`
}

type fsRequest struct {
	Fs string `json:"fs"`
}

type listRequest struct {
	Fs     string `json:"fs"`
	Remote string `json:"remote"`
	Opt    Params `json:"opt,omitempty"`
}

type groupRequest struct {
	Group string `json:"group,omitempty"`
}

type bandwidthRequest struct {
	Rate string `json:"rate"`
}

type jobRequest struct {
	JobID int64 `json:"jobid"`
}

type backendCommandRequest struct {
	Command string   `json:"command"`
	Arg     []string `json:"arg"`
	Opt     Params   `json:"opt"`
	Fs      string   `json:"fs"`
}

type coreCommandRequest struct {
	Arg []string `json:"arg"`
	Opt Params   `json:"opt"`
}

// GetStats returns the transfer statistics, optionally restricted to a stats group.
func (c *Client) GetStats(ctx context.Context, group string) (Params, error) {
	var resp Params
	err := c.Call(ctx, EndpointStats, groupRequest{Group: group}, &resp)
	return resp, err
}

// GetTransferredStats returns the completed transfers, optionally for one group.
func (c *Client) GetTransferredStats(ctx context.Context, group string) (Params, error) {
	var resp Params
	err := c.Call(ctx, EndpointTransferred, groupRequest{Group: group}, &resp)
	return resp, err
}

// GetCurrentBandwidthSetting returns the bandwidth limit currently in force.
func (c *Client) GetCurrentBandwidthSetting(ctx context.Context) (*BandwidthLimit, error) {
	var resp BandwidthLimit
	if err := c.Call(ctx, EndpointBandwidthLimit, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetCurrentBandwidthSetting changes the bandwidth limit. rate is in rclone's
// human readable form, e.g. "1M", "2M" or "1.2G"; "off" removes the limit.
func (c *Client) SetCurrentBandwidthSetting(ctx context.Context, rate string) (*BandwidthLimit, error) {
	var resp BandwidthLimit
	if err := c.Call(ctx, EndpointBandwidthLimit, bandwidthRequest{Rate: rate}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreatePublicLink creates a shareable link for remotePath on a remote that supports it.
func (c *Client) CreatePublicLink(ctx context.Context, remoteName, remotePath string) (*PublicLink, error) {
	req := fsRemoteRequest{Fs: NormalizeFs(remoteName), Remote: remotePath}

	var resp PublicLink
	if err := c.Call(ctx, EndpointPublicLink, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAllProviders returns every backend type the daemon can configure.
func (c *Client) GetAllProviders(ctx context.Context) (*Providers, error) {
	var resp Providers
	if err := c.Call(ctx, EndpointProviders, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAllConfigDump returns the configured remotes keyed by name.
func (c *Client) GetAllConfigDump(ctx context.Context) (Params, error) {
	var resp Params
	err := c.Call(ctx, EndpointConfigDump, nil, &resp)
	return resp, err
}

// GetFsInfo fetches features and hashes for the remote. Only the config name
// is sent, so "s3:bucket" asks about "s3:". A name without a config section,
// such as "" or ":bucket", is rejected.
func (c *Client) GetFsInfo(ctx context.Context, remoteName string) (*FsInfo, error) {
	fs := remoteName
	if !IsLocalRemoteName(remoteName) {
		fs = AddColonAtLast(ConfigName(remoteName))
	}
	if fs == "" {
		return nil, fmt.Errorf("%w: remote %q has no config name", ErrInvalidArgument, remoteName)
	}

	var resp FsInfo
	if err := c.Call(ctx, EndpointFsInfo, fsRequest{Fs: fs}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetFilesList lists remotePath inside fs. fs is a remote name ("/" prefixed for
// local paths) and may carry a bucket, e.g. "s3:bucket".
func (c *Client) GetFilesList(ctx context.Context, fs, remotePath string, opt Params) (*FileList, error) {
	if fs == "" {
		return nil, fmt.Errorf("%w: fs is required", ErrInvalidArgument)
	}

	req := listRequest{Fs: NormalizeFs(fs), Remote: remotePath, Opt: opt}

	var resp FileList
	if err := c.Call(ctx, EndpointList, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetRemoteInfo fetches fs information for the full remote name, bucket included.
func (c *Client) GetRemoteInfo(ctx context.Context, remoteName string) (*FsInfo, error) {
	if remoteName == "" {
		return nil, fmt.Errorf("%w: remote name is required", ErrInvalidArgument)
	}

	var resp FsInfo
	if err := c.Call(ctx, EndpointFsInfo, fsRequest{Fs: NormalizeFs(remoteName)}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetRcloneVersion returns the version of the running daemon.
func (c *Client) GetRcloneVersion(ctx context.Context) (*Version, error) {
	var resp Version
	if err := c.Call(ctx, EndpointVersion, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAllRemoteNames lists the names of the configured remotes.
func (c *Client) GetAllRemoteNames(ctx context.Context) (*RemoteNames, error) {
	var resp RemoteNames
	if err := c.Call(ctx, EndpointListRemotes, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetJobStatus gets the status of a specific job
func (c *Client) GetJobStatus(ctx context.Context, jobID int64) (*JobStatus, error) {
	var resp JobStatus
	if err := c.Call(ctx, EndpointJobStatus, jobRequest{JobID: jobID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListJobs lists all active jobs
func (c *Client) ListJobs(ctx context.Context) (*JobList, error) {
	var resp JobList
	if err := c.Call(ctx, EndpointJobList, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// StopJob stops a running job
func (c *Client) StopJob(ctx context.Context, jobID int64) error {
	return c.Call(ctx, EndpointJobStop, jobRequest{JobID: jobID}, nil)
}

// Ping checks if the rclone daemon is responsive
func (c *Client) Ping(ctx context.Context) error {
	return c.Call(ctx, EndpointPid, nil, nil)
}

// PurgeDir removes a directory and all of its contents.
func (c *Client) PurgeDir(ctx context.Context, fs, remote string) (Params, error) {
	var resp Params
	err := c.Call(ctx, EndpointPurge, fsRemoteRequest{Fs: NormalizeFs(fs), Remote: remote}, &resp)
	return resp, err
}

// DeleteFile removes a single file.
func (c *Client) DeleteFile(ctx context.Context, fs, remote string) (Params, error) {
	var resp Params
	err := c.Call(ctx, EndpointDeleteFile, fsRemoteRequest{Fs: NormalizeFs(fs), Remote: remote}, &resp)
	return resp, err
}

// CleanTrashForRemote empties the trash of the remote, where the backend has one.
func (c *Client) CleanTrashForRemote(ctx context.Context, fs string) (Params, error) {
	var resp Params
	err := c.Call(ctx, EndpointCleanup, fsRequest{Fs: NormalizeFs(fs)}, &resp)
	return resp, err
}

// BackendCommand runs a backend specific command. An empty fs means ".".
func (c *Client) BackendCommand(ctx context.Context, command string, arg []string, opt Params, fs string) (Params, error) {
	switch {
	case command == "":
		return nil, fmt.Errorf("%w: command is required", ErrInvalidArgument)
	case arg == nil:
		return nil, fmt.Errorf("%w: arg is required", ErrInvalidArgument)
	case opt == nil:
		return nil, fmt.Errorf("%w: opt is required", ErrInvalidArgument)
	}
	if fs == "" {
		fs = "."
	}

	req := backendCommandRequest{Command: command, Arg: arg, Opt: opt, Fs: fs}

	var resp Params
	err := c.Call(ctx, EndpointBackendCommand, req, &resp)
	return resp, err
}

// CoreCommand runs an rclone command on the daemon.
func (c *Client) CoreCommand(ctx context.Context, arg []string, opt Params) (Params, error) {
	switch {
	case arg == nil:
		return nil, fmt.Errorf("%w: arg is required", ErrInvalidArgument)
	case opt == nil:
		return nil, fmt.Errorf("%w: opt is required", ErrInvalidArgument)
	}

	var resp Params
	err := c.Call(ctx, EndpointCoreCommand, coreCommandRequest{Arg: arg, Opt: opt}, &resp)
	return resp, err
}

// GetDownloadURLForFile builds the URL the daemon serves item from when it runs
// with --rc-serve. Bucket based remotes put the path outside the brackets.
func GetDownloadURLForFile(ipAddress string, fsInfo *FsInfo, remoteName, remotePath string, item Item) string {
	if fsInfo != nil && fsInfo.Features.BucketBased {
		return fmt.Sprintf("%s[%s]/%s/%s", ipAddress, remoteName, remotePath, item.Name)
	}
	return fmt.Sprintf("%s[%s:%s]/%s", ipAddress, remoteName, remotePath, item.Name)
}
