package interfaces

import (
	"context"

	"rcwebui/pkg/rclone"
)

// RCClient is the rclone rc operation set served by the gateway
type RCClient interface {
	GetStats(ctx context.Context, group string) (rclone.Params, error)
	GetTransferredStats(ctx context.Context, group string) (rclone.Params, error)
	GetCurrentBandwidthSetting(ctx context.Context) (*rclone.BandwidthLimit, error)
	SetCurrentBandwidthSetting(ctx context.Context, rate string) (*rclone.BandwidthLimit, error)
	CreatePublicLink(ctx context.Context, remoteName, remotePath string) (*rclone.PublicLink, error)
	GetAllProviders(ctx context.Context) (*rclone.Providers, error)
	GetAllConfigDump(ctx context.Context) (rclone.Params, error)
	GetFsInfo(ctx context.Context, remoteName string) (*rclone.FsInfo, error)
	GetFilesList(ctx context.Context, fs, remotePath string, opt rclone.Params) (*rclone.FileList, error)
	GetRemoteInfo(ctx context.Context, remoteName string) (*rclone.FsInfo, error)
	GetRcloneVersion(ctx context.Context) (*rclone.Version, error)
	GetAllRemoteNames(ctx context.Context) (*rclone.RemoteNames, error)
	GetJobStatus(ctx context.Context, jobID int64) (*rclone.JobStatus, error)
	ListJobs(ctx context.Context) (*rclone.JobList, error)
	StopJob(ctx context.Context, jobID int64) error
	Ping(ctx context.Context) error
	PurgeDir(ctx context.Context, fs, remote string) (rclone.Params, error)
	DeleteFile(ctx context.Context, fs, remote string) (rclone.Params, error)
	CleanTrashForRemote(ctx context.Context, fs string) (rclone.Params, error)
	BackendCommand(ctx context.Context, command string, arg []string, opt rclone.Params, fs string) (rclone.Params, error)
	CoreCommand(ctx context.Context, arg []string, opt rclone.Params) (rclone.Params, error)
}

// SettingsStore persists the login the web UI keeps between sessions
type SettingsStore interface {
	rclone.EndpointSource
	All() (map[string]string, error)
	SaveLogin(ipAddress, authKey string) error
	ClearLogin() error
}
