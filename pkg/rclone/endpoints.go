package rclone

// rc routes used by the client, relative to the daemon base URL.
const (
	EndpointStats          = "core/stats"
	EndpointTransferred    = "core/transferred"
	EndpointBandwidthLimit = "core/bwlimit"
	EndpointVersion        = "core/version"
	EndpointPid            = "core/pid"
	EndpointCoreCommand    = "core/command"
	EndpointPublicLink     = "operations/publiclink"
	EndpointFsInfo         = "operations/fsinfo"
	EndpointList           = "operations/list"
	EndpointPurge          = "operations/purge"
	EndpointDeleteFile     = "operations/deletefile"
	EndpointCleanup        = "operations/cleanup"
	EndpointProviders      = "config/providers"
	EndpointConfigDump     = "config/dump"
	EndpointListRemotes    = "config/listremotes"
	EndpointJobStatus      = "job/status"
	EndpointJobList        = "job/list"
	EndpointJobStop        = "job/stop"
	EndpointBackendCommand = "backend/command"
)
