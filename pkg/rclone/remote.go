package rclone

import "strings"

// IsLocalRemoteName reports whether name refers to a path on the local
// filesystem of the rclone daemon rather than a configured remote.
func IsLocalRemoteName(name string) bool {
	return name != "" && name[0] == '/'
}

// AddColonAtLast appends a trailing colon to a remote config name. Names that
// already carry a colon anywhere (e.g. "s3:bucket") are returned unchanged.
// The empty string stays empty.
func AddColonAtLast(name string) string {
	if name == "" || strings.Contains(name, ":") {
		return name
	}
	return name + ":"
}

// NormalizeFs converts a remote name into the fs value expected by rc.
func NormalizeFs(fs string) string {
	if IsLocalRemoteName(fs) {
		return fs
	}
	return AddColonAtLast(fs)
}

// ConfigName strips any bucket or path suffix, leaving the config section name.
func ConfigName(name string) string {
	if i := strings.Index(name, ":"); i >= 0 {
		return name[:i]
	}
	return name
}
