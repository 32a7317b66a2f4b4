package rclone

import "time"

// Params is an rc request or response body passed through without interpretation.
type Params map[string]interface{}

// BandwidthLimit is the reply of core/bwlimit.
type BandwidthLimit struct {
	Rate             string `json:"rate"`
	BytesPerSecond   int64  `json:"bytesPerSecond"`
	BytesPerSecondTx int64  `json:"bytesPerSecondTx"`
	BytesPerSecondRx int64  `json:"bytesPerSecondRx"`
}

// PublicLink is the reply of operations/publiclink.
type PublicLink struct {
	URL string `json:"url"`
}

// Providers is the full reply of config/providers.
type Providers struct {
	Providers []Provider `json:"providers"`
}

// Provider describes one storage backend type rclone can configure.
type Provider struct {
	Name        string           `json:"Name"`
	Description string           `json:"Description"`
	Prefix      string           `json:"Prefix"`
	Options     []ProviderOption `json:"Options"`
}

type ProviderOption struct {
	Name       string      `json:"Name"`
	Help       string      `json:"Help"`
	Provider   string      `json:"Provider,omitempty"`
	Default    interface{} `json:"Default"`
	Required   bool        `json:"Required"`
	IsPassword bool        `json:"IsPassword"`
	Advanced   bool        `json:"Advanced"`
}

// FsInfo is the reply of operations/fsinfo.
type FsInfo struct {
	Name      string   `json:"Name"`
	Root      string   `json:"Root"`
	String    string   `json:"String"`
	Precision int64    `json:"Precision"`
	Hashes    []string `json:"Hashes"`
	Features  Features `json:"Features"`
}

// Features is the subset of backend capabilities the client looks at.
type Features struct {
	About                   bool `json:"About"`
	BucketBased             bool `json:"BucketBased"`
	BucketBasedRootOK       bool `json:"BucketBasedRootOK"`
	CanHaveEmptyDirectories bool `json:"CanHaveEmptyDirectories"`
	CaseInsensitive         bool `json:"CaseInsensitive"`
	CleanUp                 bool `json:"CleanUp"`
	Copy                    bool `json:"Copy"`
	DirMove                 bool `json:"DirMove"`
	Move                    bool `json:"Move"`
	PublicLink              bool `json:"PublicLink"`
	Purge                   bool `json:"Purge"`
}

// FileList is the reply of operations/list.
type FileList struct {
	List []Item `json:"list"`
}

// Item is one entry of a directory listing.
type Item struct {
	Path     string    `json:"Path"`
	Name     string    `json:"Name"`
	Size     int64     `json:"Size"`
	MimeType string    `json:"MimeType"`
	ModTime  time.Time `json:"ModTime"`
	IsDir    bool      `json:"IsDir"`
	ID       string    `json:"ID,omitempty"`
}

// Version is the reply of core/version.
type Version struct {
	Version    string  `json:"version"`
	Decomposed []int64 `json:"decomposed"`
	GoVersion  string  `json:"goVersion"`
	GoTags     string  `json:"goTags"`
	OS         string  `json:"os"`
	Arch       string  `json:"arch"`
	IsGit      bool    `json:"isGit"`
	IsBeta     bool    `json:"isBeta"`
	Linking    string  `json:"linking"`
}

// RemoteNames is the reply of config/listremotes.
type RemoteNames struct {
	Remotes []string `json:"remotes"`
}

// JobStatus represents the status of a running job
type JobStatus struct {
	ID        int64     `json:"id"`
	Group     string    `json:"group"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Error     string    `json:"error"`
	Finished  bool      `json:"finished"`
	Success   bool      `json:"success"`
	Duration  float64   `json:"duration"`
	Output    Params    `json:"output"`
}

// JobList represents the response from job/list
type JobList struct {
	JobIDs []int64 `json:"jobids"`
}
