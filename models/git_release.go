package models

// GitRelease describes a particular version of a release.
//
// PublishedAt is kept as the raw API string so that a value in an
// unexpected format can still be shown to the user.
type GitRelease struct {
	TagName     string     `json:"tag_name"`
	Name        string     `json:"name"`
	PublishedAt string     `json:"published_at"`
	Assets      []GitAsset `json:"assets"`
}

// GitAsset describes the file in a particular version of a release.
type GitAsset struct {
	Name          string `json:"name"`
	Size          int64  `json:"size"`
	DownloadCount int64  `json:"download_count"`
}

