package build

import (
	"log/slog"
	"time"
)

// Set with -ldflags "-X github.com/ItsNotGoodName/x-collage/internal/build.version=...".
var (
	commit  = ""
	date    = ""
	version = "dev"
	repoURL = ""
)

func init() {
	Current = New(commit, date, version, repoURL)
}

var Current Build

type Build struct {
	Commit     string    `json:"commit,omitempty"`
	Version    string    `json:"version,omitempty"`
	Date       time.Time `json:"date,omitempty"`
	RepoURL    string    `json:"repo_url,omitempty"`
	CommitURL  string    `json:"commit_url,omitempty"`
	LicenseURL string    `json:"license_url,omitempty"`
	ReleaseURL string    `json:"release_url,omitempty"`
}

func New(commit, date, version, repoURL string) Build {
	d, _ := time.Parse(time.RFC3339, date)

	b := Build{
		Commit:     commit,
		Version:    version,
		Date:       d,
		RepoURL:    repoURL,
		CommitURL:  repoURL + "/tree/" + commit,
		LicenseURL: repoURL + "/blob/master/LICENSE",
		ReleaseURL: repoURL + "/releases/tag/" + version,
	}
	if repoURL == "" {
		b.CommitURL = "#"
		b.LicenseURL = "#"
		b.ReleaseURL = "#"
	}
	return b
}

func (b Build) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("version", b.Version),
		slog.String("commit", b.Commit),
		slog.Time("date", b.Date),
	)
}
