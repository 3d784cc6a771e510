package build

import (
	"fmt"
	"time"
)

// Set with -ldflags "-X github.com/ItsNotGoodName/x-oledbar/internal/build.version=..."
var (
	commit  = ""
	date    = ""
	version = "dev"
)

const Name = "x-oledbar"

func init() {
	date, _ := time.Parse(time.RFC3339, date)

	Current = Build{
		Commit:  commit,
		Version: version,
		Date:    date,
	}
}

var Current Build

type Build struct {
	Commit  string    `json:"commit,omitempty"`
	Version string    `json:"version,omitempty"`
	Date    time.Time `json:"date,omitempty"`
}

func (b Build) String() string {
	if b.Commit == "" {
		return fmt.Sprintf("%s %s", Name, b.Version)
	}
	return fmt.Sprintf("%s %s (%s)", Name, b.Version, b.Commit)
}
