package version

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_version01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("version01. build details")

	defer func(commit, built string) { GitCommit, BuildTime = commit, built }(GitCommit, BuildTime)

	for _, c := range []struct {
		commit, built, want string
	}{
		{"unknown", "unknown", Version},
		{"abc1234", "unknown", Version + " (abc1234)"},
		{"abc1234", "2025-06-01", Version + " (abc1234, built 2025-06-01)"},
	} {
		GitCommit, BuildTime = c.commit, c.built
		if got := String(); got != c.want {
			tst.Errorf("commit %q built %q: got %q, want %q", c.commit, c.built, got, c.want)
		}
	}
}
