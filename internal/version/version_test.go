package version

import "testing"

func TestString(t *testing.T) {
	prev := [3]string{Version, GitSHA, BuildTime}
	t.Cleanup(func() { Version, GitSHA, BuildTime = prev[0], prev[1], prev[2] })

	Version, GitSHA, BuildTime = "1.2.0", "abc123", "2026-01-02"
	if got, want := String(), "trackcore 1.2.0 (abc123, built 2026-01-02)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
