// internal/platform/validator/validator_test.go
package validator

import (
	"testing"

	"setupvim/internal/testutil"
)

func TestIsVimTag(t *testing.T) {
	for _, tag := range testutil.FixtureVimTags {
		t.Run("valid "+tag, func(t *testing.T) {
			testutil.AssertTrue(t, IsVimTag(tag), "vim tag")
		})
	}
	for _, tag := range testutil.FixtureInvalidVimTags {
		t.Run("invalid "+tag, func(t *testing.T) {
			testutil.AssertFalse(t, IsVimTag(tag), "vim tag")
		})
	}
}

func TestIsNeovimTag(t *testing.T) {
	for _, tag := range testutil.FixtureNeovimTags {
		t.Run("valid "+tag, func(t *testing.T) {
			testutil.AssertTrue(t, IsNeovimTag(tag), "neovim tag")
		})
	}
	for _, tag := range testutil.FixtureInvalidNeovimTags {
		t.Run("invalid "+tag, func(t *testing.T) {
			testutil.AssertFalse(t, IsNeovimTag(tag), "neovim tag")
		})
	}
}

func TestGrammarsDiffer(t *testing.T) {
	testutil.AssertFalse(t, IsVimTag("v0.4.3"), "neovim style tag rejected for vim")
	testutil.AssertTrue(t, IsNeovimTag("v9.1.0000"), "neovim grammar does not constrain digit count")
}

func TestIsReleaseChannel(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"stable", true},
		{"STABLE", true},
		{"Nightly", true},
		{"latest", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			testutil.AssertEqual(t, IsReleaseChannel(tt.input), tt.expected, "release channel")
		})
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		def       bool
		wantValue bool
		wantOK    bool
	}{
		{"empty uses default false", "", false, false, true},
		{"empty uses default true", "", true, true, true},
		{"true", "true", false, true, true},
		{"TRUE", "TRUE", false, true, true},
		{"False", "False", true, false, true},
		{"yes rejected", "yes", false, false, false},
		{"1 rejected", "1", false, false, false},
		{"padded rejected", " true", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := ParseBool(tt.input, tt.def)
			testutil.AssertEqual(t, ok, tt.wantOK, "ok")
			testutil.AssertEqual(t, value, tt.wantValue, "value")
		})
	}
}
