package acquire

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"setupvim/internal/core/domain"
	"setupvim/internal/platform/errors"
	"setupvim/internal/testutil"
)

func TestVersionIsOlderThan(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"v8.2.1119", false},
		{"v8.2.1118", true},
		{"v8.2.1120", false},
		{"v8.1.2424", true},
		{"v9.0.0000", false},
		{"v7.4", false},
		{"8.2.1118", false},
		{"stable", false},
		{"nightly", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			testutil.AssertEqual(t, VersionIsOlderThan(tt.version, 8, 2, 1119), tt.want, "VersionIsOlderThan")
		})
	}
}

func TestBuildVim_Nightly(t *testing.T) {
	h := newHarness(t)

	got, err := h.in.Install(context.Background(), h.cfg(domain.OSLinux, domain.ArchX8664, false, "nightly"))
	testutil.RequireNoError(t, err, "install")

	installDir := filepath.Join(h.root, "vim-nightly")
	lines := h.exec.Lines()
	testutil.AssertEqual(t, len(lines), 4, "git, configure, make, make install")

	testutil.AssertTrue(t, strings.HasPrefix(lines[0], "git clone --depth=1 --single-branch --no-tags https://github.com/vim/vim "), "clone HEAD: "+lines[0])
	testutil.AssertEqual(t, lines[1], "./configure --prefix="+installDir+" --with-features=huge --enable-fail-if-missing", "configure")
	testutil.AssertEqual(t, lines[2], "make -j", "make")
	testutil.AssertEqual(t, lines[3], "make install", "make install")

	srcDir := h.exec.Calls[0].Args[len(h.exec.Calls[0].Args)-1]
	for _, c := range h.exec.Calls[1:] {
		testutil.AssertEqual(t, c.Dir, srcDir, "build runs in the clone")
		testutil.AssertEqual(t, len(c.Env), 0, "no legacy env on linux")
	}

	testutil.AssertEqual(t, got.BinDir, filepath.Join(installDir, "bin"), "bin dir")
	testutil.AssertEqual(t, got.VimDir, filepath.Join(installDir, "share", "vim"), "vim dir")
	testutil.AssertEqual(t, got.Executable, "vim", "executable")
}

func TestBuildVim_TagAndConfigureArgs(t *testing.T) {
	h := newHarness(t)
	cfg := h.cfg(domain.OSLinux, domain.ArchX8664, false, "v9.1.0000")
	cfg.ConfigureArgs = `--enable-python3interp=yes --with-compiledby="CI runner"`

	_, err := h.in.Install(context.Background(), cfg)
	testutil.RequireNoError(t, err, "install")

	clone, ok := h.exec.Find("git clone")
	testutil.RequireTrue(t, ok, "git clone should run")
	line := strings.Join(clone.Args, " ")
	testutil.AssertContains(t, line, "--branch v9.1.0000", "clone checks out the tag")
	testutil.AssertNotContains(t, line, "--no-tags", "tag clone keeps tags")

	configure, ok := h.exec.Find("./configure")
	testutil.RequireTrue(t, ok, "configure should run")
	testutil.AssertStrings(t, configure.Args[3:], []string{"--enable-python3interp=yes", "--with-compiledby=CI runner"}, "user args appended")
	testutil.AssertEqual(t, configure.Args[0], "--prefix="+filepath.Join(h.root, "vim-v9.1.0000"), "per-version prefix")
}

func TestBuildVim_BadConfigureArgs(t *testing.T) {
	h := newHarness(t)
	cfg := h.cfg(domain.OSLinux, domain.ArchX8664, false, "nightly")
	cfg.ConfigureArgs = `--with-x "unterminated`

	_, err := h.in.Install(context.Background(), cfg)
	testutil.RequireError(t, err, "install")

	var cfgErr *domain.ConfigError
	testutil.AssertTrue(t, errors.As(err, &cfgErr), "should be a ConfigError")
	testutil.AssertEqual(t, cfgErr.Field, "configure-args", "field")
	testutil.AssertEqual(t, len(h.exec.Calls), 0, "nothing runs")
}

func TestBuildVim_CloneFailureIsFatal(t *testing.T) {
	h := newHarness(t)
	h.exec.FailOn("git clone")

	_, err := h.in.Install(context.Background(), h.cfg(domain.OSMacOS, domain.ArchARM64, false, "nightly"))
	testutil.RequireError(t, err, "install")
	testutil.AssertContains(t, err.Error(), "https://github.com/vim/vim", "error names the repo")
	testutil.AssertEqual(t, len(h.exec.Calls), 1, "stops after clone")
}

func TestLegacyToolchainEnv(t *testing.T) {
	tests := []struct {
		name     string
		os       domain.OS
		version  string
		xcodeDir bool
		want     []string
		warns    int
	}{
		{"old version on macos", domain.OSMacOS, "v8.2.0126", true, []string{"DEVELOPER_DIR=" + defaultXcode11Dir}, 0},
		{"boundary version on macos", domain.OSMacOS, "v8.2.1119", true, nil, 0},
		{"old version on linux", domain.OSLinux, "v8.2.0126", true, nil, 0},
		{"nightly on macos", domain.OSMacOS, "nightly", true, nil, 0},
		{"xcode 11 missing", domain.OSMacOS, "v8.1.0000", false, nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.dirs[defaultXcode11Dir] = tt.xcodeDir

			got := h.in.legacyToolchainEnv(h.cfg(tt.os, domain.ArchX8664, false, tt.version))
			testutil.AssertStrings(t, got, tt.want, "env")
			testutil.AssertEqual(t, len(h.warnings), tt.warns, "warnings")
		})
	}
}

func TestLegacyToolchainEnv_Override(t *testing.T) {
	h := newHarness(t)
	h.in.getenv = func(key string) string {
		if key == "XCODE_11_DEVELOPER_DIR" {
			return "/opt/xcode11"
		}
		return ""
	}
	h.dirs["/opt/xcode11"] = true

	_, err := h.in.Install(context.Background(), h.cfg(domain.OSMacOS, domain.ArchX8664, false, "v8.0.0000"))
	testutil.RequireNoError(t, err, "install")

	for _, prefix := range []string{"./configure", "make -j", "make install"} {
		c, ok := h.exec.Find(prefix)
		testutil.RequireTrue(t, ok, prefix+" should run")
		testutil.AssertStrings(t, c.Env, []string{"DEVELOPER_DIR=/opt/xcode11"}, prefix+" env")
	}
	clone, _ := h.exec.Find("git clone")
	testutil.AssertEqual(t, len(clone.Env), 0, "clone runs without legacy env")
}
