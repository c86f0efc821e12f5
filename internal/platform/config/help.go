// internal/platform/config/help.go
package config

import (
	"fmt"
	"io"
	"runtime"
)

const helpText = `
setup-vim - install Vim or Neovim on a CI runner

USAGE:
  setup-vim [options]

OPTIONS:
  --version string          stable (default), nightly or a release tag
                            Vim tags:    v7.4, v7.4.100, v8.2.0126, v9.1.0000
                            Neovim tags: v0.4.3, v0.10.4
  --neovim                  Install Neovim instead of Vim (default: false)
  --configure-args string   Extra ./configure arguments for source builds
  --token string            GitHub token (default: $GITHUB_TOKEN)
  --install-root string     Where editors are installed (default: home directory)
  -c, --config string       YAML file with the inputs above as keys
  --verbose                 Debug logging
  -q, --quiet               No UI, log output only
  -V, --print-version       Print version information and exit
  -h, --help                Show this help message

ENVIRONMENT VARIABLES:
  INPUT_VERSION, INPUT_NEOVIM, INPUT_CONFIGURE-ARGS, INPUT_TOKEN
                            Set by GitHub Actions from the step's 'with:' block
  GITHUB_TOKEN              Fallback for --token
  GITHUB_OUTPUT             File receiving 'executable' and 'vim-dir' outputs
  GITHUB_PATH               File receiving the editor's bin directory
  SETUP_VIM_LOG_LEVEL       debug, info, warn or error
  RUNNER_DEBUG=1            Same as --verbose

  Precedence: defaults < --config file < INPUT_* < flags.

STRATEGIES:
  linux   vim     stable: apt-get vim-gtk3, otherwise built from source
  linux   neovim  release archive; nightly falls back to a source build
  macos   vim     stable: Homebrew macvim, otherwise built from source
  macos   neovim  stable: Homebrew neovim, otherwise release archive
  windows vim     vim-win32-installer zip (stable means latest nightly)
  windows neovim  release archive
`

// PrintHelp escribe la ayuda en w.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, helpText)
}

// PrintVersion escribe la información de versión en w.
func PrintVersion(w io.Writer, version, commit, date string) {
	fmt.Fprintf(w, "setup-vim %s\n", version)
	fmt.Fprintf(w, "  Commit:  %s\n", commit)
	fmt.Fprintf(w, "  Built:   %s\n", date)
	fmt.Fprintf(w, "  Go:      %s\n", getGoVersion())
}

func getGoVersion() string {
	return runtime.Version()
}
