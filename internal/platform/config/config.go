// internal/platform/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/sethvargo/go-githubactions"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"setupvim/internal/core/domain"
	"setupvim/internal/platform/errors"
	"setupvim/internal/platform/system"
	"setupvim/internal/platform/validator"
)

const (
	supportedOS   = "linux|macos|windows"
	supportedArch = "x86_64|arm64|arm32"
)

// Inputs son los valores crudos tal como llegan del usuario, antes de validarlos.
type Inputs struct {
	Version       string `yaml:"version"`
	Neovim        string `yaml:"neovim"`
	ConfigureArgs string `yaml:"configure-args"`
	Token         string `yaml:"token"`
	InstallRoot   string `yaml:"install-root"`

	// Solo CLI
	ConfigPath  string `yaml:"-"`
	Verbose     bool   `yaml:"-"`
	Quiet       bool   `yaml:"-"`
	ShowVersion bool   `yaml:"-"`
}

// LookupEnv tiene la firma de os.LookupEnv; los tests inyectan un mapa.
type LookupEnv func(key string) (string, bool)

// DefaultInputs retorna los inputs por defecto.
func DefaultInputs() Inputs {
	return Inputs{
		Version: "stable",
		Neovim:  "false",
	}
}

// Load inicializa los inputs: defaults -> fichero YAML -> ENV (INPUT_*) -> FLAGS.
// Solo los flags indicados explícitamente sobreescriben capas anteriores.
func Load(args []string, lookup LookupEnv) (Inputs, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var flags Inputs
	fs := newFlagSet(&flags)
	if err := fs.Parse(args); err != nil {
		return Inputs{}, err
	}
	// Los booleanos con NoOptDefVal no consumen el siguiente argumento
	if rest := fs.Args(); len(rest) > 0 {
		return Inputs{}, errors.Errorf("unexpected arguments: %s (boolean flags take '=', e.g. --neovim=false)",
			strings.Join(rest, " "))
	}

	in := DefaultInputs()
	in.ConfigPath = flags.ConfigPath
	in.Verbose = flags.Verbose
	in.Quiet = flags.Quiet
	in.ShowVersion = flags.ShowVersion

	if in.ConfigPath != "" {
		if err := loadFromFile(&in, in.ConfigPath); err != nil {
			return Inputs{}, err
		}
	}

	loadFromEnv(&in, lookup)
	loadFromFlags(&in, &flags, fs)

	return in, nil
}

func newFlagSet(in *Inputs) *pflag.FlagSet {
	fs := pflag.NewFlagSet("setup-vim", pflag.ContinueOnError)
	fs.StringVar(&in.Version, "version", "", "Editor version: stable, nightly or a release tag")
	fs.StringVar(&in.Neovim, "neovim", "", "Install Neovim instead of Vim (true/false)")
	fs.Lookup("neovim").NoOptDefVal = "true"
	fs.StringVar(&in.ConfigureArgs, "configure-args", "", "Extra arguments for ./configure when building Vim")
	fs.StringVar(&in.Token, "token", "", "GitHub token for release API calls")
	fs.StringVar(&in.InstallRoot, "install-root", "", "Directory under which editors are installed (default: home)")
	fs.StringVarP(&in.ConfigPath, "config", "c", "", "YAML file with inputs")
	fs.BoolVar(&in.Verbose, "verbose", false, "Verbose mode (debug logging)")
	fs.BoolVarP(&in.Quiet, "quiet", "q", false, "Quiet mode (no UI)")
	fs.BoolVarP(&in.ShowVersion, "print-version", "V", false, "Show version and exit")
	fs.Usage = func() { PrintHelp(os.Stderr) }
	return fs
}

// loadFromFile carga inputs desde un fichero YAML.
func loadFromFile(in *Inputs, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read inputs file %s", path)
	}

	// Las claves ausentes conservan el valor de la capa anterior
	if err := yaml.Unmarshal(data, in); err != nil {
		return errors.Wrapf(err, "failed to parse inputs file %s", path)
	}
	return nil
}

// loadFromEnv carga los inputs que el runner de Actions exporta como INPUT_<NOMBRE>.
// Un input vacío o solo con espacios no sobreescribe la capa anterior.
func loadFromEnv(in *Inputs, lookup LookupEnv) {
	gha := githubactions.New(githubactions.WithGetenv(func(key string) string {
		v, _ := lookup(key)
		return v
	}))

	fields := []struct {
		name string
		dst  *string
	}{
		{"version", &in.Version},
		{"neovim", &in.Neovim},
		{"configure-args", &in.ConfigureArgs},
		{"token", &in.Token},
		{"install-root", &in.InstallRoot},
	}
	for _, f := range fields {
		if v := gha.GetInput(f.name); v != "" {
			*f.dst = v
		}
	}
}

// loadFromFlags aplica los flags que el usuario indicó explícitamente.
func loadFromFlags(in, flags *Inputs, fs *pflag.FlagSet) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "version":
			in.Version = flags.Version
		case "neovim":
			in.Neovim = flags.Neovim
		case "configure-args":
			in.ConfigureArgs = flags.ConfigureArgs
		case "token":
			in.Token = flags.Token
		case "install-root":
			in.InstallRoot = flags.InstallRoot
		}
	})
}

// Resolve valida los inputs y construye la configuración inmutable de la ejecución.
func Resolve(in Inputs, platform system.Platform, lookup LookupEnv) (domain.Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	neovim, ok := validator.ParseBool(in.Neovim, false)
	if !ok {
		return domain.Config{}, &domain.ConfigError{
			Field:  "neovim",
			Value:  in.Neovim,
			Reason: "boolean value must be 'true' or 'false'",
		}
	}

	version, err := resolveVersion(in.Version, neovim)
	if err != nil {
		return domain.Config{}, err
	}

	if !platform.OS.IsValid() || !platform.Arch.IsValid() {
		return domain.Config{}, &domain.ConfigError{
			Field:  "platform",
			Value:  fmt.Sprintf("%s/%s", platform.OS, platform.Arch),
			Reason: fmt.Sprintf("unsupported platform. OS must be one of %s and architecture one of %s", supportedOS, supportedArch),
		}
	}

	token := in.Token
	if token == "" {
		if v, ok := lookup("GITHUB_TOKEN"); ok {
			token = v
		}
	}

	root, err := resolveInstallRoot(in.InstallRoot)
	if err != nil {
		return domain.Config{}, err
	}

	return domain.Config{
		Version:       version,
		Neovim:        neovim,
		OS:            platform.OS,
		Arch:          platform.Arch,
		ConfigureArgs: strings.TrimSpace(in.ConfigureArgs),
		Token:         token,
		InstallRoot:   root,
	}, nil
}

func resolveVersion(v string, neovim bool) (string, error) {
	if v == "" {
		return "stable", nil
	}
	if validator.IsReleaseChannel(v) {
		return strings.ToLower(v), nil
	}

	if neovim {
		if validator.IsNeovimTag(v) {
			return v, nil
		}
		return "", &domain.ConfigError{
			Field: "version",
			Value: v,
			Reason: fmt.Sprintf("it is not a format of Git tags in %s repository. It should match to regex /%s/. NOTE: It requires 'v' prefix",
				domain.EditorNeovim.Repository(), validator.NeovimTagPattern),
		}
	}

	if validator.IsVimTag(v) {
		return v, nil
	}
	return "", &domain.ConfigError{
		Field: "version",
		Value: v,
		Reason: fmt.Sprintf("it is not a format of Git tags in %s repository. It should match to regex /%s/. NOTE: It requires 'v' prefix. NOTE: Vim requires 4-digit patch version like 'v8.2.0126'",
			domain.EditorVim.Repository(), validator.VimTagPattern),
	}
}

func resolveInstallRoot(root string) (string, error) {
	if root == "" {
		root = "~"
	}
	expanded, err := system.ExpandHome(root)
	if err != nil {
		return "", &domain.ConfigError{Field: "install-root", Value: root, Reason: err.Error()}
	}
	return expanded, nil
}
