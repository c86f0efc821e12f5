// internal/testutil/fixtures.go
package testutil

// Fixture data para tests (valores primitivos solamente, sin dependencias de domain)

// RuntimeParts son las subcarpetas que el validador exige en un runtime.
var RuntimeParts = []string{"autoload", "syntax", "plugin", "indent", "ftplugin", "doc"}

// FixtureVimTags contiene tags válidos de vim/vim.
var FixtureVimTags = []string{
	"v8.2.0126",
	"v9.1.0000",
	"v8.0.1234",
	"v7.4",
	"v7.4.100",
	"v7.3.1",
}

// FixtureInvalidVimTags contiene versiones que vim/vim nunca usa como tag.
var FixtureInvalidVimTags = []string{
	"v8.2.100",
	"8.2.0126",
	"v8.2",
	"v9.1.00001",
	"latest",
	"v8.2.0126-rc",
}

// FixtureNeovimTags contiene tags válidos de neovim/neovim.
var FixtureNeovimTags = []string{
	"v0.4.3",
	"v0.10.4",
	"v0.11.0",
}

// FixtureInvalidNeovimTags contiene versiones inválidas para neovim/neovim.
var FixtureInvalidNeovimTags = []string{
	"0.4.3",
	"v0.4",
	"v0.4.3.1",
	"nvim-0.4.3",
}
