package domain

// Names fixed by the game client. Changing any of these breaks
// compatibility with the layout the client writes.
const (
	WTFDir            = "WTF"
	AccountDir        = "Account"
	SavedVariablesDir = "SavedVariables"
	CacheFile         = "cache.md5"
	LuaExt            = ".lua"
)

var AccountFiles = []string{
	"bindings-cache.wtf",
	"config-cache.wtf",
	"macros-cache.txt",
	"edit-mode-cache-account.txt",
}

var CharacterFiles = []string{
	"AddOns.txt",
	"config-cache.wtf",
	"layout-local.txt",
	"macros-cache.txt",
	"edit-mode-cache-character.txt",
}
