package cli

import (
	"github.com/spf13/viper"

	"codeberg.org/snonux/phonewords/internal/translator"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	Separator string
	DBPath    string
	Archive   bool
	NoFold    bool

	// Search flags
	DigitsAfterShortWords bool

	// Logging flags
	LogLevel  string
	LogFormat string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Separator: translator.DefaultSeparator,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Resolve fills the settings from viper, which already merges explicit
// flags, PHONEWORDS_* environment variables and the config file in that
// order of precedence. CfgFile is left untouched.
func (f *Flags) Resolve() {
	f.Separator = viper.GetString("output.separator")
	f.DBPath = viper.GetString("output.db")
	f.Archive = viper.GetBool("output.archive")
	f.NoFold = viper.GetBool("dictionary.no_fold")
	f.DigitsAfterShortWords = viper.GetBool("search.digits_after_short_words")
	f.LogLevel = viper.GetString("log.level")
	f.LogFormat = viper.GetString("log.format")
}
