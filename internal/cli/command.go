package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/phonewords/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "phonewords <dictionary> <phone-numbers>",
		Short: "Phone number to word translator",
		Long: `phonewords prints every way the phone numbers in a file can be
spelled with words from a dictionary.

Each letter stands for one digit:
  e=0  jnq=1  rwx=2  dsy=3  ft=4  am=5  civ=6  bku=7  lop=8  ghz=9

Where no word fits, a single digit may stand for itself, but never two
digits in a row.

Examples:
  phonewords dictionary.txt input.txt
  phonewords --db results.db --archive dictionary.txt input.txt`,
		Args:    cobra.ExactArgs(2),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.phonewords.yaml)")

	// Output flags
	cmd.Flags().StringVar(&flags.Separator, "separator", flags.Separator, "Separator between phone number and words")
	cmd.Flags().StringVar(&flags.DBPath, "db", "", "Also store results in this SQLite database")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move an existing --db file to an archive directory first")

	// Dictionary and search flags
	cmd.Flags().BoolVar(&flags.NoFold, "no-fold", false, "Do not fold accented letters (ö -> o) when encoding dictionary words")
	cmd.Flags().BoolVar(&flags.DigitsAfterShortWords, "digits-after-short-words", false, "Allow a lone digit right after a one-letter word")

	// Logging flags
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	cmd.Flags().StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: text or json")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.separator", cmd.Flags().Lookup("separator"))
	viper.BindPFlag("output.db", cmd.Flags().Lookup("db"))
	viper.BindPFlag("output.archive", cmd.Flags().Lookup("archive"))
	viper.BindPFlag("dictionary.no_fold", cmd.Flags().Lookup("no-fold"))
	viper.BindPFlag("search.digits_after_short_words", cmd.Flags().Lookup("digits-after-short-words"))
	viper.BindPFlag("log.level", cmd.Flags().Lookup("log-level"))
	viper.BindPFlag("log.format", cmd.Flags().Lookup("log-format"))
}

// InitConfig initializes viper configuration. A missing default config file
// is fine; a config file named explicitly must be readable.
func InitConfig(cfgFile string) error {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in home directory with name ".phonewords" (without extension)
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".phonewords")
	}

	// Environment variables, e.g. PHONEWORDS_OUTPUT_SEPARATOR
	viper.SetEnvPrefix("PHONEWORDS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}
