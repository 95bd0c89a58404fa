package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config wraps viper. Settings come from command-line flags, with
// BOGGLE_-prefixed environment variables as fallback.
type Config struct {
	v *viper.Viper
}

func DefaultConfig() *Config {
	v := viper.New()
	v.SetEnvPrefix("boggle")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("board-file", "board.txt")
	v.SetDefault("dictionary-file", "words.txt")
	v.SetDefault("dictionary-db", "")
	v.SetDefault("max-word-length", 0)
	v.SetDefault("debug", false)
	v.SetDefault("cpu-profile", "")
	return &Config{v: v}
}

// Load parses command-line arguments into the config.
func (c *Config) Load(args []string) error {
	fs := pflag.NewFlagSet("boggle", pflag.ContinueOnError)
	fs.String("board-file", c.v.GetString("board-file"), "path to the game board file")
	fs.String("dictionary-file", c.v.GetString("dictionary-file"), "path to the dictionary word list")
	fs.String("dictionary-db", c.v.GetString("dictionary-db"), "path to a sqlite lexicon database; takes precedence over dictionary-file when set")
	fs.Int("max-word-length", c.v.GetInt("max-word-length"), "cap on dictionary word length; 0 means the board cell count")
	fs.Bool("debug", c.v.GetBool("debug"), "enable debug logging")
	fs.String("cpu-profile", c.v.GetString("cpu-profile"), "write a CPU profile to this path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.v.BindPFlags(fs)
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// Set overrides a setting. Used by the shell's `set` command and tests.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}
