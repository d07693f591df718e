package cli

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/seitarof/gs2tc/internal/editor"
)

// EnvPrefix prefixes every environment variable read into Config.
const EnvPrefix = "GS2TC_"

// Config stores options for a single paste run.
type Config struct {
	// Language is the target document language. Empty means "derive it":
	// from Target's extension when set, typescript otherwise.
	Language string `koanf:"lang"`

	// Input is a file to read instead of the clipboard ("-" for stdin).
	Input string `koanf:"in"`

	// Output is a file to write instead of the clipboard ("-" for stdout).
	Output string `koanf:"out"`

	// Target is a document to paste into at [SelStart, SelEnd).
	Target   string `koanf:"target"`
	SelStart int    `koanf:"sel_start"`
	SelEnd   int    `koanf:"sel_end"`
	Gofmt    bool   `koanf:"gofmt"`
	LogLevel string `koanf:"log_level"`
	LogJSON  bool   `koanf:"log_json"`

	ShowVersion bool `koanf:"-"`
}

// DefaultConfig returns the built-in defaults. A negative SelStart means end of
// document; a negative SelEnd means "same as SelStart".
func DefaultConfig() *Config {
	return &Config{
		SelStart: -1,
		SelEnd:   -1,
		LogLevel: "warn",
	}
}

// LoadConfig layers environment variables over DefaultConfig.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return nil, errors.Wrap(err, "load defaults")
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnvKey,
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load environment")
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return cfg, nil
}

// transformEnvKey maps GS2TC_LOG_LEVEL to log_level.
func transformEnvKey(key string, value string) (string, any) {
	return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
}

// LanguageID resolves the effective document language.
func (c *Config) LanguageID() string {
	if lang := strings.TrimSpace(c.Language); lang != "" {
		return lang
	}
	if c.Target != "" {
		return editor.LanguageIDFromPath(c.Target)
	}
	return editor.LanguageTypeScript
}

// Selection resolves the paste range for a target document of docLen bytes.
func (c *Config) Selection(docLen int) editor.Selection {
	start := c.SelStart
	if start < 0 {
		start = docLen
	}
	end := c.SelEnd
	if end < 0 {
		end = start
	}
	return editor.Selection{Start: start, End: end}.Normalize(docLen)
}

func (c *Config) validate() error {
	if c.Target == "" {
		if c.SelStart >= 0 || c.SelEnd >= 0 {
			return errors.New("--sel-start/--sel-end require --target")
		}
		return nil
	}
	if c.Output != "" {
		return errors.New("--out and --target are mutually exclusive")
	}
	if c.SelStart >= 0 && c.SelEnd >= 0 && c.SelEnd < c.SelStart {
		return errors.Newf("--sel-end (%d) is before --sel-start (%d)", c.SelEnd, c.SelStart)
	}
	return nil
}
