package cli

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
)

// ParseArgs parses command line arguments into Config. Flags override
// GS2TC_* environment variables, which override built-in defaults.
func ParseArgs(args []string) (*Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	fs := pflag.NewFlagSet("gs2tc", pflag.ContinueOnError)
	fs.StringVarP(&cfg.Language, "lang", "l", cfg.Language, "target document language (default: from --target, else typescript)")
	fs.StringVarP(&cfg.Input, "in", "i", cfg.Input, "read Go source from file instead of the clipboard (- for stdin)")
	fs.StringVarP(&cfg.Output, "out", "o", cfg.Output, "write result to file instead of the clipboard (- for stdout)")
	fs.StringVarP(&cfg.Target, "target", "t", cfg.Target, "paste into this file at the selection")
	fs.IntVar(&cfg.SelStart, "sel-start", cfg.SelStart, "selection start byte offset in --target (default: end of file)")
	fs.IntVar(&cfg.SelEnd, "sel-end", cfg.SelEnd, "selection end byte offset in --target (default: --sel-start)")
	fs.BoolVar(&cfg.Gofmt, "gofmt", cfg.Gofmt, "gofmt the clipboard text before scanning")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.BoolVar(&cfg.LogJSON, "log-json", cfg.LogJSON, "log as JSON")
	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ShowVersion {
		return cfg, nil
	}
	if fs.NArg() > 0 {
		return nil, errors.Newf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
