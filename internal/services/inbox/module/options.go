package module

import (
	"nadbot/internal/platform/config"
)

// Tokenizer choices for INBOX_TOKENIZER
const (
	TokenizerScript = "script"
	TokenizerDict   = "dict"
)

// Options controls how incoming text is segmented
type Options struct {
	Tokenizer string
}

// FromConfig reads INBOX_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	ic := cfg.Prefix("INBOX_")
	return Options{
		Tokenizer: ic.MayEnum("TOKENIZER", TokenizerScript, TokenizerScript, TokenizerDict),
	}
}
