package commands

// App-level flags (parsed before any subcommand runs, §9 "one structure
// per subcommand" generalized to the root flags that apply regardless of
// which subcommand is chosen).
const (
	ConfigPathFlag = "config"
	// No shorthand: generate's -c/--custom-charset already claims "c" and
	// cobra merges persistent and local shorthands into one flag set.
	ConfigPathShortFlag    = ""
	ConfigPathDefaultValue = ""
	ConfigPathUsage        = "Location of config file"

	DebugModeFlag         = "debug"
	DebugModeShortFlag    = "d"
	DebugModeDefaultValue = false
	DebugModeUsage        = "Enable debug mode (print stack traces on failure)"

	LogFormatFlag         = "log-format"
	LogFormatShortFlag    = ""
	LogFormatDefaultValue = ""
	LogFormatUsage        = "Log output format: text or json"
)

// generate flags (§6).
const (
	MinLenFlag         = "minlen"
	MinLenShortFlag    = "m"
	MinLenDefaultValue = 0
	MinLenUsage        = "Minimum output length for the mask family"

	MaxLenFlag         = "maxlen"
	MaxLenShortFlag    = "x"
	MaxLenDefaultValue = 0
	MaxLenUsage        = "Maximum output length for the mask family"

	CustomCharsetFlag      = "custom-charset"
	CustomCharsetShortFlag = "c"
	CustomCharsetUsage     = "Custom charset bound to ?1..?9 in occurrence order (repeatable, up to 9)"

	WordlistFlag      = "wordlist"
	WordlistShortFlag = "w"
	WordlistUsage     = "Word-list file bound to ?w1..?w9 in occurrence order (repeatable, up to 9)"

	MasksFileFlag      = "masks-file"
	MasksFileShortFlag = "i"
	MasksFileUsage     = "File containing one mask per line, in place of a positional mask"

	OutputFileFlag         = "output-file"
	OutputFileShortFlag    = "o"
	OutputFileDefaultValue = ""
	OutputFileUsage        = "Output file for generated candidates (default stdout)"

	StatsFlag         = "stats"
	StatsShortFlag    = "s"
	StatsDefaultValue = false
	StatsUsage        = "Print the exact candidate count and exit"
)

// create flags (§6).
const (
	CorpusFileFlag      = "file"
	CorpusFileShortFlag = "f"
	CorpusFileUsage     = "Password corpus file to train on (repeatable, required)"

	SmartlistOutFlag      = "smartlist"
	SmartlistOutShortFlag = "o"
	SmartlistOutUsage     = "Output path for the constructed smartlist (required)"

	TokenizerFlag         = "tokenizer"
	TokenizerShortFlag    = "t"
	TokenizerDefaultValue = "bpe"
	TokenizerUsage        = "Tokenizer algorithm: bpe, unigram or wordpiece (repeatable, default bpe)"

	VocabMaxSizeFlag         = "vocab-max-size"
	VocabMaxSizeShortFlag    = "m"
	VocabMaxSizeDefaultValue = 0
	VocabMaxSizeUsage        = "Maximum vocabulary size (0 = unbounded)"

	MinFrequencyFlag         = "min-frequency"
	MinFrequencyShortFlag    = ""
	MinFrequencyDefaultValue = 0
	MinFrequencyUsage        = "Minimum pair frequency to accept a merge (BPE only)"

	MinWordLenFlag         = "min-word-len"
	MinWordLenShortFlag    = "l"
	MinWordLenDefaultValue = 0
	MinWordLenUsage        = "Drop vocabulary entries shorter than this"

	NumbersMaxSizeFlag         = "numbers-max-size"
	NumbersMaxSizeShortFlag    = ""
	NumbersMaxSizeDefaultValue = 0
	NumbersMaxSizeUsage        = "Drop all-digit vocabulary entries longer than this"

	QuietFlag         = "quiet"
	QuietShortFlag    = "q"
	QuietDefaultValue = false
	QuietUsage        = "Suppress progress logging"
)

// entropy flags (§6).
const (
	PasswordsFileFlag      = "passwords-file"
	PasswordsFileShortFlag = "p"
	PasswordsFileUsage     = "File of newline-separated passwords, in place of a positional password"

	SmartlistFlag      = "smartlist"
	SmartlistShortFlag = "f"
	SmartlistUsage     = "Smartlist file to decompose against (repeatable, required)"

	MaskTypeFlag         = "mask-type"
	MaskTypeShortFlag    = "t"
	MaskTypeDefaultValue = "hybrid"
	MaskTypeUsage        = "Decomposition to report: hybrid or charset"

	SummaryFlag         = "summary"
	SummaryShortFlag    = "s"
	SummaryDefaultValue = false
	SummaryUsage        = "Print an aggregate summary instead of per-password reports"
)
