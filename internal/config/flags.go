package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into selection, behavior, display, and utility.
// Negated flags (e.g. --no-color) are applied after Parse so Config defaults
// hold unless set.

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and exits.
// On error it returns non-nil (e.g. unknown flag, missing positional arg).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet(cfg.Op.Command(), flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, cfg.Op, version) }

	// Negated/override flags: we capture bools then apply to cfg after Parse,
	// so that defaults from DefaultConfig() hold unless the user passes the flag.
	var negated negatedFlags

	defineSelectionFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg, &negated)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(fs, cfg.Op, version)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, cfg.Op.Command()+" v"+version)
		os.Exit(0)
	}

	if negated.overwrite {
		cfg.Mode = ModeOverwrite
	}

	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a default (e.g. noColor -> ColorMode=never) or trigger
// exit (showHelp, showVersion).
type negatedFlags struct {
	overwrite   bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineSelectionFlags registers -k/--keyword and --ext.
func defineSelectionFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Keyword, "keyword", cfg.Keyword, "Filter keyword matched against filenames")
	fs.StringVar(&cfg.Keyword, "k", cfg.Keyword, "Same as --keyword")
	fs.StringVar(&cfg.Ext, "ext", cfg.Ext, "Target media extension")
}

// defineBehaviorFlags registers overwrite (captured for post-Parse
// application), dry-run, and ignore-errors.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.overwrite, "overwrite", false, "Replace originals in place instead of writing suffixed copies")
	fs.BoolVar(&n.overwrite, "w", false, "Same as --overwrite")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; do not transcode")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.BoolVar(&cfg.IgnoreErrors, "ignore-errors", false, "Exit 0 even when some files failed")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output (show live ffmpeg stats)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated flag values into cfg.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets RootDir from the single positional arg when not in
// CheckOnly mode.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("need exactly one target directory")
	}
	cfg.RootDir = NormalizeDirArg(args[0])
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, op Op, version string) {
	selects := "Selects *.mp4 files WITHOUT the keyword and crops them to their top half."
	keywordDesc := "Keyword excluded from filenames (default: motion)"
	suffixNote := "_cropped"
	if op == OpWeb {
		selects = "Selects *.mp4 files WITH the keyword and re-encodes them for web playback."
		keywordDesc = "Keyword required in filenames (default: motion)"
		suffixNote = "_new"
	}

	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", op.Command() + " v" + version + " — batch ffmpeg video processor"},
		{"", selects},
		{"", ""},
		{"  " + op.Command() + " [OPTIONS] <directory>", ""},
		{"", ""},
		{"Selection", ""},
		{"  -k, --keyword <word>", keywordDesc},
		{"  --ext <.mp4>", "Target media extension (default: .mp4)"},
		{"", ""},
		{"Output & behavior", ""},
		{"  -w, --overwrite", "Replace originals in place (default: write " + suffixNote + " copies)"},
		{"  -d, --dry-run", "Preview only; do not transcode"},
		{"  --ignore-errors", "Exit 0 even when some files failed"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output (live ffmpeg stats)"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (ffmpeg, libx264)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
