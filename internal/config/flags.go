package config

import (
	"io"

	"github.com/spf13/pflag"

	"lss/internal/domain"
)

const usageHeader = "Usage: lss [OPTION]... [PATH]...\nls command supplement: list directories with aggregated sizes, counts and markers.\n\n"

// ParseFlags overrides base with the command line. Positional arguments
// replace the default paths. pflag.ErrHelp is returned for -h/--help after
// the usage text is written to output.
func ParseFlags(base Config, args []string, output io.Writer) (Config, error) {
	flags := pflag.NewFlagSet("lss", pflag.ContinueOnError)
	flags.SetOutput(output)
	flags.Usage = func() {
		io.WriteString(output, usageHeader)
		flags.PrintDefaults()
	}
	flags.SortFlags = false

	config := base
	var hide []string
	var sortTime, sortSize bool
	timeout := config.Timeout.Seconds()

	flags.BoolVarP(&config.All, "all", "a", config.All, "do not ignore entries starting with '.'")
	flags.BoolVarP(&config.IgnoreBackups, "ignore-backups", "B", config.IgnoreBackups, "do not list implied entries ending with '~'")
	flags.StringArrayVarP(&config.Ignore, "ignore", "I", config.Ignore, "do not list implied entries matching shell `PATTERN`")
	flags.StringArrayVar(&hide, "hide", nil, "like --ignore")
	flags.BoolVarP(&config.Reverse, "reverse", "r", config.Reverse, "reverse order while sorting")
	flags.BoolVarP(&sortTime, "sort-time", "t", false, "sort by modification time")
	flags.BoolVarP(&sortSize, "sort-size", "S", false, "sort by size (wins over --sort-time)")
	flags.BoolVarP(&config.Inode, "inode", "i", config.Inode, "print the index number of each file")
	flags.BoolVarP(&config.Dereference, "dereference", "L", config.Dereference, "describe the target of symbolic links")
	flags.Float64VarP(&timeout, "timeout", "T", timeout, "stop traversing large trees after `SECS` seconds")
	flags.BoolVar(&config.CrossMount, "cross-mount", config.CrossMount, "cross filesystem mount points")
	flags.IntVar(&config.MaxDepth, "max-depth", config.MaxDepth, "list entries up to `N` levels deep (0..3)")
	flags.StringVar(&config.Color, "color", config.Color, "colorize the output: `WHEN` is auto, always or never")
	noMarkers := flags.Bool("no-markers", !config.Markers, "do not run marker plugins")
	flags.BoolVar(&config.Browse, "browse", config.Browse, "browse the listing interactively")
	flags.BoolVar(&config.Debug, "debug", config.Debug, "enable debug logging")
	flags.BoolVar(&config.Version, "version", false, "print version and exit")

	if err := flags.Parse(args); err != nil {
		return base, err
	}

	config.Ignore = append(append([]string(nil), config.Ignore...), hide...)
	config.Timeout = seconds(timeout)
	config.Markers = !*noMarkers
	switch {
	case sortSize:
		config.SortMode = domain.SortBySize
	case sortTime:
		config.SortMode = domain.SortByMod
	}
	if flags.NArg() > 0 {
		config.Paths = flags.Args()
	}
	return config, nil
}
