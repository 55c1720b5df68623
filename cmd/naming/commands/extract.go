package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/casetools/naming/extractor"
	"github.com/casetools/naming/internal/cliutil"
)

// markerList collects repeated --marker flag values.
type markerList []string

// String implements flag.Value.
func (m *markerList) String() string { return strings.Join(*m, ",") }

// Set implements flag.Value.
func (m *markerList) Set(value string) error {
	if value == "" {
		return fmt.Errorf("marker cannot be empty")
	}
	*m = append(*m, value)
	return nil
}

// ExtractFlags contains flags for the extract command
type ExtractFlags struct {
	Markers   markerList
	Locator   string
	NoConvert bool
	Filter    string
	Order     string
	Strict    bool
	Regex     bool
	Format    string
	Output    string
	EOF       string
	Verbose   bool
}

// SetupExtractFlags creates and configures a FlagSet for the extract command.
// Returns the FlagSet and an ExtractFlags struct with bound flag variables.
func SetupExtractFlags() (*flag.FlagSet, *ExtractFlags) {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	flags := &ExtractFlags{}

	fs.Var(&flags.Markers, "m", "only capture identifiers immediately following this marker (repeatable)")
	fs.Var(&flags.Markers, "marker", "only capture identifiers immediately following this marker (repeatable)")
	fs.StringVar(&flags.Locator, "locator", "", "custom token regular expression replacing the default identifier shape")
	fs.BoolVar(&flags.NoConvert, "no-convert", false, "output the captured identifiers without converting them")
	fs.StringVar(&flags.Filter, "filter", "", "only convert identifiers already in these formats, e.g. \"Ssk\" (letters: S s k c h p)")
	fs.StringVar(&flags.Order, "order", "", "conventions to output and their order, e.g. \"pcs\" (default: all, canonical order)")
	fs.BoolVar(&flags.Strict, "strict", false, "fail on identifiers with unsupported characters instead of passing them through")
	fs.BoolVar(&flags.Regex, "regex", false, "output an OR-regex matching every rendering instead of the renderings themselves")
	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.EOF, "eof", "", "stop reading stdin once this marker line is read")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log extraction details to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: naming extract [flags] [file...]\n\n")
		cliutil.Writef(fs.Output(), "Extract identifiers from free-form text and convert them.\n\n")
		cliutil.Writef(fs.Output(), "Reads the given files, or stdin when no file is given ('-' also reads\n")
		cliutil.Writef(fs.Output(), "stdin). Every identifier-like token is captured; with --marker, only\n")
		cliutil.Writef(fs.Output(), "tokens immediately following a marker string are captured.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  naming extract notes.txt\n")
		cliutil.Writef(fs.Output(), "  naming extract -m @name -m @field design.md\n")
		cliutil.Writef(fs.Output(), "  naming extract --locator '[A-Z][A-Z_]+' constants.txt\n")
		cliutil.Writef(fs.Output(), "  naming extract --no-convert notes.txt\n")
		cliutil.Writef(fs.Output(), "  cat snippet.go | naming extract --filter c -f json\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Extraction successful\n")
		cliutil.Writef(fs.Output(), "  1    Invalid flags, unreadable input, or invalid identifier in --strict mode\n")
	}

	return fs, flags
}

// HandleExtract executes the extract command
func HandleExtract(args []string) error {
	fs, flags := SetupExtractFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		fs.Usage()
		return err
	}

	text, err := cliutil.ReadText(fs.Args(), flags.EOF)
	if err != nil {
		return err
	}

	e := extractor.New()
	e.Markers = flags.Markers
	e.Locator = flags.Locator
	e.Logger = NewLogger(flags.Verbose)
	identifiers, err := e.Extract(text)
	if err != nil {
		return fmt.Errorf("extracting identifiers: %w", err)
	}

	if flags.NoConvert {
		if flags.Format != FormatText {
			data, err := MarshalStructured(identifierResult{Result: identifiers}, flags.Format)
			if err != nil {
				return err
			}
			return WriteOutput(append(data, '\n'), flags.Output)
		}
		out := strings.Join(identifiers, "\n")
		if out != "" {
			out += "\n"
		}
		return WriteOutput([]byte(out), flags.Output)
	}

	c, err := NewConverter(flags.Filter, flags.Order, flags.Strict)
	if err != nil {
		return err
	}

	conversions, err := c.Convert(identifiers)
	if err != nil {
		return fmt.Errorf("converting extracted identifiers: %w", err)
	}

	data, err := RenderConversions(c, conversions, flags.Regex, flags.Format)
	if err != nil {
		return err
	}
	return WriteOutput(data, flags.Output)
}

// identifierResult is the structured envelope for --no-convert output.
type identifierResult struct {
	Result []string `json:"result" yaml:"result"`
}
