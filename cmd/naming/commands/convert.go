package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/casetools/naming/converter"
	"github.com/casetools/naming/formatter"
	"github.com/casetools/naming/internal/cliutil"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Filter string
	Order  string
	Strict bool
	Regex  bool
	Format string
	Output string
	EOF    string
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Filter, "filter", "", "only convert identifiers already in these formats, e.g. \"Ssk\" (letters: S s k c h p)")
	fs.StringVar(&flags.Order, "order", "", "conventions to output and their order, e.g. \"pcs\" (default: all, canonical order)")
	fs.BoolVar(&flags.Strict, "strict", false, "fail on identifiers with unsupported characters instead of passing them through")
	fs.BoolVar(&flags.Regex, "regex", false, "output an OR-regex matching every rendering instead of the renderings themselves")
	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.EOF, "eof", "", "stop reading stdin once this marker line is read")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: naming convert [flags] [file...]\n\n")
		cliutil.Writef(fs.Output(), "Convert identifiers into every naming convention.\n\n")
		cliutil.Writef(fs.Output(), "Reads one identifier per line from the given files, or from stdin when no\n")
		cliutil.Writef(fs.Output(), "file is given ('-' also reads stdin). Blank lines are skipped.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nFilter Letters:\n")
		cliutil.Writef(fs.Output(), "  S    SCREAMING_SNAKE_CASE\n")
		cliutil.Writef(fs.Output(), "  s    snake_case\n")
		cliutil.Writef(fs.Output(), "  k    kebab-case\n")
		cliutil.Writef(fs.Output(), "  c    camelCase\n")
		cliutil.Writef(fs.Output(), "  h    hungarian notation (camelCase with a type prefix; the prefix is dropped)\n")
		cliutil.Writef(fs.Output(), "  p    PascalCase\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  echo userId | naming convert\n")
		cliutil.Writef(fs.Output(), "  naming convert identifiers.txt\n")
		cliutil.Writef(fs.Output(), "  naming convert --filter c --order sS identifiers.txt\n")
		cliutil.Writef(fs.Output(), "  naming convert --regex -f json identifiers.txt\n")
		cliutil.Writef(fs.Output(), "  naming convert --eof DONE\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Conversion successful\n")
		cliutil.Writef(fs.Output(), "  1    Invalid flags, unreadable input, or invalid identifier in --strict mode\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

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

	c, err := NewConverter(flags.Filter, flags.Order, flags.Strict)
	if err != nil {
		return err
	}

	identifiers, err := cliutil.ReadLines(fs.Args(), flags.EOF)
	if err != nil {
		return err
	}

	conversions, err := c.Convert(identifiers)
	if err != nil {
		return fmt.Errorf("converting identifiers: %w", err)
	}

	data, err := RenderConversions(c, conversions, flags.Regex, flags.Format)
	if err != nil {
		return err
	}
	return WriteOutput(data, flags.Output)
}

// RenderConversions renders conversions in the requested output format,
// as plain renderings or as OR-regexes.
func RenderConversions(c *converter.Converter, conversions []formatter.Conversion, regex bool, format string) ([]byte, error) {
	if format == FormatText {
		var out string
		if regex {
			out = c.RegexLines(conversions)
		} else {
			out = c.Lines(conversions)
		}
		if out != "" {
			out += "\n"
		}
		return []byte(out), nil
	}

	var payload any
	if regex {
		payload = converter.RegexResult{Result: c.RegexRecords(conversions)}
	} else {
		payload = converter.Result{Result: conversions}
	}
	data, err := MarshalStructured(payload, format)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
