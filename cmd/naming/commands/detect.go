package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/casetools/naming/converter"
	"github.com/casetools/naming/internal/cliutil"
)

// DetectFlags contains flags for the detect command
type DetectFlags struct {
	Format string
	Output string
	EOF    string
}

// Detection pairs an identifier with the convention it was recognized as.
type Detection struct {
	Identifier string `json:"identifier" yaml:"identifier"`
	Convention string `json:"convention,omitempty" yaml:"convention,omitempty"`
	Valid      bool   `json:"valid" yaml:"valid"`
}

// DetectionResult is the structured output envelope for detect.
type DetectionResult struct {
	Result []Detection `json:"result" yaml:"result"`
}

// SetupDetectFlags creates and configures a FlagSet for the detect command.
// Returns the FlagSet and a DetectFlags struct with bound flag variables.
func SetupDetectFlags() (*flag.FlagSet, *DetectFlags) {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	flags := &DetectFlags{}

	fs.StringVar(&flags.Format, "f", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.EOF, "eof", "", "stop reading stdin once this marker line is read")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: naming detect [flags] [file...]\n\n")
		cliutil.Writef(fs.Output(), "Detect the naming convention of each identifier.\n\n")
		cliutil.Writef(fs.Output(), "Reads one identifier per line from the given files, or from stdin when no\n")
		cliutil.Writef(fs.Output(), "file is given. A lone lowercase word is reported as snake.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  echo userId | naming detect\n")
		cliutil.Writef(fs.Output(), "  naming detect identifiers.txt\n")
		cliutil.Writef(fs.Output(), "  naming detect -f json identifiers.txt\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Every identifier matched a convention\n")
		cliutil.Writef(fs.Output(), "  1    Invalid flags, unreadable input, or an unrecognized identifier\n")
	}

	return fs, flags
}

// HandleDetect executes the detect command
func HandleDetect(args []string) error {
	fs, flags := SetupDetectFlags()

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

	identifiers, err := cliutil.ReadLines(fs.Args(), flags.EOF)
	if err != nil {
		return err
	}

	detections := make([]Detection, 0, len(identifiers))
	unrecognized := 0
	for _, id := range identifiers {
		convention, ok := converter.Detect(id)
		d := Detection{Identifier: id, Valid: ok}
		if ok {
			d.Convention = convention.String()
		} else {
			unrecognized++
		}
		detections = append(detections, d)
	}

	var data []byte
	if flags.Format == FormatText {
		var b strings.Builder
		for _, d := range detections {
			if d.Valid {
				fmt.Fprintf(&b, "%s\t%s\n", d.Identifier, d.Convention)
			} else {
				fmt.Fprintf(&b, "%s\tunknown\n", d.Identifier)
			}
		}
		data = []byte(b.String())
	} else {
		data, err = MarshalStructured(DetectionResult{Result: detections}, flags.Format)
		if err != nil {
			return err
		}
		data = append(data, '\n')
	}

	if err := WriteOutput(data, flags.Output); err != nil {
		return err
	}

	if unrecognized > 0 {
		return fmt.Errorf("%d identifier(s) matched no convention", unrecognized)
	}
	return nil
}
