package formatter

import "github.com/casetools/naming/segmenter"

// Conversion pairs an original identifier with all five of its renderings.
// The field names and their order are a compatibility contract for any
// consumer parsing structured output.
type Conversion struct {
	Origin         string `json:"origin" yaml:"origin"`
	ScreamingSnake string `json:"screaming_snake" yaml:"screaming_snake"`
	Snake          string `json:"snake" yaml:"snake"`
	Kebab          string `json:"kebab" yaml:"kebab"`
	Camel          string `json:"camel" yaml:"camel"`
	Pascal         string `json:"pascal" yaml:"pascal"`
}

// Convert renders origin's word sequence into a Conversion record.
func Convert(origin string, words []segmenter.Word) Conversion {
	r := FormatAll(words)
	return Conversion{
		Origin:         origin,
		ScreamingSnake: r.ScreamingSnake,
		Snake:          r.Snake,
		Kebab:          r.Kebab,
		Camel:          r.Camel,
		Pascal:         r.Pascal,
	}
}

// Rendering returns the conversion's five target strings.
func (c Conversion) Rendering() Rendering {
	return Rendering{
		ScreamingSnake: c.ScreamingSnake,
		Snake:          c.Snake,
		Kebab:          c.Kebab,
		Camel:          c.Camel,
		Pascal:         c.Pascal,
	}
}
