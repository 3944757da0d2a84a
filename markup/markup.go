// markup implements the small inline markup language accepted by
// lazylabel records: bbcode-like [tag]...[/tag] spans for color and
// basic styles, with &bl; &br; &amp; as escapes for the literal
// characters '[', ']' and '&'.
//
// Parsing resolves the tags once, up front, into a plain string plus a
// flat list of styled spans. Layout engines consume the spans; nothing
// downstream ever re-inspects the raw text.
package markup

import "fmt"
import "strings"

import "github.com/alecthomas/participle/v2"
import "github.com/alecthomas/participle/v2/lexer"

var (
	markupLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Escape", Pattern: `&(?:bl|br|amp);`},
		{Name: "Close", Pattern: `\[/[A-Za-z]+\]`},
		{Name: "Open", Pattern: `\[[A-Za-z]+(?:=[^\]\n]*)?\]`},
		{Name: "LBracket", Pattern: `\[`},
		{Name: "Amp", Pattern: `&`},
		{Name: "Text", Pattern: `[^\[&]+`},
	})

	markupParser = participle.MustBuild[document](
		participle.Lexer(markupLexer),
	)
)

type document struct {
	Nodes []node `parser:"@@*"`
}

type node struct {
	Escape *string `parser:"  @Escape"`
	Close  *string `parser:"| @Close"`
	Open   *string `parser:"| @Open"`
	Text   *string `parser:"| @(Text | LBracket | Amp)"`
}

// A Span is a run of runes sharing one resolved style. Offsets are
// rune indices into the plain text, half open.
type Span struct {
	Start, End int
	Style      Style
}

// Style is the resolved state of one span. The zero value is the
// default style (inherit the label color, no decorations).
type Style struct {
	Color    RGBA
	HasColor bool

	Bold, Italic, Underline, Strike bool
}

type tagEntry struct {
	name  string
	style Style // style snapshot produced when the tag was opened
}

// Parse resolves the markup tags of text into the plain string to be
// shaped and a contiguous list of styled spans covering it. Unknown
// tags, mismatched closing tags and malformed color values are kept as
// literal text rather than rejected.
func Parse(text string) (string, []Span, error) {
	doc, err := markupParser.ParseString("", text)
	if err != nil {
		return "", nil, fmt.Errorf("invalid markup: %w", err)
	}

	var plain []rune
	var spans []Span
	var stack []tagEntry

	current := func() Style {
		if len(stack) == 0 {
			return Style{}
		}
		return stack[len(stack)-1].style
	}
	appendText := func(s string) {
		if s == "" {
			return
		}
		style := current()
		start := len(plain)
		plain = append(plain, []rune(s)...)
		if n := len(spans); n > 0 && spans[n-1].Style == style && spans[n-1].End == start {
			spans[n-1].End = len(plain)
		} else {
			spans = append(spans, Span{Start: start, End: len(plain), Style: style})
		}
	}

	for _, nd := range doc.Nodes {
		switch {
		case nd.Escape != nil:
			appendText(unescape(*nd.Escape))
		case nd.Text != nil:
			appendText(*nd.Text)
		case nd.Open != nil:
			raw := *nd.Open
			name, arg := splitTag(raw)
			style, ok := applyTag(current(), name, arg)
			if !ok {
				appendText(raw)
				continue
			}
			stack = append(stack, tagEntry{name: name, style: style})
		case nd.Close != nil:
			raw := *nd.Close
			name := strings.TrimSuffix(strings.TrimPrefix(raw, "[/"), "]")
			idx := -1
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].name == name {
					idx = i
					break
				}
			}
			if idx < 0 {
				appendText(raw)
				continue
			}
			stack = append(stack[:idx], stack[idx+1:]...)
		}
	}
	return string(plain), spans, nil
}

// applyTag derives the style of a newly opened tag from the enclosing
// one. Returns false for tags this package doesn't know about.
func applyTag(base Style, name, arg string) (Style, bool) {
	switch name {
	case "color":
		clr, ok := ParseHexColor(arg)
		if !ok {
			return base, false
		}
		base.Color, base.HasColor = clr, true
	case "b":
		base.Bold = true
	case "i":
		base.Italic = true
	case "u":
		base.Underline = true
	case "s":
		base.Strike = true
	default:
		return base, false
	}
	return base, true
}

func splitTag(raw string) (name, arg string) {
	body := strings.TrimSuffix(strings.TrimPrefix(raw, "["), "]")
	if eq := strings.IndexByte(body, '='); eq >= 0 {
		return body[:eq], body[eq+1:]
	}
	return body, ""
}

func unescape(escape string) string {
	switch escape {
	case "&bl;":
		return "["
	case "&br;":
		return "]"
	case "&amp;":
		return "&"
	}
	return escape
}
