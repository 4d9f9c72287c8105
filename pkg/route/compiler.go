package route

import (
	"regexp"
)

// Pattern matches a whole route line. The text between the departure code and
// "to " is discarded; the lazy skip makes the first "to " that is followed by
// an airport code introduce the arrival.
const Pattern = `^([A-Z]{3})([0-9]{3,4})/([0-9]{3,4}) ([A-Z]{4}) .*?to ([A-Z]{4})(.*)$`

// DefaultCommentSeparator introduces the emitted comment, e.g. "with Air Seattle codeshare".
const DefaultCommentSeparator = " with "

var routePattern = regexp.MustCompile(Pattern)

// Compiler turns route lines into output rows.
// A Compiler holds no per-line state and may be reused.
type Compiler struct {
	commentSeparator      string
	suppressTrailingComma bool
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithCommentSeparator sets the separator whose last occurrence introduces the comment.
// An empty separator keeps the default.
func WithCommentSeparator(sep string) Option {
	return func(c *Compiler) {
		if sep != "" {
			c.commentSeparator = sep
		}
	}
}

// WithoutTrailingComma drops the empty comment field from rows that have no comment.
func WithoutTrailingComma(suppress bool) Option {
	return func(c *Compiler) {
		c.suppressTrailingComma = suppress
	}
}

// NewCompiler creates a Compiler with the given options.
func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{
		commentSeparator: DefaultCommentSeparator,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Parse matches a line against the route pattern.
// Returns a *ParseError wrapping ErrNoMatch if the line does not match in full.
func (c *Compiler) Parse(line string) (*ParsedRoute, error) {
	m := routePattern.FindStringSubmatch(line)
	if m == nil {
		return nil, &ParseError{Line: line, Reason: Explain(line)}
	}

	return &ParsedRoute{
		Carrier:        m[1],
		OutboundNumber: m[2],
		ReturnNumber:   m[3],
		Departure:      m[4],
		Arrival:        m[5],
		CommentRaw:     m[6],
	}, nil
}

// Row serializes a parsed route.
// The comment field is present when the separator was found. Otherwise an
// empty trailing field is emitted unless trailing commas are suppressed.
func (c *Compiler) Row(r *ParsedRoute) Row {
	row := Row{r.Carrier, r.OutboundNumber, r.ReturnNumber, r.Departure, r.Arrival}

	if comment, ok := r.Comment(c.commentSeparator); ok {
		return append(row, comment)
	}
	if !c.suppressTrailingComma {
		row = append(row, "")
	}
	return row
}

// Compile parses a line and serializes it in one step.
func (c *Compiler) Compile(line string) (Row, error) {
	r, err := c.Parse(line)
	if err != nil {
		return nil, err
	}
	return c.Row(r), nil
}
