package canvas

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

// Error classes, use errors.Is to match the concrete error types below.
var (
	ErrMalformedPath = errors.New("malformed path")
	ErrOutOfSequence = errors.New("path command out of sequence")
	ErrArcConversion = errors.New("arc conversion failed")
)

// MalformedPathError is returned for path data that does not follow the grammar: unknown command letters, unparsable numbers, or operand counts that do not match the command.
type MalformedPathError struct {
	Offset int // byte offset into the path data
	Msg    string
}

func (e *MalformedPathError) Error() string {
	return fmt.Sprintf("malformed path at offset %d: %s", e.Offset, e.Msg)
}

func (e *MalformedPathError) Is(target error) bool {
	return target == ErrMalformedPath
}

// OutOfSequenceError is returned for a command that appears before the first move.
type OutOfSequenceError struct {
	Index  int // token index
	Offset int // byte offset into the path data
	Cmd    byte
}

func (e *OutOfSequenceError) Error() string {
	return fmt.Sprintf("command %c at token %d (offset %d) before first move", e.Cmd, e.Index, e.Offset)
}

func (e *OutOfSequenceError) Is(target error) bool {
	return target == ErrOutOfSequence
}

// ArcConversionError wraps the error returned by the arc conversion function.
type ArcConversionError struct {
	Index  int // token index
	Offset int // byte offset into the path data
	Err    error
}

func (e *ArcConversionError) Error() string {
	return fmt.Sprintf("arc at token %d (offset %d): %v", e.Index, e.Offset, e.Err)
}

func (e *ArcConversionError) Unwrap() error {
	return e.Err
}

func (e *ArcConversionError) Is(target error) bool {
	return target == ErrArcConversion
}

////////////////////////////////////////////////////////////////

// PathToken is a single path instruction: a command letter and exactly the operands one instruction of that command takes.
type PathToken struct {
	Cmd    byte
	Args   []float64
	Offset int // byte offset of the command letter
}

func (t PathToken) String() string {
	sb := strings.Builder{}
	sb.WriteByte(t.Cmd)
	for i, arg := range t.Args {
		if i != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(num(arg).String())
	}
	return sb.String()
}

// cmdArity returns the number of operands of one instruction of the command, or -1 for an unknown command.
func cmdArity(cmd byte) int {
	switch cmd {
	case 'Z', 'z':
		return 0
	case 'H', 'h', 'V', 'v':
		return 1
	case 'M', 'm', 'L', 'l', 'T', 't':
		return 2
	case 'Q', 'q', 'S', 's':
		return 4
	case 'C', 'c':
		return 6
	case 'A', 'a':
		return 7
	}
	return -1
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t' || path[i] == '\f') {
		i++
	}
	return i
}

// isArcFlag returns true if the operand at position n of a run of arc operands is the large-arc or sweep flag.
func isArcFlag(n int) bool {
	n %= 7
	return n == 3 || n == 4
}

// TokenizeSVGPath splits SVG path data into tokens. A command followed by more operands than one instruction takes is repeated for every group of operands, so that "L10 20 30 40" returns two L tokens.
func TokenizeSVGPath(d string) ([]PathToken, error) {
	path := []byte(d)
	tokens := []PathToken{}

	i := skipCommaWhitespace(path)
	for i < len(path) {
		cmd := path[i]
		arity := cmdArity(cmd)
		if arity < 0 {
			if isLetter(cmd) {
				return nil, &MalformedPathError{i, fmt.Sprintf("unknown command %q", cmd)}
			}
			return nil, &MalformedPathError{i, fmt.Sprintf("expected command, got %q", cmd)}
		}
		offset := i
		i++

		args := []float64{}
		for {
			i += skipCommaWhitespace(path[i:])
			if i == len(path) || isLetter(path[i]) {
				break
			}

			if arity == 7 && isArcFlag(len(args)) {
				// flags may be written without separators
				if path[i] != '0' && path[i] != '1' {
					return nil, &MalformedPathError{i, fmt.Sprintf("bad arc flag %q", path[i])}
				}
				args = append(args, float64(path[i]-'0'))
				i++
				continue
			}

			f, n := strconv.ParseFloat(path[i:])
			if n == 0 {
				return nil, &MalformedPathError{i, fmt.Sprintf("bad number %q", path[i])}
			} else if !isFinite(f) {
				return nil, &MalformedPathError{i, fmt.Sprintf("number out of range %q", path[i:i+n])}
			}
			args = append(args, f)
			i += n
		}

		if arity == 0 {
			if len(args) != 0 {
				return nil, &MalformedPathError{offset, fmt.Sprintf("%c takes no operands, got %d", cmd, len(args))}
			}
			tokens = append(tokens, PathToken{Cmd: cmd, Offset: offset})
			continue
		} else if len(args) == 0 || len(args)%arity != 0 {
			return nil, &MalformedPathError{offset, fmt.Sprintf("%c takes a multiple of %d operands, got %d", cmd, arity, len(args))}
		}
		for k := 0; k < len(args); k += arity {
			tokens = append(tokens, PathToken{
				Cmd:    cmd,
				Args:   args[k : k+arity : k+arity],
				Offset: offset,
			})
		}
	}
	return tokens, nil
}

////////////////////////////////////////////////////////////////

var defaultInterpreter = NewInterpreter(ArcToCubicBeziers)

// Interpret draws the tokens onto p using the default arc conversion.
func Interpret(tokens []PathToken, p Pather) error {
	return defaultInterpreter.Interpret(tokens, p)
}

// DrawSVGPath tokenizes the SVG path data and draws it onto p. Nothing is drawn if the path data is malformed.
func DrawSVGPath(p Pather, d string) error {
	tokens, err := TokenizeSVGPath(d)
	if err != nil {
		return err
	}
	return Interpret(tokens, p)
}

// ParseSVGPath parses SVG path data into a path.
func ParseSVGPath(d string) (*Path, error) {
	p := &Path{}
	if err := DrawSVGPath(p, d); err != nil {
		return nil, err
	}
	return p, nil
}

// MustParseSVGPath parses SVG path data into a path and panics on error.
func MustParseSVGPath(d string) *Path {
	p, err := ParseSVGPath(d)
	if err != nil {
		panic(err)
	}
	return p
}
