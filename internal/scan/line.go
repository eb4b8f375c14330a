package scan

import "strings"

const (
	handleToken = "Handle"

	// listIndent - the fixed nesting step dmidecode uses for bullet items
	listIndent = 8
	tabWidth   = 8
)

type Kind uint8

const (
	Continuation Kind = iota
	HandleHeader
	Blank
	KeyValue
	ListItem
)

func (k Kind) String() string {
	switch k {
	case HandleHeader:
		return "handle"
	case Blank:
		return "blank"
	case KeyValue:
		return "key-value"
	case ListItem:
		return "list-item"
	default:
		return "continuation"
	}
}

// Classify reports the structural role of a raw line.
// The checks run in order: handle header, blank, key/value, list item.
// Only an indentation of exactly 8 columns makes a list item.
func Classify(line string) Kind {
	if IsHandle(line) {
		return HandleHeader
	}

	return ClassifyBody(line)
}

// ClassifyBody is Classify for lines inside a section, where a header
// cannot occur: "Handle Count: 2" is a key/value line.
func ClassifyBody(line string) Kind {
	if strings.TrimSpace(line) == "" {
		return Blank
	}

	if strings.IndexByte(line, ':') >= 0 {
		return KeyValue
	}

	if IndentWidth(line) == listIndent {
		return ListItem
	}

	return Continuation
}

func IsHandle(line string) bool {
	return strings.HasPrefix(line, handleToken)
}

// IndentWidth returns the width in columns of the leading whitespace.
// A tab advances to the next multiple of 8.
func IndentWidth(line string) int {
	w := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			w++
		case '\t':
			w += tabWidth - w%tabWidth
		default:
			return w
		}
	}

	return w
}

// Dedent strips up to width columns of leading whitespace.
// A tab that straddles the cut is expanded so the remainder keeps its relative column.
func Dedent(line string, width int) string {
	w := 0
	for i := 0; i < len(line); i++ {
		if w >= width {
			return line[i:]
		}

		switch line[i] {
		case ' ':
			w++
		case '\t':
			next := w + tabWidth - w%tabWidth
			if next > width {
				return strings.Repeat(" ", next-width) + line[i+1:]
			}
			w = next
		default:
			return line[i:]
		}
	}

	return ""
}
