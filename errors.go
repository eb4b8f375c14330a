package dmidecode

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrMalformedHeader = errors.New("section does not start with a Handle line")
var ErrInvalidTypeID = errors.New("invalid DMI type id")
var ErrTypeNotFound = errors.New("type not found")
var ErrKeyNotFound = errors.New("key not found")
var ErrJsonPathInvalid = errors.New("json path is invalid")

// SectionError - a section rejected during parsing.
// Line is the 1-based line of the section header in the source report.
type SectionError struct {
	Line   int
	Header string
	Err    error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("section at line #%d [%s]: %v", e.Line, e.Header, e.Err)
}

func (e *SectionError) Cause() error {
	return e.Err
}

func (e *SectionError) Unwrap() error {
	return e.Err
}
