package dmidecode

import (
	"strconv"
	"strings"

	"github.com/denismitr/dmidecode/internal/scan"
	"github.com/pkg/errors"
)

const (
	handleLabel = "Handle"
	typeLabel   = "DMI type"
	sizeSuffix  = "bytes"
)

type header struct {
	handle string
	typeID int
	size   int
}

// parseHeader - tokenizes "Handle 0x0000, DMI type 0, 26 bytes"
func parseHeader(line string) (header, error) {
	var h header

	if !scan.IsHandle(line) {
		return h, errors.Wrapf(ErrMalformedHeader, "got [%s]", line)
	}

	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	h.handle = strings.TrimSpace(strings.TrimPrefix(fields[0], handleLabel))

	if len(fields) < 2 {
		return h, errors.Wrapf(ErrInvalidTypeID, "header [%s] has no %q field", line, typeLabel)
	}

	typeField := fields[1]
	if !strings.HasPrefix(typeField, typeLabel) {
		return h, errors.Wrapf(ErrInvalidTypeID, "field [%s] should start with %q", typeField, typeLabel)
	}

	id, err := parseUint(strings.TrimSpace(typeField[len(typeLabel):]))
	if err != nil {
		return h, errors.Wrapf(ErrInvalidTypeID, "field [%s]: %v", typeField, err)
	}
	h.typeID = id

	if len(fields) > 2 && strings.HasSuffix(fields[2], sizeSuffix) {
		if size, err := parseUint(strings.TrimSpace(strings.TrimSuffix(fields[2], sizeSuffix))); err == nil {
			h.size = size
		}
	}

	return h, nil
}

func parseUint(s string) (int, error) {
	if s == "" {
		return 0, errors.New("number is missing")
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, errors.Errorf("%q is not a number", s)
		}
	}

	return strconv.Atoi(s)
}
