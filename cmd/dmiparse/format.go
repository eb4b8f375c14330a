package main

import (
	"github.com/denismitr/dmidecode"
	"github.com/pkg/errors"
)

const (
	formatText     = "text"
	formatMarkdown = "markdown"
	formatJSON     = "json"
	formatYAML     = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

func exportAll(s *dmidecode.Store, f string) (string, error) {
	switch f {
	case formatText:
		return s.ExportAll(), nil
	case formatMarkdown:
		return s.ExportAllMarkdown(), nil
	case formatJSON:
		b, err := s.JSON()
		if err != nil {
			return "", err
		}
		return string(b) + "\n", nil
	case formatYAML:
		b, err := s.YAML()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	return "", errors.Wrapf(ErrUnknownFormat, "format %s", f)
}

func exportType(s *dmidecode.Store, id int, f string) (string, error) {
	switch f {
	case formatText:
		return s.ExportType(id), nil
	case formatMarkdown:
		return s.ExportTypeMarkdown(id), nil
	}

	return "", errors.Wrapf(ErrUnknownFormat, "format %s is not supported for a single type", f)
}
