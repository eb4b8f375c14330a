package scan

import (
	"bufio"
	"strings"

	"github.com/pkg/errors"
)

// Block - the lines of one Handle delimited section
type Block struct {
	// Line is the 1-based source line of the header
	Line  int
	Lines []string
}

// Split groups the report into one block per Handle line.
// Lines before the first Handle line are returned as the preamble and never open a block.
func Split(text string) (preamble []string, blocks []Block, err error) {
	var current *Block

	flush := func() {
		if current != nil && len(current.Lines) > 0 {
			blocks = append(blocks, *current)
		}
		current = nil
	}

	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), len(text)+1)

	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSuffix(sc.Text(), "\r")

		if Classify(line) == HandleHeader {
			flush()
			current = &Block{Line: n}
		}

		if current == nil {
			preamble = append(preamble, line)
			continue
		}

		current.Lines = append(current.Lines, line)
	}

	if err := sc.Err(); err != nil {
		return nil, nil, errors.Wrapf(err, "could not split report at line #%d", n+1)
	}

	flush()

	return preamble, blocks, nil
}
