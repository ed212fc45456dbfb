package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/moffa90/go-ihex/ihex"
)

// issue locates one non-continue decoder status within the input file.
type issue struct {
	Line   int
	Column int
	Status ihex.Status
}

func (i issue) String() string {
	return fmt.Sprintf("line %d, column %d: %s", i.Line, i.Column, i.Status)
}

// decodeFile streams the file through the reader one byte at a time,
// collecting every error status with its position. sawEnd reports
// whether an end-of-file record was seen.
func decodeFile(path string, reader *ihex.Reader) (sawEnd bool, issues []issue, err error) {
	f, err := os.Open(path)
	if err != nil {
		return false, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	br := bufio.NewReader(f)
	line, column := 1, 0

	for {
		b, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return sawEnd, issues, fmt.Errorf("failed to read file: %w", err)
		}

		column++

		switch status := reader.Feed(b); status {
		case ihex.StatusContinue:
		case ihex.StatusEnd:
			sawEnd = true
		default:
			issues = append(issues, issue{Line: line, Column: column, Status: status})
		}

		if b == '\n' {
			line++
			column = 0
		}
	}

	return sawEnd, issues, nil
}
