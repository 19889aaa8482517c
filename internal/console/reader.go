package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"
)

// LineReader reads one line of user input after showing a prompt.
// It returns io.EOF once input is exhausted.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// NewLineReader uses liner for line editing when in is a terminal and
// falls back to a plain scanner for pipes and files.
func NewLineReader(in *os.File, out io.Writer) LineReader {
	if term.IsTerminal(int(in.Fd())) && liner.TerminalSupported() {
		return NewLinerReader()
	}
	return NewScannerReader(in, out)
}

// ScannerReader reads newline-terminated lines from any io.Reader.
type ScannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewScannerReader creates a ScannerReader that writes prompts to out.
func NewScannerReader(in io.Reader, out io.Writer) *ScannerReader {
	return &ScannerReader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (r *ScannerReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

func (r *ScannerReader) Close() error {
	return nil
}

// LinerReader reads from the terminal with line editing and in-session history.
type LinerReader struct {
	line *liner.State
}

// NewLinerReader puts the terminal into liner's mode until Close.
func NewLinerReader() *LinerReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	return &LinerReader{line: line}
}

func (r *LinerReader) ReadLine(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		// Ctrl+C ends input the same way Ctrl+D does
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", io.EOF
		}
		return "", err
	}

	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

// Close restores the terminal.
func (r *LinerReader) Close() error {
	return r.line.Close()
}
