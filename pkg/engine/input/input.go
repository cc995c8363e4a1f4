package input

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// Source produces raw input events one at a time.
// Next blocks until an event is available; io.EOF means the source is exhausted.
type Source interface {
	Next() (RawInput, error)
}

// NextIntent pulls one event from src and runs it through the debounce and binding tiers
func NextIntent(src Source) (Intent, error) {
	raw, err := src.Next()
	if err != nil {
		return Intent{Action: ActionNone}, err
	}
	return MapToIntent(NewDebouncedInput(raw)), nil
}

// TerminalSource reads single key presses from a terminal in raw mode
type TerminalSource struct {
	In *os.File
}

// NewTerminalSource returns a source reading from stdin
func NewTerminalSource() *TerminalSource {
	return &TerminalSource{In: os.Stdin}
}

// Next waits for one key press and returns its code
func (t *TerminalSource) Next() (RawInput, error) {
	code, err := ReadKey(t.In)
	if err != nil {
		return RawInput{}, err
	}
	return RawInput{
		Device:    DeviceTerminal,
		Code:      code,
		Timestamp: time.Now(),
	}, nil
}

// ReadKey puts f into raw mode, reads one key press and restores the terminal.
// A terminal delivers an escape sequence in a single write, so one read is enough
// to tell a bare Escape from an arrow key.
func ReadKey(f *os.File) (string, error) {
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	buf := make([]byte, 8)
	n, err := f.Read(buf)
	if err != nil {
		return "", fmt.Errorf("read key: %w", err)
	}
	return DecodeKey(buf[:n]), nil
}

// DecodeKey converts the bytes of one key press into a binding code.
// Unknown sequences decode to the empty string.
func DecodeKey(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	switch b[0] {
	case 0x03: // Ctrl+C
		return "quit"
	case '\r', '\n':
		return ""
	case 0x1b:
		return decodeEscape(b[1:])
	}

	// Only single printable characters
	if len(b) == 1 && b[0] >= 32 && b[0] < 127 {
		return strings.ToLower(string(b[0]))
	}
	return ""
}

// decodeEscape handles the bytes after ESC: CSI (ESC [) and SS3 (ESC O) sequences
func decodeEscape(seq []byte) string {
	if len(seq) == 0 {
		return "escape"
	}
	if len(seq) < 2 || (seq[0] != '[' && seq[0] != 'O') {
		return ""
	}

	switch seq[1] {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}

	if seq[0] == '[' && len(seq) >= 3 && seq[2] == '~' {
		switch seq[1] {
		case '5':
			return "page_up"
		case '6':
			return "page_down"
		}
	}
	return ""
}
