package input

import (
	"os"
	"time"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// decodeKey turns the bytes of one key press into a binding code.
// next is only called to complete escape sequences.
func decodeKey(first byte, next func() (byte, error)) string {
	switch {
	case first == 3:
		return "ctrl_c"
	case first == '\n' || first == '\r':
		return "enter"
	case first == ' ':
		return "space"
	case first == 0x1b:
		return decodeEscape(next)
	case first >= 'A' && first <= 'Z':
		return string(first + ('a' - 'A'))
	case first >= 32 && first < 127:
		return string(first)
	}
	return ""
}

// decodeEscape reads the rest of a CSI (ESC [) or SS3 (ESC O) arrow sequence.
// A lone ESC is reported as "escape".
func decodeEscape(next func() (byte, error)) string {
	b2, err := next()
	if err != nil || (b2 != '[' && b2 != 'O') {
		return "escape"
	}
	b3, err := next()
	if err != nil {
		return ""
	}
	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	// Unknown escape sequence - discard it
	return ""
}

// MakeRaw puts stdin into raw mode and returns a function restoring the previous state
func MakeRaw() (restore func() error, err error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() error { return term.Restore(fd, oldState) }, nil
}

// ReadKey blocks for a single key press and returns its binding code.
// stdin must already be in raw mode (see MakeRaw). Unknown keys return an empty code.
func ReadKey() (RawInput, error) {
	b1, err := readByte()
	if err != nil {
		return RawInput{}, err
	}

	return RawInput{
		Device:    DeviceTerminal,
		Code:      decodeKey(b1, readByte),
		Timestamp: time.Now(),
	}, nil
}
