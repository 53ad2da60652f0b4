package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Line shows a label and reads one line of input.
//
// Used for passwords among others, so the input is not echoed back.
func Line(in io.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprintf(out, "%s: ", label)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", fmt.Errorf("%s is required", label)
	}
	return line, nil
}
