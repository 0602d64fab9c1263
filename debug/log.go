package debug

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	mu      sync.Mutex
	out     io.Writer = os.Stderr
	colored           = isTerminal(os.Stderr)

	areaColor = color.New(color.FgHiMagenta, color.Bold)
	rawColor  = color.New(color.FgYellow)
)

func init() {
	areaColor.EnableColor()
	rawColor.EnableColor()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetOutput redirects trace output to w and returns a function which
// restores the previous destination.
func SetOutput(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()
	prevOut, prevColored := out, colored
	out, colored = w, isTerminal(w)
	return func() {
		mu.Lock()
		defer mu.Unlock()
		out, colored = prevOut, prevColored
	}
}

// Raw wraps a wire token so that it is rendered quoted, and highlighted when
// the output is a terminal.
type Raw string

func (r Raw) String() string {
	q := fmt.Sprintf("%q", string(r))
	mu.Lock()
	c := colored
	mu.Unlock()
	if !c {
		return q
	}
	return rawColor.Sprint(q)
}

// Logf writes one trace line prefixed with "mxl".
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case Raw:
			args[i] = x.String()
		case []byte:
			args[i] = string(x)
		case []string:
			args[i] = strings.Join(x, ",")
		}
	}
	line := fmt.Sprintf(msg, args...)
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	mu.Lock()
	defer mu.Unlock()
	prefix := "mxl"
	if colored {
		prefix = areaColor.Sprint(prefix)
	}
	fmt.Fprint(out, prefix+" "+line)
}
