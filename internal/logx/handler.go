// Package logx contains an [github.com/apex/log] handler for the
// command line, which prints colored messages and tables.
package logx

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/apex/log"
	"github.com/fatih/color"
	colorable "github.com/mattn/go-colorable"
)

var bold = color.New(color.Bold)

// Colors maps levels to colors.
var Colors = [...]*color.Color{
	log.DebugLevel: color.New(color.FgWhite),
	log.InfoLevel:  color.New(color.FgBlue),
	log.WarnLevel:  color.New(color.FgYellow),
	log.ErrorLevel: color.New(color.FgRed),
	log.FatalLevel: color.New(color.FgRed),
}

// Strings maps levels to the symbol we print.
var Strings = [...]string{
	log.DebugLevel: "•",
	log.InfoLevel:  "•",
	log.WarnLevel:  "•",
	log.ErrorLevel: "⨯",
	log.FatalLevel: "⨯",
}

// TypeTable is the value of the "type" field that causes the handler
// to print the other fields as a table.
const TypeTable = "table"

// Handler is a [log.Handler] for the command line.
type Handler struct {
	// Padding is the number of spaces before the level symbol.
	Padding int

	// Writer is where we write.
	Writer io.Writer

	mu sync.Mutex
}

var _ log.Handler = &Handler{}

// NewHandler creates a new [*Handler] writing to w. When w is a file, we
// wrap it so that colors also work on Windows consoles.
func NewHandler(w io.Writer) *Handler {
	if f, ok := w.(*os.File); ok {
		w = colorable.NewColorable(f)
	}
	return &Handler{Padding: 3, Writer: w}
}

// HandleLog implements log.Handler.
func (h *Handler) HandleLog(e *log.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if t, _ := e.Fields["type"].(string); t == TypeTable {
		return h.logTable(e)
	}
	return h.logDefault(e)
}

func (h *Handler) logDefault(e *log.Entry) error {
	color := Colors[e.Level]
	level := Strings[e.Level]
	s := color.Sprintf("%s %-25s", bold.Sprintf("%*s", h.Padding+1, level), e.Message)
	for _, name := range e.Fields.Names() {
		s += fmt.Sprintf(" %s=%v", color.Sprint(name), e.Fields.Get(name))
	}
	_, err := fmt.Fprintln(h.Writer, s)
	return err
}

func (h *Handler) logTable(e *log.Entry) error {
	color := color.New(color.FgBlue)
	names := e.Fields.Names()
	sort.Strings(names)

	var lines []string
	colWidth := EscapeAwareRuneCountInString(e.Message)
	for _, name := range names {
		if name == "type" {
			continue
		}
		line := fmt.Sprintf("%s: %v", color.Sprint(name), e.Fields.Get(name))
		lines = append(lines, line)
		colWidth = max(colWidth, EscapeAwareRuneCountInString(line))
	}

	var sb strings.Builder
	sb.WriteString("┏" + strings.Repeat("━", colWidth+2) + "┓\n")
	sb.WriteString("┃ " + RightPad(bold.Sprint(e.Message), colWidth) + " ┃\n")
	sb.WriteString("┣" + strings.Repeat("━", colWidth+2) + "┫\n")
	for _, line := range lines {
		sb.WriteString("┃ " + RightPad(line, colWidth) + " ┃\n")
	}
	sb.WriteString("┗" + strings.Repeat("━", colWidth+2) + "┛\n")
	_, err := io.WriteString(h.Writer, sb.String())
	return err
}
