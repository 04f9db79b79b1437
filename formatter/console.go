package formatter

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/llrb"
	"golang.org/x/term"
)

// ColorMode selects whether red nodes are colorized.
type ColorMode int

// Color modes for Config.
const (
	ColorAuto   ColorMode = iota // colorize if writing to a terminal
	ColorAlways                  // always emit color escape sequences
	ColorNever                   // plain text
)

// Config configures console output of a map.
type Config struct {
	Color      ColorMode
	RedColor   *color.Color // color for red nodes; nil selects bold red
	ShowValues bool         // print key:value instead of key
}

// DefaultConfig is used if Print is called with a nil config.
var DefaultConfig = Config{Color: ColorAuto}

// Console writes maps to a console or any other writer.
type Console struct {
	w      io.Writer
	config Config
	red    *color.Color
}

// NewConsole creates a console formatter for w.
func NewConsole(w io.Writer, config *Config) *Console {
	if config == nil {
		config = &DefaultConfig
	}
	c := &Console{w: w, config: *config}
	if config.RedColor != nil {
		red := *config.RedColor // toggling colors must not affect the caller's color
		c.red = &red
	} else {
		c.red = color.New(color.FgRed, color.Bold)
	}
	if c.colorize() {
		c.red.EnableColor()
	} else {
		c.red.DisableColor()
	}
	return c
}

func (c *Console) colorize() bool {
	switch c.config.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if f, ok := c.w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Print writes the levels of m to w, using config (may be nil).
func Print[K, V any](w io.Writer, m *llrb.Map[K, V], config *Config) error {
	return Write(NewConsole(w, config), m)
}

// Write outputs the levels of m to console c.
func Write[K, V any](c *Console, m *llrb.Map[K, V]) error {
	bw := bufio.NewWriter(c.w)
	cnt := 0
	for level := range m.Levels() {
		cnt++
		for i, n := range level {
			if i == 0 || n.Parent != level[i-1].Parent {
				if i > 0 {
					bw.WriteByte(']')
				}
				bw.WriteByte('[')
			} else {
				bw.WriteByte(',')
			}
			label := fmt.Sprint(n.Key)
			if c.config.ShowValues {
				label = fmt.Sprintf("%v:%v", n.Key, n.Value)
			}
			if n.Red {
				bw.WriteString(c.red.Sprint(label))
			} else {
				bw.WriteString(label)
			}
		}
		bw.WriteString("]\n")
	}
	if err := bw.Flush(); err != nil {
		tracer().Errorf("llrb console output: %s", err.Error())
		return err
	}
	tracer().Debugf("llrb console: printed %d levels", cnt)
	return nil
}
