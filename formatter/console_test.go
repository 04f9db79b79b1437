package formatter

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/llrb"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPrintLevels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llrb")
	defer teardown()
	//
	m := llrb.New[int, string]()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		m.Insert(k, "x")
	}
	var buf bytes.Buffer
	if err := Print(&buf, m, &Config{Color: ColorNever}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "[5]\n[3,8]\n[1,4][7,9]\n"
	if buf.String() != want {
		t.Errorf("expected\n%s\ngot\n%s", want, buf.String())
	}
}

func TestPrintValues(t *testing.T) {
	m := llrb.New[string, int]()
	m.Insert("b", 2)
	m.Insert("a", 1)
	var buf bytes.Buffer
	if err := Print(&buf, m, &Config{Color: ColorNever, ShowValues: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "[b:2]\n[a:1]\n"; buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestPrintEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Print(&buf, llrb.New[int, int](), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output for empty map, got %q", buf.String())
	}
}

func TestPrintColorsRedNodes(t *testing.T) {
	m := llrb.New[int, int]()
	m.Insert(2, 2)
	m.Insert(1, 1) // red left child
	var buf bytes.Buffer
	err := Print(&buf, m, &Config{Color: ColorAlways, RedColor: color.New(color.FgRed)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	t.Logf("output = %q", out)
	if !strings.HasPrefix(out, "[2]\n[") || !strings.Contains(out, "\x1b[31m1\x1b[0m") {
		t.Errorf("expected key 1 to be colored red, got %q", out)
	}
}

func TestAutoColorOffForNonTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "levels")
	if err != nil {
		t.Fatal(err.Error())
	}
	defer f.Close()
	c := NewConsole(f, nil)
	if c.colorize() {
		t.Errorf("expected no colors for a regular file")
	}
	m := llrb.New[int, int]()
	m.Insert(2, 2)
	m.Insert(1, 1)
	if err := Write(c, m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err.Error())
	}
	if string(content) != "[2]\n[1]\n" {
		t.Errorf("unexpected file content %q", string(content))
	}
}

func TestConsoleKeepsCallerColor(t *testing.T) {
	red := color.New(color.FgRed)
	red.EnableColor()
	c := NewConsole(&bytes.Buffer{}, &Config{Color: ColorNever, RedColor: red})
	if c.colorize() {
		t.Errorf("expected no colors with ColorNever")
	}
	if s := red.Sprint("x"); !strings.Contains(s, "\x1b[") {
		t.Errorf("console disabled the caller's color, got %q", s)
	}
	if s := c.red.Sprint("x"); s != "x" {
		t.Errorf("expected console color to be disabled, got %q", s)
	}
}
