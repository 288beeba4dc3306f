package main

import (
	"bufio"
	"errors"
	"flag"
	"io"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name  string
		r     float64
		verb  string
		round int
		out   string
	}{
		{"default", 7, "%g", -1, "7"},
		{"fraction", 0.5, "%g", -1, "0.5"},
		{"verb", 2, "%.3f", -1, "2.000"},
		{"round-third", 1.0 / 3, "%g", 3, "0.333"},
		{"round-half", 2.5, "%g", 0, "3"},
		{"round-neg-half", -2.5, "%g", 0, "-3"},
		{"round-pad", 1.5, "%g", 2, "1.50"},
		{"round-inf", math.Inf(1), "%g", 2, "+Inf"},
		{"round-nan", math.NaN(), "%g", 2, "NaN"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := format(c.r, c.verb, c.round); got != c.out {
				t.Errorf("want %q, got %q", c.out, got)
			}
		})
	}
}

func TestReadConfig(t *testing.T) {
	cfg, err := readConfig(strings.NewReader("prompt: 'calc> '\nround: 2\necho: true\nhistory: /tmp/h\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := config{Prompt: "calc> ", Format: "%g", Round: 2, History: "/tmp/h", Echo: true}
	if cfg != want {
		t.Errorf("want %+v, got %+v", want, cfg)
	}

	cfg, err = readConfig(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty config gave error: %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("empty config gave %+v, not defaults", cfg)
	}

	if _, err := readConfig(strings.NewReader("promt: x\n")); err == nil {
		t.Error("unknown key gave no error")
	}
	if _, err := readConfig(strings.NewReader("round: lots\n")); err == nil {
		t.Error("bad value gave no error")
	}
}

func TestPrinter(t *testing.T) {
	cases := []struct {
		name string
		cfg  func(*config)
		line string
		out  string
	}{
		{"result", nil, "1 + 2 * 3", "7\n"},
		{"blank", nil, "  ", ""},
		{"rounded", func(c *config) { c.Round = 2 }, "1/3", "0.33\n"},
		{"error", nil, "1+2)", "1+2)\n   ^\n3: close bracket with no open bracket\n"},
		{"echo", func(c *config) { c.Echo = true }, "2*3", "2*3 : Multiplication@1 = 6\n  2 : Literal@0 = 2\n  3 : Literal@2 = 3\n6\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var b strings.Builder
			p := &printer{out: &b, cfg: defaultConfig()}
			if c.cfg != nil {
				c.cfg(&p.cfg)
			}
			if p.eval(c.line) {
				t.Error("eval asked to stop")
			}
			if b.String() != c.out {
				t.Errorf("want %q, got %q", c.out, b.String())
			}
		})
	}
}

func TestPrinterFailed(t *testing.T) {
	p := &printer{out: io.Discard, cfg: defaultConfig()}
	p.eval("1")
	if p.failed {
		t.Error("failed after good expression")
	}
	p.eval("foo(1)")
	p.eval("2")
	if !p.failed {
		t.Error("not failed after bad expression")
	}
}

func TestPrinterDump(t *testing.T) {
	var b strings.Builder
	p := &printer{out: &b, cfg: defaultConfig(), dump: true}
	p.eval("1+1")
	if !strings.Contains(b.String(), "(calc.Step) 0:3 Addition@1 1+1 = 2") {
		t.Errorf("dump does not show the split kind:\n%s", b.String())
	}
	if !strings.HasSuffix(b.String(), "\n2\n") {
		t.Errorf("dump is not followed by the result:\n%s", b.String())
	}
}

func TestEvalLines(t *testing.T) {
	var b strings.Builder
	p := &printer{out: &b, cfg: defaultConfig()}
	// UTF-16LE with a byte order mark.
	in := []byte{0xff, 0xfe}
	for _, r := range "1+1\n\n2*3\n" {
		in = append(in, byte(r), 0)
	}
	if err := evalLines(p, decode(strings.NewReader(string(in)))); err != nil {
		t.Fatal(err)
	}
	if b.String() != "2\n6\n" {
		t.Errorf("want %q, got %q", "2\n6\n", b.String())
	}

	b.Reset()
	if err := evalLines(p, decode(strings.NewReader("\ufeff4/2\n"))); err != nil {
		t.Fatal(err)
	}
	if b.String() != "2\n" {
		t.Errorf("UTF-8 with BOM: want %q, got %q", "2\n", b.String())
	}
}

func TestComplete(t *testing.T) {
	cases := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"1+", nil},
		{"s", []string{"sin("}},
		{"1+a", []string{"1+asin(", "1+acos(", "1+atan("}},
		{"2*fl", []string{"2*floor("}},
		{"\uff0bc", []string{"\uff0bcos(", "\uff0bceil("}},
		{"x", nil},
	}
	for _, c := range cases {
		if got := complete(c.line); !reflect.DeepEqual(got, c.want) {
			t.Errorf("complete(%q): want %q, got %q", c.line, c.want, got)
		}
	}
}

func TestHelp(t *testing.T) {
	var b strings.Builder
	help(&b, "", []string{".funcs", ".help", ".quit"})
	out := b.String()
	for _, s := range []string{"sin, cos, tan, asin, acos, atan, floor, ceil", ".funcs, .help, .quit"} {
		if !strings.Contains(out, s) {
			t.Errorf("help does not mention %q:\n%s", s, out)
		}
	}
	b.Reset()
	help(&b, ".quit", nil)
	if b.String() != "exits the shell\n" {
		t.Errorf("wrong help for quit: %q", b.String())
	}
	b.Reset()
	help(&b, "bogus", nil)
	if !strings.HasPrefix(b.String(), "no help") {
		t.Errorf("wrong help for unknown topic: %q", b.String())
	}
}

func TestApplyFlags(t *testing.T) {
	cfg, err := readConfig(strings.NewReader("fmt: '%e'\nround: 2\necho: true\nhistory: h\n"))
	if err != nil {
		t.Fatal(err)
	}
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.String("fmt", "%g", "")
	fs.Int("round", -1, "")
	fs.Bool("echo", false, "")
	fs.String("history", "", "")
	fs.Bool("i", false, "")
	if err := fs.Parse([]string{"-fmt", "%.3f", "-round", "5", "-i", "1+1"}); err != nil {
		t.Fatal(err)
	}
	got := applyFlags(cfg, fs)
	want := config{Prompt: "expr> ", Format: "%.3f", Round: 5, History: "h", Echo: true}
	if got != want {
		t.Errorf("want %+v, got %+v", want, got)
	}

	fs = flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.Bool("echo", false, "")
	fs.Int("round", -1, "")
	if err := fs.Parse([]string{"-echo=false"}); err != nil {
		t.Fatal(err)
	}
	got = applyFlags(cfg, fs)
	if got.Echo || got.Round != 2 {
		t.Errorf("explicit -echo=false should win and unset -round should not: got %+v", got)
	}
}

func TestConfigCheck(t *testing.T) {
	cases := []struct {
		round int
		ok    bool
	}{
		{-1, true},
		{0, true},
		{maxRound, true},
		{maxRound + 1, false},
		{1 << 40, false},
	}
	for _, c := range cases {
		cfg := defaultConfig()
		cfg.Round = c.round
		if err := cfg.check(); (err == nil) != c.ok {
			t.Errorf("round %d: got error %v", c.round, err)
		}
	}
}

// lines is a historian holding one entry per line.
type lines struct {
	entries []string
	err     error
}

func (l *lines) ReadHistory(r io.Reader) (int, error) {
	if l.err != nil {
		return 0, l.err
	}
	scan := bufio.NewScanner(r)
	n := 0
	for scan.Scan() {
		l.entries = append(l.entries, scan.Text())
		n++
	}
	return n, scan.Err()
}

func (l *lines) WriteHistory(w io.Writer) (int, error) {
	if l.err != nil {
		return 0, l.err
	}
	for i, e := range l.entries {
		if _, err := io.WriteString(w, e+"\n"); err != nil {
			return i, err
		}
	}
	return len(l.entries), nil
}

func TestHistory(t *testing.T) {
	name := filepath.Join(t.TempDir(), "history")
	if err := loadHistory(&lines{}, name); err != nil {
		t.Errorf("missing history file gave error: %v", err)
	}
	if err := saveHistory(&lines{entries: []string{"1+1", "sin(0)"}}, name); err != nil {
		t.Fatal(err)
	}
	var h lines
	if err := loadHistory(&h, name); err != nil {
		t.Fatal(err)
	}
	if want := []string{"1+1", "sin(0)"}; !reflect.DeepEqual(h.entries, want) {
		t.Errorf("want %q, got %q", want, h.entries)
	}

	bad := errors.New("bad history")
	if err := loadHistory(&lines{err: bad}, name); !errors.Is(err, bad) {
		t.Errorf("want %v, got %v", bad, err)
	}
	if err := saveHistory(&lines{err: bad}, name); !errors.Is(err, bad) {
		t.Errorf("want %v, got %v", bad, err)
	}
	if err := loadHistory(&lines{}, ""); err != nil {
		t.Errorf("empty name gave error: %v", err)
	}
	if err := saveHistory(&lines{entries: []string{"x"}}, ""); err != nil {
		t.Errorf("empty name gave error: %v", err)
	}
}

func TestRun(t *testing.T) {
	name := filepath.Join(t.TempDir(), "in")
	if err := os.WriteFile(name, []byte("1+1\n2*3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	p := &printer{out: &b, cfg: defaultConfig()}
	if err := run(p, name, "10/4", false); err != nil {
		t.Fatal(err)
	}
	if b.String() != "2\n6\n2.5\n" {
		t.Errorf("want %q, got %q", "2\n6\n2.5\n", b.String())
	}
	if err := run(p, filepath.Join(t.TempDir(), "nope"), "", false); err == nil {
		t.Error("missing input file gave no error")
	}
}
