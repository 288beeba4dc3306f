package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/internal/shell"
)

func main() {
	log.SetFlags(0)
	var (
		inname, confname  string
		interactive, dump bool
	)
	// -fmt, -round, -echo, and -history are read by applyFlags.
	flag.BoolVar(&interactive, "i", false, "run an interactive shell, evaluating any expression argument first")
	flag.StringVar(&inname, "in", "", "input file with one expression per line (default stdin if no args given)")
	flag.String("fmt", "%g", "result formatting string")
	flag.Int("round", -1, "round results to this many decimal places (negative to disable)")
	flag.Bool("echo", false, "print evaluation steps")
	flag.BoolVar(&dump, "dump", false, "dump evaluation steps in detail")
	flag.StringVar(&confname, "config", "", "YAML configuration file")
	flag.String("history", "", "history file for the interactive shell")
	flag.Parse()

	cfg := defaultConfig()
	if confname != "" {
		c, err := loadConfig(confname)
		if err != nil {
			log.Fatal(err)
		}
		cfg = c
	}
	cfg = applyFlags(cfg, flag.CommandLine)
	if err := cfg.check(); err != nil {
		log.Fatal(err)
	}

	expr := strings.Join(flag.Args(), " ")
	p := &printer{out: os.Stdout, cfg: cfg, dump: dump}
	if interactive {
		if err := interact(p, expr); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := run(p, inname, expr, flag.NArg() == 0); err != nil {
		log.Fatal(err)
	}
	if p.failed {
		os.Exit(1)
	}
}

// applyFlags overrides cfg with the flags explicitly set in fs.
func applyFlags(cfg config, fs *flag.FlagSet) config {
	fs.Visit(func(f *flag.Flag) {
		g, ok := f.Value.(flag.Getter)
		if !ok {
			return
		}
		switch f.Name {
		case "fmt":
			cfg.Format = g.Get().(string)
		case "round":
			cfg.Round = g.Get().(int)
		case "echo":
			cfg.Echo = g.Get().(bool)
		case "history":
			cfg.History = g.Get().(string)
		}
	})
	return cfg
}

// run evaluates the input file, if any, and then expr.
func run(p *printer, inname, expr string, std bool) error {
	f, err := infile(inname, std)
	if err != nil {
		return err
	}
	if f != nil {
		if f != os.Stdin {
			defer f.Close()
		}
		if err := evalLines(p, decode(f)); err != nil {
			return err
		}
	}
	if expr != "" {
		p.eval(expr)
	}
	return nil
}

// interact runs the interactive shell.
func interact(p *printer, frontload string) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(complete)
	if err := loadHistory(line, p.cfg.History); err != nil {
		log.Printf("reading history: %v", err)
	}

	sh := shell.New(p.cfg.Prompt, line, p.out).Frontload(frontload)
	sh.Command(".quit", func(string) bool { return true })
	sh.Command(".funcs", func(string) bool {
		fmt.Fprintln(p.out, strings.Join(calc.Funcs(), " "))
		return false
	})
	sh.Command(".help", func(topic string) bool {
		help(p.out, topic, sh.Commands())
		return false
	})
	err := sh.Run(p.eval)

	if herr := saveHistory(line, p.cfg.History); herr != nil {
		log.Printf("saving history: %v", herr)
	}
	return err
}

// help prints the shell help message, or help about one topic.
func help(w io.Writer, topic string, commands []string) {
	switch strings.TrimPrefix(strings.TrimSpace(topic), ".") {
	case "":
		fmt.Fprintln(w, "Supported mathematical operators: + - * / ^ ( )")
		fmt.Fprintln(w, "Supported functions:", strings.Join(calc.Funcs(), ", "))
		fmt.Fprintln(w, "Meta-commands:", strings.Join(commands, ", "))
	case "help":
		fmt.Fprintln(w, "prints the help message, or help about a meta-command")
	case "quit":
		fmt.Fprintln(w, "exits the shell")
	case "funcs":
		fmt.Fprintln(w, "lists the supported functions")
	default:
		fmt.Fprintf(w, "no help for %q\n", topic)
	}
}

// evalLines evaluates each line of in as a separate expression.
func evalLines(p *printer, in io.Reader) error {
	scan := bufio.NewScanner(in)
	for scan.Scan() {
		p.eval(scan.Text())
	}
	return scan.Err()
}

// infile opens the input file. It returns nil if there is no input file and
// std is false.
func infile(inname string, std bool) (*os.File, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}

// decode wraps r so that input starting with a UTF-16 byte order mark is
// decoded to UTF-8 and a UTF-8 byte order mark is dropped.
func decode(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}
