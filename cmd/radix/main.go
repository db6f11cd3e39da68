// Command radix converts numbers between positional numeral systems.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/govalues/radix"
	"github.com/govalues/radix/internal/config"
	"github.com/govalues/radix/internal/logging"
)

const version = "0.1.0"

// CLI defines the command-line interface for radix.
type CLI struct {
	// Global flags
	Config    string `name:"config" short:"c" help:"Config file path" type:"path"`
	LogLevel  string `name:"log-level" help:"Log level: debug, info, warn, error"`
	LogFormat string `name:"log-format" help:"Log format: text, json"`

	Convert ConvertCmd `cmd:"" help:"Convert a number from one base to another"`
	Grammar GrammarCmd `cmd:"" help:"Print the grammar of accepted numbers"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// env carries the resolved settings and output streams into commands.
type env struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
}

// ConvertCmd converts a number between bases.
type ConvertCmd struct {
	Number    string `arg:"" help:"Number to convert, e.g. 12.5 or .01"`
	From      int    `short:"f" help:"Base of the input (${min_base}..${max_base}), default from config"`
	To        int    `short:"t" help:"Base of the output (${min_base}..${max_base}), default from config"`
	Precision int    `short:"p" default:"-1" help:"Maximum digits after the decimal point, default from config"`
	Clamp     bool   `help:"Clamp bases into the supported range instead of failing"`
	Swap      bool   `help:"Swap the input and output bases"`
	Save      string `short:"o" type:"path" help:"Save the conversion record to a file"`
}

// Run executes the convert command.
func (c *ConvertCmd) Run(e *env) error {
	from, to, prec := c.From, c.To, c.Precision
	if from == 0 {
		from = e.cfg.From
	}
	if to == 0 {
		to = e.cfg.To
	}
	if prec < 0 {
		prec = e.cfg.Precision
	}
	if c.Clamp {
		from, to = int(radix.ClampBase(from)), int(radix.ClampBase(to))
	}

	conv, err := radix.NewConverter(from, to, prec)
	if err != nil {
		logging.ConversionError(c.Number, from, to, err)
		return err
	}
	if c.Swap {
		conv = conv.Inv()
	}

	start := time.Now()
	result, err := conv.Convert(c.Number)
	if err != nil {
		var perr *radix.ParseError
		if errors.As(err, &perr) {
			logging.ConversionError(c.Number, int(conv.From()), int(conv.To()), err, "position", perr.Pos)
			fmt.Fprintln(e.stderr, c.Number)
			fmt.Fprintln(e.stderr, caret(c.Number, perr.Pos))
		}
		return err
	}
	logging.Conversion(c.Number, int(conv.From()), int(conv.To()), conv.Prec(), result, time.Since(start))

	fmt.Fprintln(e.stdout, result)

	if c.Save != "" {
		record := radix.Record(c.Number, conv.From(), result, conv.To())
		if err := os.WriteFile(c.Save, []byte(record), 0o644); err != nil {
			return fmt.Errorf("failed to save result: %w", err)
		}
		logging.Info("result saved", "path", c.Save)
	}
	return nil
}

// caret returns a line marking the character at pos of s.
// Tabs are kept so the mark lines up with the echoed input.
func caret(s string, pos int) string {
	var sb strings.Builder
	i := 0
	for _, r := range s {
		if i == pos {
			break
		}
		if r == '\t' {
			sb.WriteRune('\t')
		} else {
			sb.WriteRune(' ')
		}
		i++
	}
	sb.WriteRune('^')
	return sb.String()
}

// GrammarCmd prints the grammar of numbers in a base.
type GrammarCmd struct {
	Base int `short:"b" help:"Base of the digits, default is the input base from config"`
}

// Run executes the grammar command.
func (c *GrammarCmd) Run(e *env) error {
	b := c.Base
	if b == 0 {
		b = e.cfg.From
	}
	base, err := radix.NewBase(b)
	if err != nil {
		return err
	}
	fmt.Fprintln(e.stdout, radix.Grammar(base))
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

// Run executes the version command.
func (c *VersionCmd) Run(e *env) error {
	fmt.Fprintf(e.stdout, "radix version %s\n", version)
	return nil
}

// setupLogging applies flag values over the config logging settings.
func setupLogging(cli *CLI, cfg *config.Config, w io.Writer) error {
	levelName, formatName := cfg.Log.Level, cfg.Log.Format
	if cli.LogLevel != "" {
		levelName = cli.LogLevel
	}
	if cli.LogFormat != "" {
		formatName = cli.LogFormat
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(formatName)
	if err != nil {
		return err
	}
	logging.InitLogger(w, level, format)
	return nil
}

func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI
	exitCode := -1
	parser, err := kong.New(&cli,
		kong.Name("radix"),
		kong.Description("Exact conversion of numbers between bases "+radix.MinBase.String()+" and "+radix.MaxBase.String()),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"min_base": strconv.Itoa(int(radix.MinBase)),
			"max_base": strconv.Itoa(int(radix.MaxBase)),
		},
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "radix: error: %v\n", err)
		return 2
	}

	ctx, err := parser.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "radix: error: %v\n", err)
		return 2
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "radix: error: %v\n", err)
		return 1
	}
	if err := setupLogging(&cli, cfg, stderr); err != nil {
		fmt.Fprintf(stderr, "radix: error: %v\n", err)
		return 1
	}

	if err := ctx.Run(&env{cfg: cfg, stdout: stdout, stderr: stderr}); err != nil {
		fmt.Fprintf(stderr, "radix: error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
