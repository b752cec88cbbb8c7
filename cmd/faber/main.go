// Command faber is the compiler's CLI front end: compile a file (or
// stdin) to target-language text, run it through Node, or check a
// batch of files for errors without emitting anything.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
	"github.com/spf13/cast"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"github.com/ianzepp/faber"
)

func main() {
	app := &cli.App{
		Name:    "faber",
		Usage:   "compile, run, and check faber source files",
		Version: "0.1.0",
		Commands: []*cli.Command{
			compileCommand(),
			runCommand(),
			checkCommand(),
			formatCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func compileCommand() *cli.Command {
	return &cli.Command{
		Name:    "compile",
		Aliases: []string{"finge"},
		Usage:   "compile a source file to target-language text",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write to this path instead of stdout"},
		},
		Action: func(c *cli.Context) error {
			filename, source, err := readInput(c.Args().First())
			if err != nil {
				return err
			}

			out, err := faber.Compile(filename, source, loadConfig())
			if err != nil {
				reportCompileError(err)
				return cli.Exit("", 1)
			}

			if output := c.String("output"); output != "" {
				return os.WriteFile(output, []byte(out), 0o644)
			}
			fmt.Print(out)
			return nil
		},
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:    "run",
		Aliases: []string{"curre"},
		Usage:   "compile a source file and run it with node",
		Action: func(c *cli.Context) error {
			filename, source, err := readInput(c.Args().First())
			if err != nil {
				return err
			}

			out, err := faber.Compile(filename, source, loadConfig())
			if err != nil {
				reportCompileError(err)
				return cli.Exit("", 1)
			}

			tmp, err := os.CreateTemp("", "faber-*.mjs")
			if err != nil {
				return err
			}
			defer os.Remove(tmp.Name())
			if _, err := tmp.WriteString(out); err != nil {
				return err
			}
			tmp.Close()

			cmd := exec.CommandContext(c.Context, "node", tmp.Name())
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
			cmd.Stdin = os.Stdin
			return cmd.Run()
		},
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:    "check",
		Aliases: []string{"proba"},
		Usage:   "check one or more files for lexical, syntax, and emission errors without writing output",
		Action: func(c *cli.Context) error {
			cfg := loadConfig()
			var combined error

			for _, path := range c.Args().Slice() {
				source, err := os.ReadFile(path)
				if err != nil {
					combined = multierr.Append(combined, err)
					continue
				}
				if _, err := faber.Compile(path, string(source), cfg); err != nil {
					combined = multierr.Append(combined, err)
				}
			}

			if combined == nil {
				fmt.Println("ok")
				return nil
			}
			for _, err := range multierr.Errors(combined) {
				reportCompileError(err)
			}
			return cli.Exit("", 1)
		},
	}
}

func formatCommand() *cli.Command {
	return &cli.Command{
		Name:    "format",
		Aliases: []string{"forma"},
		Usage:   "re-emit a source file through the lex/parse/emit pipeline at canonical indentation",
		Action: func(c *cli.Context) error {
			filename, source, err := readInput(c.Args().First())
			if err != nil {
				return err
			}
			cfg := loadConfig()
			cfg.Indent = "  "
			out, err := faber.Compile(filename, source, cfg)
			if err != nil {
				reportCompileError(err)
				return cli.Exit("", 1)
			}
			fmt.Print(out)
			return nil
		},
	}
}

// readInput reads from path, or from stdin when path is "" or "-".
// stdin input is sniffed with mimetype so a binary accidentally piped
// in fails fast with a clear message rather than a confusing lex
// error deep inside the pipeline.
func readInput(path string) (filename string, source string, err error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		if mtype := mimetype.Detect(data); !strings.HasPrefix(mtype.String(), "text/") {
			return "", "", fmt.Errorf("stdin does not look like text (detected %s)", mtype.String())
		}
		return "stdin", string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	return filepath.Base(path), string(data), nil
}

func loadConfig() faber.Config {
	path := lo.CoalesceOrEmpty(os.Getenv("FABER_CONFIG"), ".faber.yaml")
	cfg, err := faber.LoadConfig(path)
	if err != nil {
		return faber.DefaultConfig()
	}
	if verbose := os.Getenv("FABER_VERBOSE"); verbose != "" && cast.ToBool(verbose) {
		fmt.Fprintf(os.Stderr, "loaded config from %s: %+v\n", path, cfg)
	}
	return cfg
}

func reportCompileError(err error) {
	if cerr, ok := err.(*faber.CompileError); ok {
		cerr.Report(os.Stderr)
		return
	}
	fmt.Fprintln(os.Stderr, err)
}
