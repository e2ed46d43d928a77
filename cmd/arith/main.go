// Package main provides the entry point for the arith expression evaluator.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/arith-lang/arith/internal/ast"
	"github.com/arith-lang/arith/internal/cli"
	"github.com/arith-lang/arith/internal/interp"
	"github.com/arith-lang/arith/internal/lexer"
	"github.com/arith-lang/arith/internal/parser"
	"github.com/arith-lang/arith/internal/watch"
)

// defaultExpr is evaluated when no expression is given on the command line.
const defaultExpr = "2 + 3 * 4"

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version information")
		jsonOutput  = flag.Bool("json", false, "output version in JSON format")
		showHelp    = flag.Bool("help", false, "show help information")
		debugLexer  = flag.Bool("debug-lexer", false, "enable lexer debug output")
		noTree      = flag.Bool("no-tree", false, "suppress the expression tree dump")
		verbose     = flag.Bool("verbose", false, "enable verbose output")
		batchFile   = flag.String("batch", "", "evaluate each non-blank line of the given file")
		watchFile   = flag.String("watch", "", "re-evaluate the given file whenever it changes")
	)

	flag.Usage = showUsage
	flag.Parse()

	if *showVersion {
		cli.PrintVersion("arith", *jsonOutput)
		return
	}

	if *showHelp {
		showUsage()
		return
	}

	logger := cli.NewLogger(*verbose, *debugLexer)

	switch {
	case *batchFile != "":
		if err := runBatch(*batchFile, logger); err != nil {
			cli.ExitWithError("%v", err)
		}
	case *watchFile != "":
		if err := runWatch(*watchFile, *noTree, logger); err != nil {
			cli.ExitWithError("%v", err)
		}
	default:
		input := defaultExpr
		if args := flag.Args(); len(args) > 0 {
			input = args[0]
		}

		if *debugLexer {
			dumpTokens(input)
		}

		if err := run(os.Stdout, input, *noTree); err != nil {
			cli.ExitWithError("%v", err)
		}
	}
}

func showUsage() {
	fmt.Println("arith - arithmetic expression evaluator")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("    arith [OPTIONS] [EXPRESSION]")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("    --version        Show version information")
	fmt.Println("    --json           Output version in JSON format")
	fmt.Println("    --help           Show this help message")
	fmt.Println("    --debug-lexer    Enable lexer debug output")
	fmt.Println("    --no-tree        Suppress the expression tree dump")
	fmt.Println("    --verbose        Enable verbose output")
	fmt.Println("    --batch <file>   Evaluate each non-blank line of the file")
	fmt.Println("    --watch <file>   Re-evaluate the file whenever it changes")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("    arith \"2 + 3 * 4\"")
	fmt.Println("    arith --no-tree \"(2 + 3) * 4\"")
	fmt.Println("    arith --batch exprs.txt")
	fmt.Println("    arith --watch expr.txt")
}

// run evaluates one expression and writes the result followed by the
// expression tree to w.
func run(w io.Writer, input string, noTree bool) error {
	expr, err := parser.New(input).Parse()
	if err != nil {
		return err
	}

	result, err := interp.Evaluate(expr)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Result: %d\n", result)
	if !noTree {
		ast.NewTreePrinter(w).Print(expr, "expr")
	}
	return nil
}

// dumpTokens prints the token stream for the input, whitespace included.
func dumpTokens(input string) {
	fmt.Println("Lexer Debug Output:")
	fmt.Println(strings.Repeat("=", 50))

	s := lexer.New(input)
	for {
		tok := s.CurrentToken()
		fmt.Printf("Token: %-10s | Literal: %-10q | Position: %s\n",
			tok.Type, tok.Literal, tok.Pos)
		if tok.Type == lexer.TokenEOF {
			break
		}
		s.Tokenize()
	}

	fmt.Println(strings.Repeat("=", 50))
}

// runBatch evaluates every non-blank line of the file. Each line is an
// independent parse with no shared state, so lines evaluate concurrently;
// results are reported in input order once all lines finish.
func runBatch(filename string, logger *cli.Logger) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open batch file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read batch file: %w", err)
	}

	logger.Info("evaluating %d expressions from %s", len(lines), filename)

	results := make([]int64, len(lines))
	g, _ := errgroup.WithContext(context.Background())

	for i, line := range lines {
		i, line := i, line

		g.Go(func() error {
			expr, err := parser.New(line).Parse()
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			value, err := interp.Evaluate(expr)
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			results[i] = value
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, line := range lines {
		fmt.Printf("%s = %d\n", line, results[i])
	}
	return nil
}

// runWatch evaluates the file once, then re-evaluates it on every write
// until interrupted. Evaluation errors are reported but do not stop the
// watch loop.
func runWatch(filename string, noTree bool, logger *cli.Logger) error {
	evaluate := func() {
		data, err := os.ReadFile(filename)
		if err != nil {
			logger.Error("failed to read %s: %v", filename, err)
			return
		}
		input := strings.TrimSpace(string(data))
		if input == "" {
			logger.Warn("%s is empty", filename)
			return
		}
		if err := run(os.Stdout, input, noTree); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}

	fw, err := watch.New()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filename); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filename, err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	logger.Info("watching %s", filename)
	evaluate()

	for {
		select {
		case ev := <-fw.Events():
			if ev.Has(watch.OpWrite | watch.OpCreate) {
				logger.Info("%s changed, re-evaluating", ev.Path)
				evaluate()
			}
		case err := <-fw.Errors():
			logger.Error("watch error: %v", err)
		case <-sigChan:
			fmt.Println()
			return nil
		}
	}
}
