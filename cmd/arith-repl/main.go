package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/arith-lang/arith/internal/ast"
	"github.com/arith-lang/arith/internal/cli"
	"github.com/arith-lang/arith/internal/interp"
	"github.com/arith-lang/arith/internal/lexer"
	p "github.com/arith-lang/arith/internal/parser"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version information")
		showHelp    = flag.Bool("help", false, "show help information")
		jsonOutput  = flag.Bool("json", false, "output version in JSON format")
		debugMode   = flag.Bool("debug", false, "enable debug mode")
		noPrompt    = flag.Bool("no-prompt", false, "disable interactive prompt")
		evalStr     = flag.String("eval", "", "evaluate expression and exit")
		configFile  = flag.String("config", "", "configuration file path")
		historyFile = flag.String("history", ".arith_history", "history file path")
		maxHistory  = flag.Int("max-history", 1000, "maximum history entries")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "arith interactive REPL (Read-Eval-Print Loop).\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nREPL COMMANDS:\n")
		fmt.Fprintf(os.Stderr, "  :help, :h          Show help\n")
		fmt.Fprintf(os.Stderr, "  :quit, :q, :exit   Exit REPL\n")
		fmt.Fprintf(os.Stderr, "  :clear, :c         Clear screen\n")
		fmt.Fprintf(os.Stderr, "  :load <file>       Load and evaluate file\n")
		fmt.Fprintf(os.Stderr, "  :history           Show command history\n")
		fmt.Fprintf(os.Stderr, "  :tree on|off       Toggle expression tree dump\n")
		fmt.Fprintf(os.Stderr, "  :debug on|off      Toggle debug mode\n")
		fmt.Fprintf(os.Stderr, "\nEXAMPLES:\n")
		fmt.Fprintf(os.Stderr, "  %s                     # Start interactive REPL\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --eval \"2 + 3\"      # Evaluate expression\n", os.Args[0])
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		cli.PrintVersion("arith REPL", *jsonOutput)
		os.Exit(0)
	}

	config, err := cli.LoadConfig(*configFile)
	if err != nil {
		cli.ExitWithError("%v", err)
	}
	if config.Debug {
		*debugMode = true
	}
	if config.HistoryFile != "" {
		*historyFile = config.HistoryFile
	}
	if config.MaxHistory > 0 {
		*maxHistory = config.MaxHistory
	}
	prompt := "arith> "
	if config.Prompt != "" {
		prompt = config.Prompt
	}

	repl := NewREPL(*debugMode, prompt, *historyFile, *maxHistory)

	if *evalStr != "" {
		result, err := repl.Evaluate(*evalStr)
		if err != nil {
			cli.ExitWithError("%v", err)
		}
		fmt.Println(result)
		return
	}

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nGoodbye!")
		repl.SaveHistory()
		os.Exit(0)
	}()

	repl.LoadHistory()
	repl.PrintWelcome()
	repl.Run(*noPrompt)
}

type REPL struct {
	debug       bool
	showTree    bool
	prompt      string
	historyFile string
	maxHistory  int
	history     []string
	scanner     *bufio.Scanner
}

func NewREPL(debug bool, prompt, historyFile string, maxHistory int) *REPL {
	return &REPL{
		debug:       debug,
		prompt:      prompt,
		historyFile: historyFile,
		maxHistory:  maxHistory,
		history:     make([]string, 0),
		scanner:     bufio.NewScanner(os.Stdin),
	}
}

func (r *REPL) PrintWelcome() {
	info := cli.GetVersionInfo()
	fmt.Printf("arith REPL v%s\n", info.Version)
	fmt.Printf("Type :help for help, :quit to exit\n")
	fmt.Println()
}

func (r *REPL) Run(noPrompt bool) {
	for {
		if !noPrompt {
			fmt.Print(r.prompt)
		}

		if !r.scanner.Scan() {
			break
		}

		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}

		// Add to history
		r.AddToHistory(line)

		// Handle commands
		if strings.HasPrefix(line, ":") {
			if r.HandleCommand(line) {
				break // Exit requested
			}
			continue
		}

		// Evaluate expression
		result, err := r.Evaluate(line)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		fmt.Printf("=> %s\n", result)
	}

	r.SaveHistory()
}

func (r *REPL) HandleCommand(cmd string) bool {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return false
	}

	switch parts[0] {
	case ":help", ":h":
		r.PrintHelp()
	case ":quit", ":q", ":exit":
		fmt.Println("Goodbye!")
		return true
	case ":clear", ":c":
		fmt.Print("\033[2J\033[H") // Clear screen
	case ":load":
		if len(parts) < 2 {
			fmt.Println("Usage: :load <file>")
		} else {
			if err := r.LoadFile(parts[1]); err != nil {
				fmt.Printf("Error loading file: %v\n", err)
			}
		}
	case ":history":
		r.ShowHistory()
	case ":tree":
		if len(parts) < 2 {
			fmt.Printf("Tree dump: %v\n", r.showTree)
		} else {
			switch parts[1] {
			case "on", "true", "1":
				r.showTree = true
				fmt.Println("Tree dump enabled")
			case "off", "false", "0":
				r.showTree = false
				fmt.Println("Tree dump disabled")
			default:
				fmt.Println("Usage: :tree on|off")
			}
		}
	case ":debug":
		if len(parts) < 2 {
			fmt.Printf("Debug mode: %v\n", r.debug)
		} else {
			switch parts[1] {
			case "on", "true", "1":
				r.debug = true
				fmt.Println("Debug mode enabled")
			case "off", "false", "0":
				r.debug = false
				fmt.Println("Debug mode disabled")
			default:
				fmt.Println("Usage: :debug on|off")
			}
		}
	default:
		fmt.Printf("Unknown command: %s\n", parts[0])
		fmt.Println("Type :help for available commands")
	}

	return false
}

func (r *REPL) PrintHelp() {
	fmt.Println("REPL Commands:")
	fmt.Println("  :help, :h          Show this help")
	fmt.Println("  :quit, :q, :exit   Exit REPL")
	fmt.Println("  :clear, :c         Clear screen")
	fmt.Println("  :load <file>       Load and evaluate file")
	fmt.Println("  :history           Show command history")
	fmt.Println("  :tree on|off       Toggle expression tree dump")
	fmt.Println("  :debug on|off      Toggle debug mode")
	fmt.Println()
	fmt.Println("Enter arithmetic expressions to evaluate them,")
	fmt.Println("e.g. 2 + 3 * 4 or (8 - 3) / 2.")
}

func (r *REPL) Evaluate(input string) (string, error) {
	if r.debug {
		fmt.Printf("Debug: Evaluating '%s'\n", input)

		s := lexer.New(input)
		for {
			tok := s.CurrentToken()
			fmt.Printf("Debug: Token %s\n", tok)
			if tok.Type == lexer.TokenEOF {
				break
			}
			s.Tokenize()
		}
	}

	expr, err := p.New(input).Parse()
	if err != nil {
		return "", err
	}

	if r.debug {
		fmt.Printf("Debug: AST: %s\n", expr)
	}

	value, err := interp.Evaluate(expr)
	if err != nil {
		return "", err
	}

	if r.showTree {
		ast.NewTreePrinter(os.Stdout).Print(expr, "expr")
	}

	return fmt.Sprintf("%d", value), nil
}

// LoadFile evaluates each non-blank line of a file in order.
func (r *REPL) LoadFile(filename string) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		result, err := r.Evaluate(line)
		if err != nil {
			return fmt.Errorf("%s: %w", line, err)
		}
		fmt.Printf("%s => %s\n", line, result)
	}

	fmt.Printf("Loaded file: %s\n", filename)
	return nil
}

func (r *REPL) AddToHistory(line string) {
	r.history = append(r.history, line)
	if len(r.history) > r.maxHistory {
		r.history = r.history[1:]
	}
}

func (r *REPL) ShowHistory() {
	if len(r.history) == 0 {
		fmt.Println("No history")
		return
	}

	fmt.Println("Command history:")
	for i, cmd := range r.history {
		fmt.Printf("%3d: %s\n", i+1, cmd)
	}
}

func (r *REPL) LoadHistory() {
	content, err := os.ReadFile(r.historyFile)
	if err != nil {
		return // History file doesn't exist yet
	}

	lines := strings.Split(string(content), "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			r.history = append(r.history, line)
		}
	}

	// Trim to max history size
	if len(r.history) > r.maxHistory {
		r.history = r.history[len(r.history)-r.maxHistory:]
	}
}

func (r *REPL) SaveHistory() {
	if len(r.history) == 0 {
		return
	}

	content := strings.Join(r.history, "\n")
	os.WriteFile(r.historyFile, []byte(content), 0644)
}
