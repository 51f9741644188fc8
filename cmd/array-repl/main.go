// Package main provides an interactive shell for poking at a typed array.
//
// The shell drives one Array through its Facade, so assignments go through
// the deferred write path and "flush" is observable as a real yield point.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	array "github.com/tidusec/Array"
)

const (
	appName     = "array-repl"
	historyFile = ".array_repl_history"
	prompt      = "arr> "
)

var noColor bool

func red(s string) string {
	if noColor {
		return s
	}
	return "\x1b[31m" + s + "\x1b[0m"
}

func blue(s string) string {
	if noColor {
		return s
	}
	return "\x1b[94m" + s + "\x1b[0m"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Interactive shell for a runtime-typed array",
	Long: `array-repl hosts a single typed array and lets you drive its full
operation surface interactively: push, pop, insert, map, filter, sort,
deferred index assignment, and so on. Type "help" inside the shell.`,
	RunE: runShell,
}

func init() {
	rootCmd.Flags().String("type", "any", "element type (any, unknown, string, boolean, number, function, table, handle)")
	rootCmd.Flags().String("history", "", "history file (default ~/"+historyFile+")")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")
	_ = viper.BindPFlag("type", rootCmd.Flags().Lookup("type"))
	_ = viper.BindPFlag("history", rootCmd.Flags().Lookup("history"))
	viper.SetEnvPrefix("ARRAY_REPL")
	viper.AutomaticEnv()
}

func runShell(cmd *cobra.Command, _ []string) error {
	tag, err := array.ParseTypeTag(viper.GetString("type"))
	if err != nil {
		return err
	}

	histPath := viper.GetString("history")
	if histPath == "" {
		home, _ := os.UserHomeDir()
		histPath = filepath.Join(home, historyFile)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	f := array.NewFacade(array.New(tag), nil, array.JSONEncoder{})
	defer f.Close()

	fmt.Printf("array-repl: elements constrained to %q. Type help for commands, quit to exit.\n", tag)

	for {
		line, err := ln.Prompt(prompt)
		if err != nil {
			fmt.Println()
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if line == "quit" || line == ":quit" || line == "exit" {
			return nil
		}
		if out, err := eval(f, line); err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
		} else if out != "" {
			fmt.Println(blue(out))
		}
	}
}

// Named callbacks usable with map/filter/find/every/some from the shell.
var callbacks = map[string]array.NativeFunc{
	"double": func(args ...array.Value) (array.Value, error) {
		if args[0].Kind != array.KNumber {
			return array.Nil, fmt.Errorf("double wants a number")
		}
		return array.Number(args[0].Data.(float64) * 2), nil
	},
	"square": func(args ...array.Value) (array.Value, error) {
		if args[0].Kind != array.KNumber {
			return array.Nil, fmt.Errorf("square wants a number")
		}
		n := args[0].Data.(float64)
		return array.Number(n * n), nil
	},
	"upper": func(args ...array.Value) (array.Value, error) {
		if args[0].Kind != array.KString {
			return array.Nil, fmt.Errorf("upper wants a string")
		}
		return array.String(strings.ToUpper(args[0].Data.(string))), nil
	},
	"even": func(args ...array.Value) (array.Value, error) {
		if args[0].Kind != array.KNumber {
			return array.Boolean(false), nil
		}
		n := args[0].Data.(float64)
		return array.Boolean(n == float64(int64(n)) && int64(n)%2 == 0), nil
	},
	"odd": func(args ...array.Value) (array.Value, error) {
		if args[0].Kind != array.KNumber {
			return array.Boolean(false), nil
		}
		n := args[0].Data.(float64)
		return array.Boolean(n == float64(int64(n)) && int64(n)%2 != 0), nil
	},
	"sum": func(args ...array.Value) (array.Value, error) {
		if args[0].Kind != array.KNumber || args[1].Kind != array.KNumber {
			return array.Nil, fmt.Errorf("sum wants numbers")
		}
		return array.Number(args[0].Data.(float64) + args[1].Data.(float64)), nil
	},
}

// parseValue turns a shell token into a host value.
func parseValue(tok string) array.Value {
	switch tok {
	case "nil":
		return array.Nil
	case "true":
		return array.Boolean(true)
	case "false":
		return array.Boolean(false)
	}
	if n, err := strconv.ParseFloat(tok, 64); err == nil {
		return array.Number(n)
	}
	if len(tok) >= 2 && tok[0] == '"' && tok[len(tok)-1] == '"' {
		return array.String(tok[1 : len(tok)-1])
	}
	return array.String(tok)
}

func parseValues(toks []string) []array.Value {
	out := make([]array.Value, 0, len(toks))
	for _, t := range toks {
		out = append(out, parseValue(t))
	}
	return out
}

func eval(f *array.Facade, line string) (string, error) {
	fields := strings.Fields(line)
	cmd, rest := fields[0], fields[1:]

	switch cmd {
	case "help":
		return helpText, nil

	case "show":
		f.Flush()
		return f.String(), nil

	case "len":
		return strconv.Itoa(f.Len()), nil

	case "type":
		return f.Array().ElemType().String(), nil

	case "flush":
		f.Flush()
		if err := f.Err(); err != nil {
			return "", err
		}
		return "ok", nil

	case "get":
		if len(rest) != 1 {
			return "", fmt.Errorf("usage: get <index>")
		}
		i, err := strconv.Atoi(rest[0])
		if err != nil {
			return "", err
		}
		v, ok := f.Get(i)
		if !ok {
			return "nil", nil
		}
		return v.String(), nil

	case "set":
		if len(rest) != 2 {
			return "", fmt.Errorf("usage: set <index> <value>")
		}
		i, err := strconv.Atoi(rest[0])
		if err != nil {
			return "", err
		}
		// Deferred on purpose: the write lands on the next flush/show.
		f.Set(i, parseValue(rest[1]))
		return "scheduled", nil

	case "push", "unshift", "removeValue", "has", "indexOf":
		out, err := f.Invoke(cmd, parseValues(rest)...)
		return render(out), err

	case "pop", "shift", "first", "last", "sort", "sortMutable", "toTable", "toString", "unpack":
		out, err := f.Invoke(cmd)
		return render(out), err

	case "insert":
		if len(rest) != 2 {
			return "", fmt.Errorf("usage: insert <value> <index>")
		}
		i, err := strconv.Atoi(rest[1])
		if err != nil {
			return "", err
		}
		out, err := f.Invoke("insert", parseValue(rest[0]), array.Number(float64(i)))
		return render(out), err

	case "remove", "truncate":
		if len(rest) != 1 {
			return "", fmt.Errorf("usage: %s <index>", cmd)
		}
		i, err := strconv.Atoi(rest[0])
		if err != nil {
			return "", err
		}
		out, err := f.Invoke(cmd, array.Number(float64(i)))
		return render(out), err

	case "map", "filter", "find", "findAndRemove", "every", "some", "forEach":
		if len(rest) != 1 {
			return "", fmt.Errorf("usage: %s <callback> (one of: %s)", cmd, callbackNames())
		}
		fn, ok := callbacks[rest[0]]
		if !ok {
			return "", fmt.Errorf("unknown callback %q (one of: %s)", rest[0], callbackNames())
		}
		out, err := f.Invoke(cmd, array.Function(fn))
		return render(out), err

	case "reduce":
		if len(rest) < 1 {
			return "", fmt.Errorf("usage: reduce <callback> [initial]")
		}
		fn, ok := callbacks[rest[0]]
		if !ok {
			return "", fmt.Errorf("unknown callback %q (one of: %s)", rest[0], callbackNames())
		}
		args := []array.Value{array.Function(fn)}
		if len(rest) > 1 {
			args = append(args, parseValue(rest[1]))
		}
		out, err := f.Invoke("reduce", args...)
		return render(out), err

	default:
		return "", fmt.Errorf("unknown command %q; type help", cmd)
	}
}

// render shows Invoke results: derived arrays are printed in full, plain
// values as their debug form.
func render(v array.Value) string {
	if v.Kind == array.KNil {
		return "nil"
	}
	if a, ok := array.AsArray(v); ok {
		return a.String()
	}
	return v.String()
}

func callbackNames() string {
	names := make([]string, 0, len(callbacks))
	for n := range callbacks {
		names = append(names, n)
	}
	return strings.Join(names, ", ")
}

const helpText = `commands:
  push <v>...            append values
  unshift <v>...         insert values at the front (argument order reverses)
  insert <v> <i>         insert value at 1-based index
  pop | shift            remove from the back / front
  remove <i>             remove by index
  removeValue <v>        remove first equal value
  set <i> <v>            deferred write (runs on flush/show)
  get <i>                read by index
  first | last           peek at the ends
  has <v> | indexOf <v>  membership / position
  sort | sortMutable     sorted copy / sort in place
  map <cb>               transform (double, square, upper, ...)
  filter <cb>            keep matching (even, odd, ...)
  find <cb> | findAndRemove <cb>
  every <cb> | some <cb>
  reduce <cb> [initial]  left fold (try: reduce sum 0)
  truncate <n>           leading elements (keeps n-1; see docs)
  show | len | type      inspect
  flush                  run pending deferred writes
  quit                   leave`
