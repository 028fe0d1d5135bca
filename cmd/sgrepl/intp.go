package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/pterm/pterm"

	"github.com/npillmayer/grammarian/ll"
	"github.com/npillmayer/grammarian/ll/ptree"
	"github.com/npillmayer/grammarian/ll/rd"
	"github.com/npillmayer/grammarian/ll/scanner"
)

// production is a line of grammar input, i.e. alternatives for a non-terminal.
type production struct {
	N    ll.Symbol
	alts []string
}

// Intp is our interpreter object
type Intp struct {
	repl       *readline.Instance
	draft      *arraylist.List // productions entered so far
	start      ll.Symbol
	grammar    *ll.Grammar // grammar built from draft, nil if draft changed
	lastAccept bool
	lastTree   *ptree.Node
}

// NewIntp creates an interpreter with an empty grammar.
func NewIntp() *Intp {
	return &Intp{
		draft: arraylist.New(),
		start: ll.DefaultStart,
	}
}

var errQuit = errors.New("quit")

type command func(intp *Intp, arg string) error

var commands map[string]command

func init() {
	commands = map[string]command{
		"check": (*Intp).check,
		"parse": (*Intp).parse,
		"show":  (*Intp).show,
		"clear": (*Intp).clear,
		"start": (*Intp).setStart,
		"load":  (*Intp).load,
		"scan":  (*Intp).scan,
		"help":  (*Intp).help,
		"quit":  func(*Intp, string) error { return errQuit },
	}
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" || strings.HasPrefix(line, "#") {
			lineno++
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			tracer().Errorf("Error line %d: "+err.Error(), lineno)
		}
		if quit {
			break
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, _ := intp.Eval(line)
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a line of input. A line is either
//
//   - a production "X -> α | β", adding alternatives to the grammar,
//   - a command, starting with ':',
//   - or an input string to parse.
//
// Errors are displayed to the user and returned.
func (intp *Intp) Eval(line string) (bool, error) {
	line = strings.TrimSpace(line)
	var err error
	switch {
	case strings.HasPrefix(line, ":"):
		name, arg, _ := strings.Cut(line[1:], " ")
		cmd, ok := commands[name]
		if !ok {
			cmd = lookupCommand(name)
		}
		if cmd == nil {
			err = fmt.Errorf("unknown command :%s, try :help", name)
		} else {
			err = cmd(intp, strings.TrimSpace(arg))
		}
	case strings.Contains(line, "->"):
		err = intp.addProduction(line)
	default:
		err = intp.parse(line)
	}
	if errors.Is(err, errQuit) {
		return true, nil
	}
	if err != nil {
		tracer().Debugf("%v", err)
	}
	return false, err
}

// lookupCommand finds a command by unique prefix.
func lookupCommand(prefix string) command {
	var found command
	if prefix == "" {
		return nil
	}
	for name, cmd := range commands {
		if strings.HasPrefix(name, prefix) {
			if found != nil {
				return nil // ambiguous
			}
			found = cmd
		}
	}
	return found
}

// --- Grammar input ---------------------------------------------------------

func (intp *Intp) addProduction(line string) error {
	N, alts, err := ll.ParseProduction(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	intp.draft.Add(production{N: N, alts: alts})
	intp.grammar = nil
	tracer().Debugf("added %d alternatives for %s", len(alts), N)
	return nil
}

// currentGrammar builds the grammar from the productions entered so far.
func (intp *Intp) currentGrammar() (*ll.Grammar, error) {
	if intp.grammar != nil {
		return intp.grammar, nil
	}
	b := ll.NewGrammarBuilder("G").StartSymbol(intp.start)
	it := intp.draft.Iterator()
	for it.Next() {
		p := it.Value().(production)
		b.Rules(p.N, p.alts...)
	}
	g, err := b.Grammar()
	if err != nil {
		pterm.Error.Println(err.Error())
		return nil, err
	}
	g.Dump()
	intp.grammar = g
	return g, nil
}

func (intp *Intp) clear(string) error {
	intp.draft.Clear()
	intp.grammar = nil
	intp.start = ll.DefaultStart
	pterm.Info.Println("grammar cleared")
	return nil
}

func (intp *Intp) setStart(arg string) error {
	S, _ := utf8.DecodeRuneInString(arg)
	if utf8.RuneCountInString(arg) != 1 || !ll.Symbol(S).IsNonTerminal() {
		err := fmt.Errorf("start symbol must be a single uppercase letter, is %q", arg)
		pterm.Error.Println(err.Error())
		return err
	}
	intp.start = ll.Symbol(S)
	intp.grammar = nil
	return nil
}

func (intp *Intp) load(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	defer f.Close()
	g, err := ll.ReadGrammar(filename, f)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	intp.draft.Clear()
	g.EachNonTerminal(func(N ll.Symbol, alts []*ll.Rule) interface{} {
		texts := make([]string, len(alts))
		for i, r := range alts {
			texts[i] = r.Text()
		}
		intp.draft.Add(production{N: N, alts: texts})
		return nil
	})
	intp.start = g.Start()
	intp.grammar = nil
	pterm.Info.Printf("loaded grammar with %d rules\n", g.Size())
	return nil
}

func (intp *Intp) show(string) error {
	g, err := intp.currentGrammar()
	if err != nil {
		return err
	}
	pterm.Println(g.String())
	pterm.Info.Printf("start symbol %s, signature %s\n", g.Start(), g.Signature())
	if undef := g.Undefined(); len(undef) > 0 {
		pterm.Warning.Printf("undefined non-terminals: %v\n", undef)
	}
	return nil
}

// --- Checking and parsing --------------------------------------------------

func (intp *Intp) check(string) error {
	g, err := intp.currentGrammar()
	if err != nil {
		return err
	}
	if err = ll.CheckSimple(g); err != nil {
		pterm.Warning.Println(err.Error())
		return err
	}
	pterm.Success.Println("The grammar is simple.")
	return nil
}

func (intp *Intp) parse(input string) error {
	intp.lastAccept, intp.lastTree = false, nil
	g, err := intp.currentGrammar()
	if err != nil {
		return err
	}
	if err = ll.CheckSimple(g); err != nil {
		pterm.Warning.Println(err.Error())
		return err
	}
	pterm.Info.Printf("The input string: %q\n", input)
	accept, tree, err := rd.NewParser(g).Parse(input)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	intp.lastAccept, intp.lastTree = accept, tree
	if !accept {
		pterm.Error.Println("Your input string is rejected.")
		return nil
	}
	pterm.Success.Println("Your input string is accepted.")
	pterm.DefaultTree.WithRoot(treeDisplay(tree)).Render()
	return nil
}

// --- Scanner ---------------------------------------------------------------

func (intp *Intp) scan(code string) error {
	tokens, comments, err := scanner.Analyze(code)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	for _, token := range tokens {
		pterm.Printf("Token Type: %-24s Token Value: %s\n", scanner.Category(token.TokType()), token.Lexeme())
	}
	pterm.Println(colored(tokens))
	for _, c := range comments {
		pterm.Println(pterm.FgGray.Sprint(c.Lexeme()))
	}
	return nil
}

func (intp *Intp) help(string) error {
	pterm.Println(`X -> α | β     add alternatives for non-terminal X (ε for an empty alternative)
:check         check if the grammar is simple
:parse w       parse input string w (any other line not starting with ':' does the same,
               unless it contains '->': use :parse for inputs containing an arrow)
:show          show the grammar
:start X       set the start symbol (default S)
:clear         start a new grammar
:load file     load a grammar from a file
:scan code     tokenize C source code
:quit          leave`)
	return nil
}
