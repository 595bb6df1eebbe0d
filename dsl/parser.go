// Package dsl parses the TeX-flavoured formula language into an AST.
// The grammar is deliberately small: commands, groups, scripts and
// \left...\right fences; semantic interpretation happens in the atom
// package.
package dsl

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	formulaLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Left", Pattern: `\\left`},
		{Name: "Right", Pattern: `\\right`},
		{Name: "Command", Pattern: `\\[a-zA-Z]+`},
		{Name: "Escape", Pattern: `\\[,:;! ]`},
		{Name: "Number", Pattern: `\d+(?:\.\d+)?`},
		{Name: "Ident", Pattern: `[A-Za-z]+`},
		{Name: "Script", Pattern: `[\^_]`},
		{Name: "LBrace", Pattern: `\{`},
		{Name: "RBrace", Pattern: `\}`},
		{Name: "Symbol", Pattern: `[-+*/=<>(),;:.!'|\[\]]`},
	})

	formulaParser = participle.MustBuild[Formula](
		participle.Lexer(formulaLexer),
		participle.Elide("Whitespace"),
	)
)

// Formula is the root AST node: a horizontal list of items.
type Formula struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Items []*Item        `parser:"@@*"`
}

// Item is a node optionally followed by superscript/subscript arguments.
type Item struct {
	Node    *Node        `parser:"@@"`
	Scripts []*ScriptArg `parser:"@@*"`
}

// ScriptArg is one ^arg or _arg attachment.
type ScriptArg struct {
	Op  string `parser:"@Script"`
	Arg *Node  `parser:"@@"`
}

// Node is a single formula constituent.
type Node struct {
	Fenced  *Fenced  `parser:"  @@"`
	Command *Command `parser:"| @@"`
	Space   string   `parser:"| @Escape"`
	Group   *Group   `parser:"| @@"`
	Number  string   `parser:"| @Number"`
	Letters string   `parser:"| @Ident"`
	Symbol  string   `parser:"| @Symbol"`
}

// Fenced is a \left<delim> ... \right<delim> construct.
type Fenced struct {
	Left  string  `parser:"Left @Symbol"`
	Body  []*Item `parser:"@@*"`
	Right string  `parser:"Right @Symbol"`
}

// Command is a control sequence with brace-delimited arguments.
type Command struct {
	Pos  lexer.Position `parser:"" json:"-"`
	Name string         `parser:"@Command"`
	Args []*Group       `parser:"@@*"`
}

// Group is a brace-delimited sub-formula.
type Group struct {
	Items []*Item `parser:"LBrace @@* RBrace"`
}

// Parse parses formula content from an io.Reader.
func Parse(r io.Reader) (*Formula, error) {
	return formulaParser.Parse("", r)
}

// ParseString parses formula content from a string.
func ParseString(input string) (*Formula, error) {
	return formulaParser.ParseString("", input)
}
