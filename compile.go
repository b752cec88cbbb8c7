package faber

import (
	"fmt"

	"github.com/ianzepp/faber/ast"
	"github.com/ianzepp/faber/emitter"
	"github.com/ianzepp/faber/lexer"
	"github.com/ianzepp/faber/parser"
	"github.com/ianzepp/faber/token"
)

// Lex runs the lexical stage alone, returning every token through EOF
// (inclusive). If the lexer stops at an ERROR token, Lex returns no
// tokens and a *CompileError at that token's position. Embedders that
// only need tokens (syntax highlighting, a formatter) can stop here
// without paying for parsing.
func Lex(filename, source string) ([]token.Token, error) {
	l, err := lexer.New(filename, source)
	if err != nil {
		return nil, NewCompileError(filename, token.NewPosition(), err.Error(), source)
	}
	tokens := l.Tokens()
	if last := tokens[len(tokens)-1]; last.Kind == token.ERROR {
		return nil, NewCompileError(filename, last.Position, last.Lexeme, source)
	}
	return tokens, nil
}

// Prepare strips NEWLINE and COMMENT tokens, producing the stream the
// parser's newline-insensitive grammar expects.
func Prepare(tokens []token.Token) []token.Token {
	return lexer.Prepare(tokens)
}

// Parse runs the syntactic stage over an already-prepared token
// stream, producing a module AST.
func Parse(filename string, tokens []token.Token, source string) (*ast.Module, error) {
	p := parser.New(filename, tokens)
	mod, err := p.Parse()
	if err != nil {
		if perr, ok := err.(*parser.Error); ok {
			return nil, NewCompileError(filename, perr.Token.Position, perr.Message, source)
		}
		return nil, NewCompileError(filename, token.NewPosition(), err.Error(), source)
	}
	return mod, nil
}

// Emit runs the emission stage alone, rendering an already-parsed
// module as target-language source text.
func Emit(mod *ast.Module, cfg Config) (string, error) {
	out, err := emitter.Emit(mod, toEmitterConfig(cfg))
	if err != nil {
		return "", fmt.Errorf("emit: %w", err)
	}
	return out, nil
}

func toEmitterConfig(cfg Config) emitter.Config {
	return emitter.Config{
		Indent:                  cfg.Indent,
		StatementTerminator:     cfg.StatementTerminator,
		DefaultMethodVisibility: cfg.DefaultMethodVisibility,
	}
}

// Compile runs all three stages in sequence: Lex, Prepare, Parse, and
// Emit. The first stage to fail aborts the pipeline and its
// *CompileError is returned; a structural emitter failure is wrapped
// in one too, stamped at the module's start position, since it has no
// single offending token of its own.
func Compile(filename, source string, cfg Config) (string, error) {
	tokens, err := Lex(filename, source)
	if err != nil {
		return "", err
	}

	mod, err := Parse(filename, Prepare(tokens), source)
	if err != nil {
		return "", err
	}

	out, err := Emit(mod, cfg)
	if err != nil {
		return "", NewCompileError(filename, mod.Position, err.Error(), source)
	}
	return out, nil
}
