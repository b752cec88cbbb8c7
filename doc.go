// Package faber compiles source written in a small Latin-keyword
// general-purpose language into target-language source text.
//
// # Overview
//
// A compilation runs three pure, in-memory stages: the lexer turns
// source text into a token stream, the parser turns a prepared token
// stream into a module AST, and the emitter turns that AST into
// target-language text. Compile runs all three; Lex, Prepare, Parse,
// and Emit expose the individual stages for embedders and tooling.
//
// Each stage is single-threaded and non-suspending. Throughput across
// many independent files comes from Pool, which runs one compilation
// per worker with no shared mutable state beyond the read-only lexer,
// parser, and emitter lookup tables.
package faber
