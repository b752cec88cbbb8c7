package ast

import "github.com/bits-and-blooms/bitset"

// Declaration-level boolean flags set by annotations (§4.2: publica,
// privata, protecta, futura, externa, abstractus). Packed into a
// bitset rather than six separate bool fields because annotations
// accumulate in an open-ended loop before the declaration they modify
// is even parsed — setting named bits on a single value reads better
// at that call site than threading six bool locals through it.
const (
	flagPublic uint = iota
	flagPrivate
	flagProtected
	flagAsync
	flagExtern
	flagAbstract
)

// DeclFlags is the flag set attached to function, class, and field
// declarations.
type DeclFlags struct {
	bits *bitset.BitSet
}

// NewDeclFlags returns an empty flag set.
func NewDeclFlags() DeclFlags {
	return DeclFlags{bits: bitset.New(8)}
}

func (f *DeclFlags) ensure() {
	if f.bits == nil {
		f.bits = bitset.New(8)
	}
}

func (f *DeclFlags) set(bit uint) {
	f.ensure()
	f.bits.Set(bit)
}

func (f DeclFlags) get(bit uint) bool {
	if f.bits == nil {
		return false
	}
	return f.bits.Test(bit)
}

func (f *DeclFlags) SetPublic()    { f.set(flagPublic) }
func (f *DeclFlags) SetPrivate()   { f.set(flagPrivate) }
func (f *DeclFlags) SetProtected() { f.set(flagProtected) }
func (f *DeclFlags) SetAsync()     { f.set(flagAsync) }
func (f *DeclFlags) SetExtern()    { f.set(flagExtern) }
func (f *DeclFlags) SetAbstract()  { f.set(flagAbstract) }

func (f DeclFlags) IsPublic() bool    { return f.get(flagPublic) }
func (f DeclFlags) IsPrivate() bool   { return f.get(flagPrivate) }
func (f DeclFlags) IsProtected() bool { return f.get(flagProtected) }
func (f DeclFlags) IsAsync() bool     { return f.get(flagAsync) }
func (f DeclFlags) IsExtern() bool    { return f.get(flagExtern) }
func (f DeclFlags) IsAbstract() bool  { return f.get(flagAbstract) }

// HasExplicitVisibility reports whether an annotation set public,
// private, or protected explicitly — as opposed to leaving the
// dialect-configured default to apply.
func (f DeclFlags) HasExplicitVisibility() bool {
	return f.IsPublic() || f.IsPrivate() || f.IsProtected()
}
