package runtime

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
)

// Symbol table for variables. Dendron has a single, global scope, so every
// run uses exactly one symbol table.
//

// --- Tags -------------------------------------------------------

// Tag is the symbols type to be stored into symbol tables. It may be a
// little surprising this type is not called 'Symbol', but I prefer the
// name 'Tag' because it is less confusing when dealing with grammars:
// grammars consist of symbols, too. Thus, symbols are used in the scope of the
// grammar, tags are used during runtime (of the client program).
//
type Tag struct {
	name  string
	Value int32 // current value of the variable
}

// NewTag creates a new tag with value 0.
func NewTag(nm string) *Tag {
	return &Tag{name: nm}
}

// WithValue sets the initial value of a tag. Use as
//
//    tag := NewTag("x").WithValue(42)
//
func (s *Tag) WithValue(v int32) *Tag {
	s.Value = v
	return s
}

// String is a debug Stringer for tags.
func (s *Tag) String() string {
	return fmt.Sprintf("<tag '%s'=%d>", s.Name(), s.Value)
}

// Name gets the tag's name.
func (s *Tag) Name() string {
	return s.name
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store tags (map-like semantics).
type SymbolTable struct {
	Table     map[string]*Tag
	createTag func(string) *Tag
}

// NewSymbolTable creates an empty symbol table.
//
func NewSymbolTable() *SymbolTable {
	var symtab = SymbolTable{
		Table:     make(map[string]*Tag),
		createTag: NewTag,
	}
	return &symtab
}

// ResolveTag checks for a tag in the symbol table.
// Returns a tag or nil.
//
func (t *SymbolTable) ResolveTag(tagname string) *Tag {
	return t.Table[tagname]
}

// ResolveOrDefineTag finds
// a tag in the table, inserts a new one if not found.
// Returns the tag and a flag, signalling wether the tag
// has already been present.
//
func (t *SymbolTable) ResolveOrDefineTag(tagname string) (*Tag, bool) {
	if len(tagname) == 0 {
		return nil, false
	}
	found := true
	tag := t.ResolveTag(tagname)
	if tag == nil { // if not already there, insert it
		tag, _ = t.DefineTag(tagname)
		found = false
	}
	return tag, found
}

// DefineTag creates a new tag to store into the symbol table.
// The tag's name may not be empty.
// Overwrites existing tag with this name, if any.
// Returns the new tag and the previously stored tag (or nil).
//
func (t *SymbolTable) DefineTag(tagname string) (*Tag, *Tag) {
	if len(tagname) == 0 {
		return nil, nil
	}
	tag := t.createTag(tagname)
	old := t.InsertTag(tag)
	return tag, old
}

// InsertTag inserts a pre-created tag.
func (t *SymbolTable) InsertTag(tag *Tag) *Tag {
	old := t.ResolveTag(tag.name)
	t.Table[tag.name] = tag
	return old
}

// Size counts the tags in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.Table)
}

// Each iterates over each tag in the table, executing a mapper function.
// Iteration order is unspecified.
func (t *SymbolTable) Each(mapper func(string, *Tag)) {
	for k, v := range t.Table {
		mapper(k, v)
	}
}

// Clone creates a copy of the table. Tags are copied, too, so changes to the
// copy do not show in t.
func (t *SymbolTable) Clone() *SymbolTable {
	c := NewSymbolTable()
	t.Each(func(name string, tag *Tag) {
		c.InsertTag(NewTag(name).WithValue(tag.Value))
	})
	return c
}

// EachSorted iterates over the tags in the table in ascending order of their
// names. Use this for anything a user gets to see.
func (t *SymbolTable) EachSorted(mapper func(string, *Tag)) {
	sorted := treemap.NewWithStringComparator()
	for k, v := range t.Table {
		sorted.Put(k, v)
	}
	sorted.Each(func(k interface{}, v interface{}) {
		mapper(k.(string), v.(*Tag))
	})
}

// Values returns a copy of the variables and their values.
func (t *SymbolTable) Values() map[string]int32 {
	m := make(map[string]int32, len(t.Table))
	for k, v := range t.Table {
		m[k] = v.Value
	}
	return m
}

// Dump returns the table as a list of lines "name = value", sorted by name.
func (t *SymbolTable) Dump() []string {
	lines := make([]string, 0, len(t.Table))
	t.EachSorted(func(name string, tag *Tag) {
		lines = append(lines, fmt.Sprintf("%s = %d", name, tag.Value))
	})
	return lines
}
