// Package editor implements structural operations on a template's ordered
// block list: insert, remove, move, update-content, update-style.
//
// Every operation is pure: it returns a new Template value and never mutates
// its input, so a caller can keep reading an old snapshot while building a
// new one. Invariants preserved by every operation: block ids stay unique
// within the template, block order stays a total order with no gaps, and no
// operation drops sibling blocks as a side effect.
package editor

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/offertio/dokgen/pkg/blocks"
	"github.com/offertio/dokgen/pkg/document"
	"github.com/offertio/dokgen/pkg/style"
)

// ErrOutOfRange is returned when an index falls outside the block list.
// Silent clamping would hide a caller bug in the reordering UI, so this is
// the one structural operation family that rejects bad input.
var ErrOutOfRange = errors.New("editor: index out of range")

// NewBlockID mints a fresh block id.
func NewBlockID() string { return uuid.NewString() }

// AppendBlock inserts a block of the given type at the end of the list.
func AppendBlock(tpl document.Template, reg *blocks.Registry, tag document.Type) (document.Template, error) {
	return InsertBlock(tpl, reg, tag, len(tpl.Blocks))
}

// InsertBlock creates a block with a fresh id and the type's default content
// and style, inserted at the given position. The position may equal the
// current length (append). The registry decides the defaults; inserting a
// type the registry does not know is a caller error.
func InsertBlock(tpl document.Template, reg *blocks.Registry, tag document.Type, at int) (document.Template, error) {
	if at < 0 || at > len(tpl.Blocks) {
		return tpl, fmt.Errorf("%w: insert at %d of %d", ErrOutOfRange, at, len(tpl.Blocks))
	}
	content, _, ok := reg.TypeDefaults(tag)
	if !ok {
		return tpl, fmt.Errorf("editor: unknown block type %q", tag)
	}

	// Type defaults stay in the registry; a fresh block carries no explicit
	// style overrides of its own.
	block := document.ContentBlock{
		ID:      NewBlockID(),
		Type:    tag,
		Content: content,
	}

	out := tpl.Clone()
	out.Blocks = append(out.Blocks[:at], append([]document.ContentBlock{block}, out.Blocks[at:]...)...)
	return out, nil
}

// Duplicate copies a whole template under a fresh template id with Version
// reset, ready for store.Create. The copy keeps every block, including its
// style overrides; block ids stay as they are since they only need to be
// unique within one template. An empty name keeps the original's.
func Duplicate(tpl document.Template, name string) document.Template {
	out := tpl.Clone()
	out.ID = uuid.NewString()
	out.Version = 0
	if name != "" {
		out.Name = name
	}
	return out
}

// RemoveBlock removes the block with the given id. Removing an id that is
// not present is a no-op, not an error: deletes are idempotent so a stale UI
// issuing the same delete twice stays harmless.
func RemoveBlock(tpl document.Template, blockID string) document.Template {
	idx := tpl.BlockIndex(blockID)
	if idx < 0 {
		return tpl
	}
	out := tpl.Clone()
	out.Blocks = append(out.Blocks[:idx], out.Blocks[idx+1:]...)
	return out
}

// MoveBlock relocates the block at from to position to, shifting the blocks
// between them. Both indices must address existing blocks; anything else
// returns ErrOutOfRange with the template unchanged.
func MoveBlock(tpl document.Template, from, to int) (document.Template, error) {
	n := len(tpl.Blocks)
	if from < 0 || from >= n || to < 0 || to >= n {
		return tpl, fmt.Errorf("%w: move %d -> %d of %d", ErrOutOfRange, from, to, n)
	}
	if from == to {
		return tpl.Clone(), nil
	}

	out := tpl.Clone()
	moved := out.Blocks[from]
	rest := append(out.Blocks[:from], out.Blocks[from+1:]...)
	out.Blocks = append(rest[:to], append([]document.ContentBlock{moved}, rest[to:]...)...)
	return out, nil
}

// UpdateContent replaces a block's content wholesale. The block keeps its id,
// type, style, and position. An absent id is a no-op, mirroring RemoveBlock.
func UpdateContent(tpl document.Template, blockID string, content document.Content) document.Template {
	idx := tpl.BlockIndex(blockID)
	if idx < 0 {
		return tpl
	}
	out := tpl.Clone()
	out.Blocks[idx].Content = content
	return out
}

// UpdateStyle merges a shallow style patch into a block's settings. Only the
// supplied properties change; a property patched to nil is cleared back to
// "unset" so it falls through to type defaults again. An absent id is a
// no-op.
func UpdateStyle(tpl document.Template, blockID string, patch style.Patch) (document.Template, error) {
	idx := tpl.BlockIndex(blockID)
	if idx < 0 {
		return tpl, nil
	}
	merged, err := style.Apply(tpl.Blocks[idx].Style, patch)
	if err != nil {
		return tpl, err
	}
	out := tpl.Clone()
	if merged.IsZero() {
		out.Blocks[idx].Style = nil
	} else {
		out.Blocks[idx].Style = merged
	}
	return out, nil
}
