// Package optiondb implements the option lookup table shared by all scopes of a parse.
//
// Scopes are layered: each command inserts its options on top of the options of its ancestors
// after taking a checkpoint. Lookups scan from the newest entry so that an option of a
// sub-command shadows an ancestor option with the same name or key. Duplicate detection only
// considers entries inserted since the last checkpoint.
package optiondb

import (
	"github.com/napalu/earg/errs"
	"github.com/napalu/earg/types"
)

// Entry binds an option to the command declaring it and counts its occurrences
type Entry struct {
	Option      *types.Option
	Command     *types.Command
	Occurrences int
}

// DB is the option lookup table
type DB struct {
	entries []*Entry
	mark    int
}

// New creates an empty table
func New() *DB {
	return &DB{
		entries: make([]*Entry, 0, 16),
	}
}

// Checkpoint starts a new scope and returns its first index
func (db *DB) Checkpoint() int {
	db.mark = len(db.entries)

	return db.mark
}

// Insert adds opt owned by cmd to the current scope. Group headers are ignored.
func (db *DB) Insert(opt *types.Option, cmd *types.Command) error {
	if opt == nil || opt.IsGroup() {
		return nil
	}
	for _, e := range db.entries[db.mark:] {
		if (opt.Name != "" && e.Option.Name == opt.Name) ||
			(opt.Key != types.KeyNone && e.Option.Key == opt.Key) {
			return errs.ErrDuplicateOption.WithArgs(opt.String(), commandName(cmd))
		}
	}
	db.entries = append(db.entries, &Entry{Option: opt, Command: cmd})

	return nil
}

// InsertAll inserts every option of opts, stopping at the first error
func (db *DB) InsertAll(opts []types.Option, cmd *types.Command) error {
	for i := range opts {
		if err := db.Insert(&opts[i], cmd); err != nil {
			return err
		}
	}

	return nil
}

// FindByName returns the entry whose long name is exactly name
func (db *DB) FindByName(name string) (*Entry, bool) {
	if name == "" {
		return nil, false
	}
	for i := len(db.entries) - 1; i >= 0; i-- {
		if db.entries[i].Option.Name == name {
			return db.entries[i], true
		}
	}

	return nil, false
}

// FindByKey returns the entry whose short key is key
func (db *DB) FindByKey(key rune) (*Entry, bool) {
	if key == types.KeyNone {
		return nil, false
	}
	for i := len(db.entries) - 1; i >= 0; i-- {
		if db.entries[i].Option.Key == key {
			return db.entries[i], true
		}
	}

	return nil, false
}

// Len returns the number of entries
func (db *DB) Len() int {
	return len(db.entries)
}

// Dispose releases all entries
func (db *DB) Dispose() {
	clear(db.entries)
	db.entries = db.entries[:0]
	db.mark = 0
}

func commandName(cmd *types.Command) string {
	if cmd == nil {
		return ""
	}

	return cmd.Name
}
