package optiondb

import (
	"errors"
	"testing"

	"github.com/napalu/earg/errs"
	"github.com/napalu/earg/types"
	"github.com/stretchr/testify/assert"
)

func TestDB_InsertFind(t *testing.T) {
	cmd := &types.Command{
		Name: "prog",
		Options: []types.Option{
			types.Group("General"),
			{Name: "output", Key: 'o', Arg: "FILE"},
			{Key: 'v', Flags: types.OptionMultiple},
			{Name: "dry-run"},
		},
	}
	db := New()
	db.Checkpoint()
	assert.NoError(t, db.InsertAll(cmd.Options, cmd))
	assert.Equal(t, 3, db.Len())

	e, ok := db.FindByName("output")
	assert.True(t, ok)
	assert.Same(t, &cmd.Options[1], e.Option)
	assert.Same(t, cmd, e.Command)

	e, ok = db.FindByKey('v')
	assert.True(t, ok)
	assert.Equal(t, 'v', e.Option.Key)

	_, ok = db.FindByName("dry")
	assert.False(t, ok, "no prefix matching")
	_, ok = db.FindByName("")
	assert.False(t, ok)
	_, ok = db.FindByKey(types.KeyNone)
	assert.False(t, ok)
	_, ok = db.FindByName("General")
	assert.False(t, ok, "group headers are not inserted")
}

func TestDB_DuplicateWithinScope(t *testing.T) {
	tests := []struct {
		name string
		opts []types.Option
	}{
		{"same name", []types.Option{{Name: "out"}, {Name: "out", Key: 'o'}}},
		{"same key", []types.Option{{Key: 'x'}, {Name: "extract", Key: 'x'}}},
		{"same sentinel key", []types.Option{{Name: "a", Key: types.KeyVersion}, {Name: "b", Key: types.KeyVersion}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &types.Command{Name: "prog", Options: tt.opts}
			db := New()
			db.Checkpoint()
			err := db.InsertAll(cmd.Options, cmd)
			assert.True(t, errors.Is(err, errs.ErrDuplicateOption))
		})
	}
}

func TestDB_LongOnlyOptionsDoNotCollideOnKey(t *testing.T) {
	cmd := &types.Command{Name: "prog", Options: []types.Option{{Name: "one"}, {Name: "two"}}}
	db := New()
	db.Checkpoint()
	assert.NoError(t, db.InsertAll(cmd.Options, cmd))
}

func TestDB_ScopesShadow(t *testing.T) {
	root := &types.Command{Name: "prog", Options: []types.Option{{Name: "force", Key: 'f'}, {Name: "verbose"}}}
	sub := &types.Command{Name: "rm", Options: []types.Option{{Name: "force", Key: 'f', Arg: "LEVEL"}}}

	db := New()
	assert.Equal(t, 0, db.Checkpoint())
	assert.NoError(t, db.InsertAll(root.Options, root))
	assert.Equal(t, 2, db.Checkpoint())
	assert.NoError(t, db.InsertAll(sub.Options, sub))

	e, ok := db.FindByKey('f')
	assert.True(t, ok)
	assert.Same(t, sub, e.Command)

	e, ok = db.FindByName("verbose")
	assert.True(t, ok)
	assert.Same(t, root, e.Command)

	assert.Equal(t, 3, db.Len())

	db.Dispose()
	assert.Equal(t, 0, db.Len())
	_, ok = db.FindByKey('f')
	assert.False(t, ok)
}

func TestDB_InsertNil(t *testing.T) {
	db := New()
	assert.NoError(t, db.Insert(nil, nil))
	assert.Equal(t, 0, db.Len())
}
