package registry

import (
	"testing"

	"github.com/arthur-debert/outfit/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndGet(t *testing.T) {
	r := New[int]()

	require.NoError(t, r.Register("one", 1))
	require.NoError(t, r.Register("two", 2))

	got, err := r.Get("one")
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	assert.True(t, r.Has("two"))
	assert.False(t, r.Has("three"))
	assert.Equal(t, 2, r.Count())
}

func TestRegister_EmptyName(t *testing.T) {
	r := New[string]()
	err := r.Register("", "x")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRegister_Duplicate(t *testing.T) {
	r := New[string]()
	require.NoError(t, r.Register("dup", "a"))

	err := r.Register("dup", "b")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}

func TestGet_NotFound(t *testing.T) {
	r := New[string]()
	_, err := r.Get("missing")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestList_Sorted(t *testing.T) {
	r := New[string]()
	require.NoError(t, r.Register("zeta", "z"))
	require.NoError(t, r.Register("alpha", "a"))

	assert.Equal(t, []string{"alpha", "zeta"}, r.List())
}
