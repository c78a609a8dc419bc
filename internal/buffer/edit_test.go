package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  Edit
		valid bool
	}{
		{name: "replace range", edit: Edit{Start: 1, End: 2}, valid: true},
		{name: "insert", edit: Edit{Start: 3, Replacement: []string{"x"}}, valid: true},
		{name: "zero start", edit: Edit{Start: 0, End: 1}},
		{name: "end before start", edit: Edit{Start: 3, End: 2}},
		{name: "newline in replacement", edit: Edit{Start: 1, End: 1, Replacement: []string{"a\nb"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.edit.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidEdit)
			}
		})
	}
}

func TestAnyOverlapping(t *testing.T) {
	assert.False(t, AnyOverlapping([]Edit{{Start: 1, End: 2}, {Start: 3, End: 4}}))
	assert.True(t, AnyOverlapping([]Edit{{Start: 3, End: 5}, {Start: 1, End: 3}}))
	assert.True(t, AnyOverlapping([]Edit{{Start: 2}, {Start: 2}}))
	assert.False(t, AnyOverlapping([]Edit{{Start: 2}, {Start: 3, End: 3}}))
}

func TestAnyOverlappingKeepsOrder(t *testing.T) {
	edits := []Edit{{Start: 5, End: 5}, {Start: 1, End: 1}}
	AnyOverlapping(edits)
	assert.Equal(t, 5, edits[0].Start)
}

func TestApply(t *testing.T) {
	lines := []string{"a", "b", "c", "d", "e"}

	result, err := Apply(lines, []Edit{
		{Start: 4, End: 5, Replacement: []string{"d e"}},
		{Start: 1, End: 2, Replacement: []string{"a b"}},
		{Start: 3, Replacement: []string{"inserted"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a b", "inserted", "c", "d e"}, result)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, lines)
}

func TestApplyDelete(t *testing.T) {
	result, err := Apply([]string{"a", "b", "c"}, []Edit{{Start: 2, End: 2}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, result)
}

func TestApplyRejectsBadEdits(t *testing.T) {
	_, err := Apply([]string{"a"}, []Edit{{Start: 0}})
	assert.ErrorIs(t, err, ErrInvalidEdit)

	_, err = Apply([]string{"a", "b"}, []Edit{{Start: 1, End: 2}, {Start: 2, End: 2}})
	assert.ErrorIs(t, err, ErrOverlappingEdits)
}
