package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spellsheet/internal/application"
	"spellsheet/internal/domain"
)

func TestAddWordCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "valid word", text: "library"},
		{name: "empty", text: "", wantErr: true},
		{name: "whitespace only", text: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&AddWordCommand{Text: tt.text}).Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var verr *application.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "word", verr.Field)
			assert.Contains(t, verr.Message, "word is required")
		})
	}
}

func TestAddWordCommand_Execute(t *testing.T) {
	s := newSession(t, "apple")

	res, err := NewAddWordCommand(s, "Apple").Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Added)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, "No new words (1 duplicate(s) skipped)", res.Message)

	res, err = NewAddWordCommand(s, "banana").Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Added 1 word(s): banana", res.Message)
}

func TestAddWordsCommand_SplitsLinesAndCommas(t *testing.T) {
	s := newSession(t)

	res, err := NewAddWordsCommand(s, []string{"one, two\nthree", "", "Two"}).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, domain.Texts(res.Added))
	assert.Equal(t, 1, res.Skipped)

	res, err = NewAddWordsCommand(s, nil).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Nothing to add", res.Message)
}

func TestDeleteWordCommand(t *testing.T) {
	s := newSession(t, "alpha", "beta")

	res, err := NewDeleteWordCommand(s, "ALPHA").Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Deleted)
	assert.Equal(t, "w_1", res.ID)

	res, err = NewDeleteWordCommand(s, "w_2").Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Deleted)

	res, err = NewDeleteWordCommand(s, "w_2").Execute(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Deleted)
	assert.Equal(t, "No such word: w_2", res.Message)

	_, err = NewDeleteWordCommand(s, "").Execute(context.Background())
	require.Error(t, err)
}

func TestListWordsCommand(t *testing.T) {
	s := newSession(t, "thorough", "though", "rough", "bough")

	all, err := NewListWordsCommand(s, "").Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"bough", "rough", "thorough", "though"}, domain.Texts(all))

	some, err := NewListWordsCommand(s, "THO").Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"thorough", "though"}, domain.Texts(some))
}
