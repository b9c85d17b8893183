package codec

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spellsheet/internal/domain"
)

func TestEscapeCSV(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "coat, rack", want: `"coat, rack"`},
		{in: `say "hi"`, want: `"say ""hi"""`},
		{in: "two\nlines", want: "\"two\nlines\""},
		{in: "it's", want: "it's"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeCSV(tt.in))
		})
	}
}

func TestEncodeCSV(t *testing.T) {
	words := []domain.Word{{ID: "w1", Text: "cat"}, {ID: "w2", Text: "coat, rack"}}
	assert.Equal(t, "word\ncat\n\"coat, rack\"", string(EncodeCSV(words)))
	assert.Equal(t, "word", string(EncodeCSV(nil)))
}

func TestCSVRoundTrip(t *testing.T) {
	words := []domain.Word{
		{ID: "w1", Text: "coat, rack"},
		{ID: "w2", Text: `the "best" word`},
		{ID: "w3", Text: "plain"},
	}

	got, err := DecodeCSV(EncodeCSV(words))
	require.NoError(t, err)
	assert.Equal(t, []string{"coat, rack", `the "best" word`, "plain"}, got)
}

func TestDecodeCSV(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []string
		wantErr bool
	}{
		{
			name: "header skipped",
			in:   "Word\ncat\ndog\n",
			want: []string{"cat", "dog"},
		},
		{
			name: "no header keeps first line",
			in:   "cat\ndog",
			want: []string{"cat", "dog"},
		},
		{
			name: "takes first column and trims",
			in:   "word,notes\n  cat ,animal\r\ndog,pet\n\n",
			want: []string{"cat", "dog"},
		},
		{
			name: "byte order mark before header",
			in:   "\ufeffword\nfish",
			want: []string{"fish"},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name:    "unterminated quote",
			in:      "word\n\"cat\ndog",
			wantErr: true,
		},
		{
			name:    "bare quote",
			in:      "word\nca\"t",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeCSV([]byte(tt.in))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeJSON(t *testing.T) {
	words := []domain.Word{{ID: "w1", Text: "cat", UsageCount: 2, LastUsedAt: 42}}

	data, err := EncodeJSON(words)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"library\": [")

	var doc map[string][]map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc["library"], 1)
	entry := doc["library"][0]
	assert.Equal(t, "w1", entry["id"])
	assert.Equal(t, "cat", entry["text"])
	assert.EqualValues(t, 2, entry["usageCount"])
	assert.EqualValues(t, 42, entry["lastUsedAt"])

	empty, err := EncodeJSON(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"library": []}`, string(empty))
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []string
		wantErr bool
	}{
		{
			name: "library of objects",
			in:   `{"library":[{"id":"w1","text":"cat"},{"text":"dog"}]}`,
			want: []string{"cat", "dog"},
		},
		{
			name: "library of strings",
			in:   `{"library":["cat","dog"]}`,
			want: []string{"cat", "dog"},
		},
		{
			name: "bare mixed array",
			in:   `["cat",{"text":"dog"},{"id":"x"},7,null]`,
			want: []string{"cat", "dog"},
		},
		{
			name:    "malformed",
			in:      `{"library":[`,
			wantErr: true,
		},
		{
			name:    "object without library",
			in:      `{"words":["cat"]}`,
			wantErr: true,
		},
		{
			name:    "scalar",
			in:      `"cat"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeJSON([]byte(tt.in))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	words := []domain.Word{{ID: "w1", Text: "coat, rack"}, {ID: "w2", Text: "plum"}}

	data, err := EncodeJSON(words)
	require.NoError(t, err)
	got, err := DecodeJSON(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"coat, rack", "plum"}, got)
}

func TestDecode_DispatchesByExtension(t *testing.T) {
	got, err := Decode("Words.JSON", []byte(`["cat"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"cat"}, got)

	got, err = Decode("list.csv", []byte("word\ndog"))
	require.NoError(t, err)
	assert.Equal(t, []string{"dog"}, got)

	_, err = Decode("list.txt", []byte("cat"))
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestExport(t *testing.T) {
	words := []domain.Word{{ID: "w1", Text: "cat"}}

	p, err := Export(FormatJSON, words)
	require.NoError(t, err)
	assert.Equal(t, "library.json", p.Filename)
	assert.Equal(t, "application/json", p.MIMEType)

	p, err = Export(FormatCSV, words)
	require.NoError(t, err)
	assert.Equal(t, "library.csv", p.Filename)
	assert.Equal(t, "text/csv", p.MIMEType)
	assert.Equal(t, "word\ncat", string(p.Data))

	_, err = Export(Format("xml"), words)
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" CSV ")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("xlsx")
	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}
