package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChop(t *testing.T) {
	type choptest struct {
		in  string
		out string
	}
	testCases := []choptest{
		{"hello", "hello"},
		{"hello\r", "hello"},
		{"hello!", "hello"},
		{"hello's", "hello"},
		{"", ""},
		{"1234", ""},
		{"ABC", "ABC"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.out, Chop(tc.in))
	}
}

func writeFile(t *testing.T, name string, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestFileSource(t *testing.T) {
	path := writeFile(t, "words.txt", "cat\ndog's\n\nbird\n")
	var words []string
	err := FileSource{Path: path}.Each(func(w string) error {
		words = append(words, w)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"cat", "dog", "bird"}, words)
}

func TestFileSourceMissing(t *testing.T) {
	err := FileSource{Path: "/nonexistent/words.txt"}.Each(func(string) error {
		t.Fatal("should not be called")
		return nil
	})
	assert.Error(t, err)
}

func TestLoadBoardFile(t *testing.T) {
	path := writeFile(t, "board.txt", "AB\ncd\n")
	b, err := LoadBoardFile(path)
	assert.NoError(t, err)
	assert.Equal(t, 2, b.Dim())
	assert.Equal(t, 'a', b.GetLetter(0, 0).Letter())
	assert.Equal(t, 'd', b.GetLetter(1, 1).Letter())
}

func TestLoadBoardFileBadRows(t *testing.T) {
	path := writeFile(t, "board.txt", "abc\nde\nfgh\n")
	_, err := LoadBoardFile(path)
	assert.Error(t, err)
}
