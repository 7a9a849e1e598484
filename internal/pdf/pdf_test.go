package pdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rsc.io/pdf"
)

func TestExtractText_Missing(t *testing.T) {
	_, err := ExtractText(filepath.Join(t.TempDir(), "nope.pdf"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestExtractText_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.pdf")
	require.NoError(t, os.WriteFile(path, []byte("just some plain text, no header"), 0o644))

	text, err := ExtractText(path)
	require.Error(t, err)
	assert.Empty(t, text)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "a b c", Sanitize("  a\r\n\tb   c \n"))
	assert.Equal(t, "", Sanitize("\n\n"))
}

func TestExtractText_KeepsWordBoundaries(t *testing.T) {
	text, err := ExtractText(filepath.Join("testdata", "hello.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "Hello PDF world\nsecond line\n", text)
	assert.Equal(t, []string{"Hello", "PDF", "world", "second", "line"}, strings.Fields(text))
}

func TestSeparator(t *testing.T) {
	h := pdf.Text{FontSize: 12, X: 72, Y: 720, W: 6, S: "a"}

	tests := []struct {
		name string
		next pdf.Text
		want string
	}{
		{name: "adjacent glyph", next: pdf.Text{FontSize: 12, X: 78, Y: 720, W: 6, S: "b"}, want: ""},
		{name: "word gap", next: pdf.Text{FontSize: 12, X: 84, Y: 720, W: 6, S: "b"}, want: " "},
		{name: "new baseline", next: pdf.Text{FontSize: 12, X: 72, Y: 706, W: 6, S: "b"}, want: "\n"},
		{name: "jump back on same baseline", next: pdf.Text{FontSize: 12, X: 10, Y: 720, W: 6, S: "b"}, want: " "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, separator(h, tt.next))
		})
	}
}
