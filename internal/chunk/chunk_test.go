package chunk

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(parts, " ")
}

func TestByWords_Empty(t *testing.T) {
	assert.Empty(t, ByWords("", 10))
	assert.Empty(t, ByWords(" \n\t  \r\n", 10))
}

func TestByWords_Sizes(t *testing.T) {
	tests := []struct {
		name  string
		words int
		size  int
		want  []int
	}{
		{name: "single short chunk", words: 10, size: 1500, want: []int{10}},
		{name: "exact multiple", words: 3000, size: 1500, want: []int{1500, 1500}},
		{name: "remainder of one", words: 1501, size: 1500, want: []int{1500, 1}},
		{name: "size one", words: 3, size: 1, want: []int{1, 1, 1}},
		{name: "uneven", words: 7, size: 3, want: []int{3, 3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := ByWords(words(tt.words), tt.size)
			require.Len(t, chunks, len(tt.want))
			for i, ch := range chunks {
				assert.Equal(t, i, ch.Index)
				assert.Len(t, strings.Fields(ch.Text), tt.want[i], "chunk %d", i)
			}
		})
	}
}

func TestByWords_ReconstructsWordSequence(t *testing.T) {
	text := "  The quick\tbrown fox\n\njumps over   the lazy dog.\r\nIt ends mid-sentence here "
	for size := 1; size <= 12; size++ {
		chunks := ByWords(text, size)

		var got []string
		for i, ch := range chunks {
			n := len(strings.Fields(ch.Text))
			if i < len(chunks)-1 {
				assert.Equal(t, size, n)
			} else {
				assert.GreaterOrEqual(t, n, 1)
				assert.LessOrEqual(t, n, size)
			}
			got = append(got, strings.Fields(ch.Text)...)
		}
		assert.Equal(t, strings.Fields(text), got, "size %d", size)
	}
}

func TestByWords_NonPositiveSizeUsesDefault(t *testing.T) {
	chunks := ByWords(words(DefaultWords+5), 0)
	require.Len(t, chunks, 2)
	assert.Len(t, strings.Fields(chunks[1].Text), 5)

	assert.Len(t, ByWords(words(3), -1), 1)
}

func TestByWords_JoinsWithSingleSpace(t *testing.T) {
	chunks := ByWords("a\n\nb\t c", 2)
	require.Len(t, chunks, 2)
	assert.Equal(t, "a b", chunks[0].Text)
	assert.Equal(t, "c", chunks[1].Text)
}
