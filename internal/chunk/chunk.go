package chunk

import (
	"strings"

	"github.com/katakuxiko/infinitegpt/internal/model"
)

// DefaultWords — размер чанка в словах по умолчанию
const DefaultWords = 1500

// ByWords режет текст на чанки по size слов подряд, без перекрытия.
// Последний чанк содержит остаток. Пустой текст даёт nil.
func ByWords(text string, size int) []model.Chunk {
	words := strings.Fields(text)
	if size <= 0 {
		size = DefaultWords
	}
	var out []model.Chunk
	for i := 0; i < len(words); i += size {
		end := min(i+size, len(words))
		out = append(out, model.Chunk{
			Index: len(out),
			Text:  strings.Join(words[i:end], " "),
		})
	}
	return out
}
