package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katakuxiko/infinitegpt/internal/pdf"
)

// FileStore читает входной документ и пишет результаты построчно
type FileStore struct {
	perm os.FileMode
}

// NewFileStore создаёт хранилище с правами 0644 на выходной файл
func NewFileStore() *FileStore {
	return &FileStore{perm: 0o644}
}

// Load читает документ целиком; .pdf сначала проходит извлечение текста
func (s *FileStore) Load(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		txt, err := pdf.ExtractText(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		return pdf.Sanitize(txt), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

// Save перезаписывает файл: ровно одна строка на результат, пустые тоже
func (s *FileStore) Save(path string, results []string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, s.perm)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	for _, r := range results {
		if _, err := w.WriteString(OneLine(r) + "\n"); err != nil {
			_ = f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// OneLine склеивает строки ответа через пробел, пустые строки выбрасывает
func OneLine(s string) string {
	parts := strings.FieldsFunc(s, isLineBreak)
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
