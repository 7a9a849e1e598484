package pdf

import (
	"fmt"
	"math"
	"os"
	"strings"

	"rsc.io/pdf"
)

// доля кегля, начиная с которой зазор между глифами считается пробелом
const wordGap = 0.15

// ExtractText достаёт текст из PDF постранично
func ExtractText(path string) (text string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return "", err
	}

	// rsc.io/pdf паникует на битых файлах
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("malformed pdf %s: %v", path, r)
		}
	}()

	r, err := pdf.NewReader(f, fi.Size())
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		var prev *pdf.Text
		for _, t := range p.Content().Text {
			if prev != nil {
				sb.WriteString(separator(*prev, t))
			}
			// Удаляем нулевые байты
			sb.WriteString(strings.ReplaceAll(t.S, "\x00", ""))
			prev = &t
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// separator восстанавливает пробелы и переводы строк: rsc.io/pdf не отдаёт глифы пробела
func separator(prev, t pdf.Text) string {
	tol := math.Max(prev.FontSize, t.FontSize)
	if math.Abs(t.Y-prev.Y) > tol/2 {
		return "\n"
	}
	if t.X > prev.X+prev.W+tol*wordGap || t.X < prev.X {
		return " "
	}
	return ""
}

// Sanitize схлопывает все пробельные последовательности в один пробел
func Sanitize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
