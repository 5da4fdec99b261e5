package utils

import "strings"

// NormalizePlate приводит распознанный текст к виду [A-Z0-9]*:
// переводит в верхний регистр и удаляет все остальные символы
func NormalizePlate(raw string) string {
	upper := strings.ToUpper(raw)

	var b strings.Builder
	b.Grow(len(upper))
	for i := 0; i < len(upper); i++ {
		ch := upper[i]
		if (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteByte(ch)
		}
	}
	return b.String()
}
