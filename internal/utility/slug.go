package utility

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var slugNormalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify chuyển tiêu đề tiếng Việt thành slug url: bỏ dấu, thường hóa,
// thay ký tự không phải chữ/số bằng dấu gạch ngang
func Slugify(input string) string {
	// đ/Đ không phải dấu tổ hợp nên norm không tách được, thay thủ công
	input = strings.ReplaceAll(input, "đ", "d")
	input = strings.ReplaceAll(input, "Đ", "D")

	ascii, _, err := transform.String(slugNormalizer, input)
	if err != nil {
		ascii = input
	}

	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(ascii) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
