package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Nhà Giả Kim", "nha-gia-kim"},
		{"Đắc Nhân Tâm", "dac-nhan-tam"},
		{"Tuổi Trẻ Đáng Giá Bao Nhiêu?", "tuoi-tre-dang-gia-bao-nhieu"},
		{"Sách  mới   2025!!!", "sach-moi-2025"},
		{"  khuyến mãi tháng 5  ", "khuyen-mai-thang-5"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.input), "input: %q", tc.input)
	}
}
