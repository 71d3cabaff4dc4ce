package fieldmap_test

import (
	"testing"

	"github.com/cg-tech-git/pmo-v2/internal/fieldmap"

	"github.com/stretchr/testify/assert"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want fieldmap.Name
	}{
		{
			name: "three parts",
			in:   "John Michael Smith",
			want: fieldmap.Name{First: "John", Second: "Michael", Last: "Smith", Full: "John Michael Smith"},
		},
		{
			name: "single token",
			in:   "Cher",
			want: fieldmap.Name{First: "Cher", Second: fieldmap.Fallback, Last: fieldmap.Fallback, Full: "Cher"},
		},
		{
			name: "two parts",
			in:   "Jane Doe",
			want: fieldmap.Name{First: "Jane", Second: fieldmap.Fallback, Last: "Doe", Full: "Jane Doe"},
		},
		{
			name: "middle tokens joined",
			in:   "Mohammed  bin Rashid Al Maktoum",
			want: fieldmap.Name{First: "Mohammed", Second: "bin Rashid Al", Last: "Maktoum", Full: "Mohammed  bin Rashid Al Maktoum"},
		},
		{
			name: "blank",
			in:   "   ",
			want: fieldmap.Name{First: fieldmap.Fallback, Second: fieldmap.Fallback, Last: fieldmap.Fallback, Full: fieldmap.Fallback},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fieldmap.ParseName(tt.in))
		})
	}
}

func TestTransliterate(t *testing.T) {
	t.Run("fallback inputs", func(t *testing.T) {
		assert.Equal(t, fieldmap.Fallback, fieldmap.Transliterate(""))
		assert.Equal(t, fieldmap.Fallback, fieldmap.Transliterate(fieldmap.Fallback))
	})

	t.Run("digraph before letter", func(t *testing.T) {
		// s+h would be "سه"
		assert.Equal(t, "ش", fieldmap.Transliterate("sh"))
		assert.Equal(t, "آ", fieldmap.Transliterate("AA"))
	})

	t.Run("greedy left to right", func(t *testing.T) {
		// "aay": "aa" consumes first, leaving "y"
		assert.Equal(t, "آي", fieldmap.Transliterate("aay"))
	})

	t.Run("spaces preserved word by word", func(t *testing.T) {
		got := fieldmap.Transliterate("Sara  Khan")
		assert.Equal(t, fieldmap.Transliterate("sara")+"  "+fieldmap.Transliterate("khan"), got)
		assert.Equal(t, "سارا  خان", got)
	})

	t.Run("unmapped characters pass through", func(t *testing.T) {
		assert.Equal(t, "ا-1.", fieldmap.Transliterate("a-1."))
	})

	t.Run("pure", func(t *testing.T) {
		assert.Equal(t, fieldmap.Transliterate("Omar Farouk"), fieldmap.Transliterate("Omar Farouk"))
	})
}
