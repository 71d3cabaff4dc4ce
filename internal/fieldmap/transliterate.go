package fieldmap

import "strings"

// digraphs are tried before single letters.
var digraphs = map[string]string{
	"th": "ث",
	"sh": "ش",
	"ch": "تش",
	"kh": "خ",
	"dh": "ذ",
	"gh": "غ",
	"aa": "آ",
	"ee": "ي",
	"oo": "و",
	"ou": "و",
	"ai": "اي",
	"ay": "اي",
	"ph": "ف",
}

var letters = map[rune]string{
	'a': "ا", 'e': "ي", 'i': "ي", 'o': "و", 'u': "و",
	'b': "ب", 'c': "ك", 'd': "د", 'f': "ف", 'g': "ج",
	'h': "ه", 'j': "ج", 'k': "ك", 'l': "ل", 'm': "م",
	'n': "ن", 'p': "ب", 'q': "ق", 'r': "ر", 's': "س",
	't': "ت", 'v': "ف", 'w': "و", 'x': "كس", 'y': "ي",
	'z': "ز",
}

// Transliterate renders a Latin-script name in Arabic script with a greedy
// digraph-then-letter substitution. It is a phonetic approximation only and
// makes no claim to follow any transliteration standard. Characters without a
// mapping (spaces, digits, punctuation) pass through unchanged.
func Transliterate(latin string) (out string) {
	if strings.TrimSpace(latin) == "" || latin == Fallback {
		return Fallback
	}
	defer func() {
		if recover() != nil {
			out = Fallback
		}
	}()

	runes := []rune(strings.ToLower(latin))
	var b strings.Builder
	b.Grow(len(latin) * 2)

	for i := 0; i < len(runes); {
		if i+1 < len(runes) {
			if mapped, ok := digraphs[string(runes[i:i+2])]; ok {
				b.WriteString(mapped)
				i += 2
				continue
			}
		}
		if mapped, ok := letters[runes[i]]; ok {
			b.WriteString(mapped)
		} else {
			b.WriteRune(runes[i])
		}
		i++
	}
	return b.String()
}
