package cipher

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/vigenere/internal/textclass"
)

// DefaultTop is the number of n-grams reported per order.
const DefaultTop = 10

// Gram is one n-gram and its occurrence count.
type Gram struct {
	Text  string
	Count int
}

func (g Gram) String() string { return g.Text + "*" + strconv.Itoa(g.Count) }

// Analysis holds the most common unigrams, bigrams and trigrams of a text.
type Analysis struct {
	Unigrams []Gram
	Bigrams  []Gram
	Trigrams []Gram
}

// Analyze counts n-grams of order 1 to 3 over the word runes of text
// (letters, numbers, underscore) and keeps the top entries of each.
//
// Counting is case-sensitive and the sliding window does not wrap around the
// end of the text. Ties keep first-seen order. top <= 0 means DefaultTop.
func Analyze(text string, top int) Analysis {
	if top <= 0 {
		top = DefaultTop
	}
	filtered := make([]rune, 0, len(text))
	for _, r := range text {
		if textclass.IsWord(r) {
			filtered = append(filtered, r)
		}
	}
	return Analysis{
		Unigrams: mostCommon(filtered, 1, top),
		Bigrams:  mostCommon(filtered, 2, top),
		Trigrams: mostCommon(filtered, 3, top),
	}
}

func mostCommon(rs []rune, n, top int) []Gram {
	if len(rs) < n {
		return nil
	}
	index := make(map[string]int)
	var grams []Gram
	for i := 0; i+n <= len(rs); i++ {
		s := string(rs[i : i+n])
		if j, ok := index[s]; ok {
			grams[j].Count++
			continue
		}
		index[s] = len(grams)
		grams = append(grams, Gram{Text: s, Count: 1})
	}
	sort.SliceStable(grams, func(a, b int) bool { return grams[a].Count > grams[b].Count })
	if len(grams) > top {
		grams = grams[:top]
	}
	return grams
}

// Line formats grams as "label: g*c, g*c, …", adding entries while the line
// stays within width cells. The first entry is always included. width <= 0
// disables the limit. An empty grams list yields "".
func Line(label string, grams []Gram, width int) string {
	if len(grams) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(label)
	sb.WriteString(grams[0].String())
	used := runewidth.StringWidth(sb.String())
	for _, g := range grams[1:] {
		next := ", " + g.String()
		w := runewidth.StringWidth(next)
		if width > 0 && used+w > width {
			break
		}
		sb.WriteString(next)
		used += w
	}
	return sb.String()
}
