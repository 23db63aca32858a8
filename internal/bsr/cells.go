package bsr

import "strings"

// Cell is a six-dot braille cell; bit n-1 is set when dot n is raised.
type Cell uint8

// CellSpace is the empty cell used between measures and words.
const CellSpace Cell = 0

// Dots builds a cell from dot numbers in the range 1–6.
func Dots(dots ...int) Cell {
	var c Cell
	for _, d := range dots {
		if d >= 1 && d <= 6 {
			c |= 1 << (d - 1)
		}
	}
	return c
}

// Rune returns the Unicode braille pattern for the cell.
func (c Cell) Rune() rune {
	return 0x2800 + rune(c&0x3f)
}

// Cells is a sequence of braille cells.
type Cells []Cell

// String renders the cells as Unicode braille patterns.
func (cs Cells) String() string {
	var sb strings.Builder
	for _, c := range cs {
		sb.WriteRune(c.Rune())
	}
	return sb.String()
}

// Concat joins several cell sequences.
func Concat(parts ...Cells) Cells {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make(Cells, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

var (
	cellNumberSign = Dots(3, 4, 5, 6)
	cellWordSign   = Dots(3, 4, 5)
	cellMusicDot   = Dots(3)
	cellEquals     = Dots(2, 3, 5, 6)
	cellPlus       = Dots(2, 3, 5)
)

var letterCells = map[rune]Cell{
	'a': Dots(1), 'b': Dots(1, 2), 'c': Dots(1, 4), 'd': Dots(1, 4, 5), 'e': Dots(1, 5),
	'f': Dots(1, 2, 4), 'g': Dots(1, 2, 4, 5), 'h': Dots(1, 2, 5), 'i': Dots(2, 4), 'j': Dots(2, 4, 5),
	'k': Dots(1, 3), 'l': Dots(1, 2, 3), 'm': Dots(1, 3, 4), 'n': Dots(1, 3, 4, 5), 'o': Dots(1, 3, 5),
	'p': Dots(1, 2, 3, 4), 'q': Dots(1, 2, 3, 4, 5), 'r': Dots(1, 2, 3, 5), 's': Dots(2, 3, 4), 't': Dots(2, 3, 4, 5),
	'u': Dots(1, 3, 6), 'v': Dots(1, 2, 3, 6), 'w': Dots(2, 4, 5, 6), 'x': Dots(1, 3, 4, 6), 'y': Dots(1, 3, 4, 5, 6),
	'z': Dots(1, 3, 5, 6),
	'.': Dots(2, 5, 6), ',': Dots(2), ';': Dots(2, 3), ':': Dots(2, 5), '!': Dots(2, 3, 5),
	'?': Dots(2, 3, 6), '\'': Dots(3), '-': Dots(3, 6), '(': Dots(2, 3, 5, 6), ')': Dots(2, 3, 5, 6),
}

var upperDigits = [10]Cell{
	Dots(2, 4, 5), Dots(1), Dots(1, 2), Dots(1, 4), Dots(1, 4, 5),
	Dots(1, 5), Dots(1, 2, 4), Dots(1, 2, 4, 5), Dots(1, 2, 5), Dots(2, 4),
}

var lowerDigits = [10]Cell{
	Dots(3, 5, 6), Dots(2), Dots(2, 3), Dots(2, 5), Dots(2, 5, 6),
	Dots(2, 6), Dots(2, 3, 5), Dots(2, 3, 5, 6), Dots(2, 3, 6), Dots(3, 5),
}

func digitsOf(n int) []int {
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return []int{0}
	}
	var ds []int
	for ; n > 0; n /= 10 {
		ds = append([]int{n % 10}, ds...)
	}
	return ds
}

// UpperNumber renders n with upper-cell digits, without the number sign.
func UpperNumber(n int) Cells {
	var cs Cells
	for _, d := range digitsOf(n) {
		cs = append(cs, upperDigits[d])
	}
	return cs
}

// LowerNumber renders n with lower-cell digits, as used for time signature denominators.
func LowerNumber(n int) Cells {
	var cs Cells
	for _, d := range digitsOf(n) {
		cs = append(cs, lowerDigits[d])
	}
	return cs
}

// Number renders n as the number sign followed by upper digits.
func Number(n int) Cells {
	return Concat(Cells{cellNumberSign}, UpperNumber(n))
}

// Text renders literary text: letters, basic punctuation, and digit runs
// prefixed by the number sign. Characters without a braille equivalent
// are dropped.
func Text(s string) Cells {
	var cs Cells
	inNumber := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= '0' && r <= '9':
			if !inNumber {
				cs = append(cs, cellNumberSign)
				inNumber = true
			}
			cs = append(cs, upperDigits[r-'0'])
			continue
		case r == ' ' || r == '\t' || r == '\n':
			cs = append(cs, CellSpace)
		default:
			if c, ok := letterCells[r]; ok {
				cs = append(cs, c)
			}
		}
		inNumber = false
	}
	return cs
}
