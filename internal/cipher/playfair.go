package cipher

import (
	"fmt"
	"strings"
)

const gridSize = 5

type cell struct {
	row, col int
}

// PlayfairCipher encrypts digraphs using a 5x5 key square. I and J share a
// cell.
type PlayfairCipher struct {
	grid   [gridSize * gridSize]rune
	lookup map[rune]cell
}

// NewPlayfairCipher builds the key square from the letters of key followed by
// the rest of the alphabet. Any key is acceptable.
func NewPlayfairCipher(key string) *PlayfairCipher {
	p := &PlayfairCipher{lookup: make(map[rune]cell, gridSize*gridSize)}
	seed := append(keyLetters(key), []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")...)
	n := 0
	for _, r := range seed {
		if r == 'J' {
			r = 'I'
		}
		if _, seen := p.lookup[r]; seen {
			continue
		}
		p.grid[n] = r
		p.lookup[r] = cell{row: n / gridSize, col: n % gridSize}
		n++
	}
	return p
}

// Grid renders the key square row by row.
func (p *PlayfairCipher) Grid() []string {
	rows := make([]string, gridSize)
	for i := range rows {
		rows[i] = string(p.grid[i*gridSize : (i+1)*gridSize])
	}
	return rows
}

func (p *PlayfairCipher) Apply(text string, mode Mode) (string, error) {
	runes, err := checkText(text)
	if err != nil {
		return "", err
	}
	if mode == Encrypt {
		runes = prepareDigraphs(runes)
	} else if len(runes)%2 != 0 {
		return "", fmt.Errorf("%w: playfair ciphertext has odd length %d", ErrInvalidInput, len(runes))
	}

	step := 1
	if mode == Decrypt {
		step = gridSize - 1
	}
	var b strings.Builder
	b.Grow(len(runes))
	for i := 0; i+1 < len(runes); i += 2 {
		first, second := p.lookup[foldJ(runes[i])], p.lookup[foldJ(runes[i+1])]
		switch {
		case first.row == second.row:
			first.col = (first.col + step) % gridSize
			second.col = (second.col + step) % gridSize
		case first.col == second.col:
			first.row = (first.row + step) % gridSize
			second.row = (second.row + step) % gridSize
		default:
			first.col, second.col = second.col, first.col
		}
		b.WriteRune(p.at(first))
		b.WriteRune(p.at(second))
	}
	return b.String(), nil
}

func (p *PlayfairCipher) PreservesLength() bool { return false }

func (p *PlayfairCipher) at(c cell) rune {
	return p.grid[c.row*gridSize+c.col]
}

// prepareDigraphs maps J to I, splits doubled letters with X (Q after X) and
// pads odd-length text with Z (X after Z).
func prepareDigraphs(in []rune) []rune {
	out := make([]rune, 0, len(in)+len(in)/2+1)
	for i := 0; i < len(in); {
		a := foldJ(in[i])
		if i+1 == len(in) {
			out = append(out, a, padding(a))
			break
		}
		b := foldJ(in[i+1])
		if a == b {
			out = append(out, a, filler(a))
			i++
			continue
		}
		out = append(out, a, b)
		i += 2
	}
	return out
}

func foldJ(r rune) rune {
	if r == 'J' {
		return 'I'
	}
	return r
}

func filler(r rune) rune {
	if r == 'X' {
		return 'Q'
	}
	return 'X'
}

func padding(r rune) rune {
	if r == 'Z' {
		return 'X'
	}
	return 'Z'
}
