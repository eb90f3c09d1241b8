package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/herohde/morlock-mb/pkg/board"
	"github.com/herohde/morlock-mb/pkg/board/fen"
	"github.com/herohde/morlock-mb/pkg/eval"
)

// Book represents an opening book.
type Book interface {
	// Find returns a list -- potentially empty -- of moves given a position. Once an empty
	// list is returned, the book should not be consulted again for the game.
	Find(ctx context.Context, fen string) ([]board.Move, error)
}

// Line represents an opening line: e2e4 d7d5.
type Line []string

func (l Line) String() string {
	return strings.Join(l, " ")
}

// NoBook is an empty opening book.
var NoBook Book = &book{moves: map[string][]board.Move{}}

// NewBook creates an opening book from a set of opening lines.
func NewBook(lines []Line) (Book, error) {
	m := map[string]map[board.Move]bool{}

	for _, line := range lines {
		pos, err := fen.ParsePosition(fen.Initial)
		if err != nil {
			return nil, err
		}

		for _, str := range line {
			next, err := board.ParseMove(str)
			if err != nil {
				return nil, fmt.Errorf("invalid line '%v': %v", line, err)
			}

			found := false
			for _, candidate := range board.GenerateMoves(pos) {
				if !candidate.Equals(next) {
					continue
				}
				if !board.IsLegal(pos, candidate) {
					continue
				}
				found = true

				key := fenKey(fen.Encode(pos))
				if m[key] == nil {
					m[key] = map[board.Move]bool{}
				}
				m[key][candidate] = true

				pos.Make(candidate)
				break
			}

			if !found {
				return nil, fmt.Errorf("invalid line '%v': move %v not found", line, next)
			}
		}
	}

	dedup := map[string][]board.Move{}
	for k, v := range m {
		var list []board.Move
		for move := range v {
			list = append(list, move)
		}
		sort.SliceStable(list, func(i, j int) bool {
			if g1, g2 := eval.NominalValueGain(list[i]), eval.NominalValueGain(list[j]); g1 != g2 {
				return g1 > g2
			}
			return list[i].String() < list[j].String() // deterministic tiebreak
		})
		dedup[k] = list
	}
	return &book{moves: dedup}, nil
}

type book struct {
	moves map[string][]board.Move // cropped fen -> []move
}

func (b *book) Find(ctx context.Context, fen string) ([]board.Move, error) {
	return b.moves[fenKey(fen)], nil
}

func fenKey(pos string) string {
	parts := strings.Split(pos, " ")
	return strings.Join(parts[:4], " ")
}
