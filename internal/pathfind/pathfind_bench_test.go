package pathfind

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gspu/vcmi/internal/model"
)

// benchGrid is a size×size grass map with a vertical wall through the middle
// and a single gap near the bottom, so routes have to detour.
func benchGrid(b *testing.B, size int) *Grid {
	rows := make([]string, size)
	for y := range size {
		var sb strings.Builder
		for x := range size {
			switch {
			case x == size/2 && y != size-2:
				sb.WriteByte('#')
			case y == size/3:
				sb.WriteByte('=')
			default:
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return mustParse(b, rows...)
}

// BenchmarkFindPath measures one A* search across the wall.
func BenchmarkFindPath(b *testing.B) {
	for _, size := range []int{16, 64} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			g := benchGrid(b, size)
			start := model.NewPosition(0, 0, 0)
			target := model.NewPosition(int32(size-1), 0, 0)

			b.ReportAllocs()

			b.ResetTimer()
			for range b.N {
				if _, _, ok := FindPath(g, start, target, 1e9, DefaultMaxIterations); !ok {
					b.Fatal("no path")
				}
			}
		})
	}
}

// BenchmarkPathsTo measures the provider query the AI runs per town and cycle.
func BenchmarkPathsTo(b *testing.B) {
	const size = 32
	g := benchGrid(b, size)
	heroes := make([]*model.Hero, 0, 8)
	for i := range 8 {
		heroes = append(heroes, newHero(model.HeroID(i+1), int32(i), int32(size-1-i), 3000))
	}
	p := NewProvider(g, heroState{heroes: heroes}, DefaultMaxTurns, DefaultMaxIterations)
	town := model.NewPosition(size-3, 2, 0)

	b.ReportAllocs()

	b.ResetTimer()
	for range b.N {
		_ = p.PathsTo(town)
	}
}
