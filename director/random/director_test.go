package random

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/gosweep/game"
)

func TestNextBeforeInit(t *testing.T) {
	_, ok := New(1).Next()
	assert.False(t, ok)
}

func TestNextYieldsEveryCellOnce(t *testing.T) {
	board, err := game.NewWithMines(3, []game.Coord{{Row: 0, Col: 0}})
	require.NoError(t, err)

	director := New(42)
	director.Init(board)

	seen := make(map[game.Coord]bool)
	for i := 0; i < 9; i++ {
		coord, ok := director.Next()
		require.True(t, ok)
		assert.False(t, seen[coord], "%v yielded twice", coord)
		seen[coord] = true
	}
	assert.Len(t, seen, 9)

	_, ok := director.Next()
	assert.False(t, ok)
}

func TestNextSkipsRevealedCells(t *testing.T) {
	board, err := game.NewWithMines(4, []game.Coord{{Row: 0, Col: 0}})
	require.NoError(t, err)

	director := New(7)
	director.Init(board)

	_, err = board.Dig(3, 3)
	require.NoError(t, err)

	coord, ok := director.Next()
	require.True(t, ok)
	assert.Equal(t, game.Coord{Row: 0, Col: 0}, coord)

	_, ok = director.Next()
	assert.False(t, ok)
}

func TestDirectorPlaysToTheEnd(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		config := game.NewGameConfig()
		config.Size, config.NumMines, config.Seed = 8, 10, seed
		config.Director = New(seed)

		var out bytes.Buffer
		state, err := game.Run(config, strings.NewReader(""), &out)
		require.NoError(t, err)
		assert.NotEqual(t, game.Ongoing, state, "seed %d", seed)
	}
}
