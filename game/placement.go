package game

import "github.com/sirupsen/logrus"

// Source supplies uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// placeMines picks numMines distinct indexes out of [0, numCells)
func placeMines(numCells, numMines int, rnd Source) []int {
	if float64(numMines) > shuffleDensity*float64(numCells) {
		return shuffleMines(numCells, numMines, rnd)
	}
	return sampleMines(numCells, numMines, rnd)
}

// sampleMines draws indexes over the whole flattened grid, retrying on
// collisions
func sampleMines(numCells, numMines int, rnd Source) []int {
	isMine := make([]bool, numCells)
	mines := make([]int, 0, numMines)
	retries := 0

	for len(mines) < numMines {
		idx := rnd.Intn(numCells)
		if isMine[idx] {
			retries++
			continue
		}
		isMine[idx] = true
		mines = append(mines, idx)
	}

	Log.WithFields(logrus.Fields{
		"cells":   numCells,
		"mines":   numMines,
		"retries": retries,
	}).Debug("sampled mines")

	return mines
}

// shuffleMines runs the first numMines steps of a Fisher-Yates shuffle over
// the flattened grid and keeps the shuffled prefix
func shuffleMines(numCells, numMines int, rnd Source) []int {
	cellIndexes := make([]int, numCells)
	for i := range cellIndexes {
		cellIndexes[i] = i
	}

	for i := 0; i < numMines; i++ {
		j := i + rnd.Intn(numCells-i)
		cellIndexes[i], cellIndexes[j] = cellIndexes[j], cellIndexes[i]
	}

	Log.WithFields(logrus.Fields{
		"cells": numCells,
		"mines": numMines,
	}).Debug("shuffled mines")

	return cellIndexes[:numMines]
}
