package model

import "math"

// TileID identifies a tile within a grid
type TileID int

// Tile is one cell of the hidden-image cover grid
type Tile struct {
	ID                 TileID
	Row                int // 0-indexed from top
	Col                int // 0-indexed from left
	DistanceFromCenter float64
}

// TileGrid is the cover grid for one session's hidden image. Order is the
// frozen reveal permutation: the tile at Order[k] is the k-th to be revealed.
type TileGrid struct {
	SessionID  SessionID
	Size       int // odd, so the center cell is well-defined
	Generation int // matches the session generation it was built for
	Tiles      []Tile
	Order      []TileID
}

// NewTileGrid builds the tiles for an odd size x size grid with distances
// precomputed. The reveal order is assigned separately.
func NewTileGrid(sessionID SessionID, size, generation int) *TileGrid {
	center := float64(size / 2)
	tiles := make([]Tile, 0, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			tiles = append(tiles, Tile{
				ID:                 TileID(row*size + col),
				Row:                row,
				Col:                col,
				DistanceFromCenter: math.Hypot(float64(row)-center, float64(col)-center),
			})
		}
	}
	return &TileGrid{
		SessionID:  sessionID,
		Size:       size,
		Generation: generation,
		Tiles:      tiles,
	}
}

// TileCount returns the total number of tiles in the grid
func (g *TileGrid) TileCount() int {
	return g.Size * g.Size
}

// Revealed returns the ids at reveal-order positions [0, count), clamped to
// the grid bounds. The result is monotone under subset inclusion in count.
func (g *TileGrid) Revealed(count int) []TileID {
	if count < 0 {
		count = 0
	}
	if count > len(g.Order) {
		count = len(g.Order)
	}
	out := make([]TileID, count)
	copy(out, g.Order[:count])
	return out
}
