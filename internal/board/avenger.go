package board

import (
	"math/rand"

	"github.com/callegarimattia/battleship/internal/geometry"
)

// FireAvenger spends the currently available avenger on a shot at (x,y).
// It requires AvengerAvailable; the avenger is consumed regardless of the
// chosen type's hit/miss/redundancy (SPEC_FULL.md §9's open question is
// resolved in favour of the reference behaviour: always consume).
//
// Effects, in order:
//  1. AvengerAvailable is cleared.
//  2. The base shot at (x,y) is resolved exactly as Fire would (MoveCount
//     increments only if the cell was previously undiscovered).
//  3. The avenger-specific side effects run; none of them increment
//     MoveCount.
func (b *Board) FireAvenger(x, y int, avenger AvengerType, rng *rand.Rand) (Cell, []AvengerResult, error) {
	if !b.inBounds(x, y) {
		return Unknown, nil, ErrOutOfBounds
	}

	if !b.AvengerAvailable {
		return Unknown, nil, ErrAvengerUnavailable
	}

	b.AvengerAvailable = false

	var base Cell
	if b.discovered[y][x] {
		base = b.revealedCell(x, y)
	} else {
		base = b.discoverCell(x, y, true)
	}

	switch avenger {
	case Thor:
		return base, b.thor(rng), nil
	case IronMan:
		return base, b.ironMan(rng), nil
	case Hulk:
		return base, b.hulk(x, y), nil
	default:
		return base, nil, ErrUnknownAvengerType
	}
}

// thor reveals up to 10 currently undiscovered cells, sampled uniformly
// without replacement; none count toward MoveCount.
func (b *Board) thor(rng *rand.Rand) []AvengerResult {
	var pool []geometry.Coordinate
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if !b.discovered[y][x] {
				pool = append(pool, geometry.Coordinate{X: x, Y: y})
			}
		}
	}

	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	n := min(10, len(pool))
	results := make([]AvengerResult, 0, n)
	for i := 0; i < n; i++ {
		c := pool[i]
		cell := b.discoverCell(c.X, c.Y, false)
		results = append(results, AvengerResult{X: c.X, Y: c.Y, Hit: cell == Ship})
	}

	return results
}

// ironMan hints at one undiscovered cell of the smallest non-destroyed
// ship (ties broken by placement order), without marking it discovered.
func (b *Board) ironMan(rng *rand.Rand) []AvengerResult {
	target := -1
	for idx, ship := range b.Ships {
		if b.isShipFullyDiscovered(idx) {
			continue
		}
		if target == -1 || ship.Type.Size() < b.Ships[target].Type.Size() {
			target = idx
		}
	}

	if target == -1 {
		return nil
	}

	var undiscovered []geometry.Coordinate
	for _, c := range b.Ships[target].Cells() {
		if !b.discovered[c.Y][c.X] {
			undiscovered = append(undiscovered, c)
		}
	}

	if len(undiscovered) == 0 {
		return nil
	}

	c := undiscovered[rng.Intn(len(undiscovered))]
	return []AvengerResult{{X: c.X, Y: c.Y, Hit: true}}
}

// hulk reveals every cell of the battleship occupying (x,y), if any.
func (b *Board) hulk(x, y int) []AvengerResult {
	idx := b.shipIndex[y][x]
	if idx == -1 {
		return nil
	}

	cells := b.Ships[idx].Cells()
	results := make([]AvengerResult, 0, len(cells))
	for _, c := range cells {
		if !b.discovered[c.Y][c.X] {
			b.discoverCell(c.X, c.Y, false)
		}
		results = append(results, AvengerResult{X: c.X, Y: c.Y, Hit: true})
	}

	return results
}
