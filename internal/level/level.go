// Package level holds the built-in level catalogue and the ASCII grid
// format levels are authored in.
package level

// Empty marks a grid cell with no block. Spaces are treated the same way.
const Empty byte = '.'

// Level is one playable layout. The grid is an ASCII map, one byte per
// block slot:
//
//	'b','g','o','p','r' = colored blocks (blue/green/orange/purple/red)
//	'X' = unbreakable block
//	'*' = bomb block
//	'E' = expand paddle   'S' = shrink paddle
//	'T' = sticky paddle   'V' = reverse controls
//	'A' = ammo            'M' = multiball
//	'R' = roamer
//	'1'-'9' = counter block requiring N hits
//	'.' or ' ' = empty
//
// Rows may be ragged; missing trailing cells read as empty.
type Level struct {
	ID        string
	Title     string
	TimeBonus int // bonus countdown in seconds
	Grid      []string
}

// Rows returns the number of grid rows.
func (l *Level) Rows() int {
	return len(l.Grid)
}

// Cols returns the widest row of the grid.
func (l *Level) Cols() int {
	max := 0
	for _, row := range l.Grid {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// At returns the symbol at the given cell, or Empty when the cell falls
// outside the grid or holds a space.
func (l *Level) At(row, col int) byte {
	if row < 0 || row >= len(l.Grid) {
		return Empty
	}
	line := l.Grid[row]
	if col < 0 || col >= len(line) {
		return Empty
	}
	if line[col] == ' ' {
		return Empty
	}
	return line[col]
}

// Builtin returns the full level catalogue in play order.
func Builtin() []*Level {
	return []*Level{
		{
			ID:        "ranks",
			Title:     "Ranks",
			TimeBonus: 60,
			Grid: []string{
				"rrrrrrrrrrrrrrrr",
				"oooooooooooooooo",
				"gggggggggggggggg",
				"bbbbbbbbbbbbbbbb",
			},
		},
		{
			ID:        "armory",
			Title:     "Armory",
			TimeBonus: 75,
			Grid: []string{
				"bbbbbbAbbAbbbbbb",
				"gggggggggggggggg",
				"ooo*oooooooo*ooo",
				"bbbbbbbEbSbbbbbb",
			},
		},
		{
			ID:        "bastion",
			Title:     "Bastion",
			TimeBonus: 90,
			Grid: []string{
				"XggggggggggggggX",
				"g....rrrrrr....g",
				"g.oo.r3MM3r.oo.g",
				"g....rrrrrr....g",
				"XggggggggggggggX",
			},
		},
		{
			ID:        "lattice",
			Title:     "Lattice",
			TimeBonus: 90,
			Grid: []string{
				"b.g.o.p.r.p.o.g.",
				".g.o.p.r.p.o.g.b",
				"b.g.o.T.V.o.g.b.",
				".g.o.p.r.p.o.g.b",
				"b.g.o.p.r.p.o.g.",
			},
		},
		{
			ID:        "keep",
			Title:     "Keep",
			TimeBonus: 120,
			Grid: []string{
				"X..X...XX...X..X",
				"XXXX...XX...XXXX",
				"................",
				"rrrrrr*RR*rrrrrr",
				"oooooooooooooooo",
				"gggggg2AA2gggggg",
			},
		},
		{
			ID:        "gauntlet",
			Title:     "Gauntlet",
			TimeBonus: 150,
			Grid: []string{
				"3333333333333333",
				"r*r*r*r*r*r*r*r*",
				"XppppppMMppppppX",
				"oooAooooooooAooo",
				"gggggVggggVggggg",
				"bbbbbbbbbbbbbbbb",
			},
		},
	}
}

// ByID finds a level by its identifier.
func ByID(id string) (*Level, bool) {
	for _, l := range Builtin() {
		if l.ID == id {
			return l, true
		}
	}
	return nil, false
}

// Get returns a level by index, wrapping when the index runs past the
// catalogue.
func Get(index int) *Level {
	levels := Builtin()
	return levels[index%len(levels)]
}

// Count returns the catalogue size.
func Count() int {
	return len(Builtin())
}
