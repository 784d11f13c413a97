// Package breakout implements a single-player Breakout session: a ball, a
// paddle, a level of bricks and falling power-ups, simulated in world units
// and drawn to a terminal screen.
package breakout

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Tile codes used in level files.
const (
	TileEmpty = 0
	TileSolid = 1
)

// Brick colours by tile code. Codes without an entry are white.
var (
	SolidColor = mgl32.Vec3{0.8, 0.8, 0.7}
	tileColors = map[int]mgl32.Vec3{
		2: {0.2, 0.6, 1.0}, // blue
		3: {0.0, 0.7, 0.0}, // green
		4: {0.8, 0.8, 0.4}, // sand
		5: {1.0, 0.5, 0.0}, // orange
	}
)

//go:embed levels/*.lvl
var builtinFS embed.FS

// TileMap is a parsed level file: rows of tile codes, top row first.
// Rows may differ in length.
type TileMap struct {
	Name  string
	Tiles [][]int
}

// Columns returns the length of the widest row.
func (m TileMap) Columns() int {
	cols := 0
	for _, row := range m.Tiles {
		cols = max(cols, len(row))
	}
	return cols
}

// ParseTileMap reads a whitespace-separated grid of non-negative integers.
// Blank lines and lines starting with '#' are skipped.
func ParseTileMap(name string, r io.Reader) (TileMap, error) {
	m := TileMap{Name: name}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		row := make([]int, 0, len(fields))
		for _, f := range fields {
			code, err := strconv.Atoi(f)
			if err != nil {
				return TileMap{}, fmt.Errorf("level %s: line %d: bad tile %q", name, lineNo, f)
			}
			if code < 0 {
				return TileMap{}, fmt.Errorf("level %s: line %d: negative tile %d", name, lineNo, code)
			}
			row = append(row, code)
		}
		m.Tiles = append(m.Tiles, row)
	}
	if err := sc.Err(); err != nil {
		return TileMap{}, fmt.Errorf("level %s: %w", name, err)
	}
	if len(m.Tiles) == 0 {
		return TileMap{}, fmt.Errorf("level %s: no tiles", name)
	}
	return m, nil
}

// Build lays the tile map out over a width x height area anchored at the
// origin. Every tile gets the same cell size: width split across the widest
// row, height split across the rows.
func (m TileMap) Build(width, height float32) *Level {
	l := &Level{Name: m.Name}

	cols := m.Columns()
	if cols == 0 {
		return l
	}
	unit := mgl32.Vec2{width / float32(cols), height / float32(len(m.Tiles))}

	for y, row := range m.Tiles {
		for x, code := range row {
			if code == TileEmpty {
				continue
			}
			brick := Entity{
				Position: mgl32.Vec2{unit.X() * float32(x), unit.Y() * float32(y)},
				Size:     unit,
				Color:    White,
			}
			if code == TileSolid {
				brick.Solid = true
				brick.Color = SolidColor
			} else if c, ok := tileColors[code]; ok {
				brick.Color = c
			}
			l.Bricks = append(l.Bricks, brick)
		}
	}
	return l
}

// Level is the set of bricks currently in play.
type Level struct {
	Name   string
	Bricks []Entity
}

// IsCompleted reports whether every destructible brick is destroyed.
func (l *Level) IsCompleted() bool {
	return l.Remaining() == 0
}

// Remaining counts destructible bricks still standing.
func (l *Level) Remaining() int {
	n := 0
	for i := range l.Bricks {
		if !l.Bricks[i].Solid && !l.Bricks[i].Destroyed {
			n++
		}
	}
	return n
}

// BuiltinLevels returns the levels shipped with the game, in play order.
func BuiltinLevels() []TileMap {
	levels, err := loadLevels(builtinFS, "levels")
	if err != nil {
		panic(fmt.Sprintf("breakout: embedded levels: %v", err))
	}
	return levels
}

// LoadLevelsDir reads every *.lvl file in dir, sorted by file name.
func LoadLevelsDir(dir string) ([]TileMap, error) {
	levels, err := loadLevels(os.DirFS(dir), ".")
	if err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("level dir %s: no .lvl files", dir)
	}
	return levels, nil
}

func loadLevels(fsys fs.FS, dir string) ([]TileMap, error) {
	paths, err := fs.Glob(fsys, path.Join(dir, "*.lvl"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	levels := make([]TileMap, 0, len(paths))
	for _, p := range paths {
		f, err := fsys.Open(p)
		if err != nil {
			return nil, err
		}
		m, err := ParseTileMap(levelName(p), f)
		f.Close()
		if err != nil {
			return nil, err
		}
		levels = append(levels, m)
	}
	return levels, nil
}

// levelName turns "levels/2_small_gaps.lvl" into "small gaps".
func levelName(p string) string {
	name := strings.TrimSuffix(path.Base(p), ".lvl")
	if i := strings.IndexByte(name, '_'); i > 0 {
		if _, err := strconv.Atoi(name[:i]); err == nil {
			name = name[i+1:]
		}
	}
	return strings.ReplaceAll(name, "_", " ")
}
