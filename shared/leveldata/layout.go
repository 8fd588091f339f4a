package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// DefaultLayout builds the single-screen stage used when no TMX file is given:
// two spikes on the ground, slimes from x=200 every 120px and the door 50px
// from the right edge.
func DefaultLayout(width, height, block float64) *Layout {
	groundY := height - block
	const doorW, doorH = 20.0, 40.0
	const spikeH = 10.0

	return &Layout{
		Name:        "default",
		Width:       width,
		Height:      height,
		GroundY:     groundY,
		PlayerSpawn: SpawnPoint{X: 50, Y: 0},
		Spikes: []Rect{
			{X: 150, Y: groundY - spikeH, W: block, H: spikeH},
			{X: 350, Y: groundY - spikeH, W: block, H: spikeH},
		},
		Door:         Rect{X: width - 50, Y: groundY - doorH, W: doorW, H: doorH},
		SlimeStartX:  defaultSlimeStartX,
		SlimeSpacing: defaultSlimeSpacing,
	}
}

const (
	defaultSlimeStartX  = 200.0
	defaultSlimeSpacing = 120.0
)

// LoadLayout parses a TMX file into a Layout. Recognised object groups:
// PlayerSpawn (first object), Spikes, Door (first object) and Ground (top edge of
// the first object). Map properties slimeStartX and slimeSpacing place the slimes.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadLayout(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	width := float64(levelMap.Width * levelMap.TileWidth)
	height := float64(levelMap.Height * levelMap.TileHeight)

	layout := &Layout{
		Name:         strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:        width,
		Height:       height,
		GroundY:      height - float64(levelMap.TileHeight),
		SlimeStartX:  intProperty(levelMap.Properties, "slimeStartX", defaultSlimeStartX),
		SlimeSpacing: intProperty(levelMap.Properties, "slimeSpacing", defaultSlimeSpacing),
	}
	if layout.SlimeSpacing <= 0 {
		return nil, fmt.Errorf("load TMX %s: slimeSpacing must be positive, got %v", tmxPath, layout.SlimeSpacing)
	}

	var haveDoor bool
	for _, og := range levelMap.ObjectGroups {
		if len(og.Objects) == 0 {
			continue
		}
		switch og.Name {
		case "PlayerSpawn":
			o := og.Objects[0]
			layout.PlayerSpawn = SpawnPoint{X: o.X, Y: o.Y}
		case "Ground":
			layout.GroundY = og.Objects[0].Y
		case "Door":
			o := og.Objects[0]
			layout.Door = Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			haveDoor = true
		case "Spikes":
			for _, o := range og.Objects {
				layout.Spikes = append(layout.Spikes, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		}
	}

	if !haveDoor {
		return nil, fmt.Errorf("load TMX %s: no Door object", tmxPath)
	}
	if layout.Door.X+layout.Door.W > layout.Width {
		return nil, fmt.Errorf("load TMX %s: door at x=%v lies outside the %vpx wide map", tmxPath, layout.Door.X, layout.Width)
	}

	// Sort spikes left-to-right for stable iteration
	sort.Slice(layout.Spikes, func(i, j int) bool {
		return layout.Spikes[i].X < layout.Spikes[j].X
	})

	return layout, nil
}

// intProperty reads an integer map property. Maps without a properties block or
// without the named property get def.
func intProperty(props *tiled.Properties, name string, def float64) float64 {
	if props == nil || len(props.Get(name)) == 0 {
		return def
	}
	return float64(props.GetInt(name))
}
