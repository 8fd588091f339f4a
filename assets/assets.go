// Package assets embeds the stage layout and stage table shipped with the game.
package assets

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/shared/leveldata"
)

var (
	//go:embed all:levels stages.yaml
	assetFS embed.FS
)

const (
	DefaultLevel  = "levels/meadow.tmx"
	StageFileName = "stages.yaml"
)

// LoadLayout loads a stage layout. An empty path selects the embedded meadow
// level; any other path is read from disk.
func LoadLayout(path string) (*leveldata.Layout, error) {
	if path == "" {
		return leveldata.LoadLayout(assetFS, DefaultLevel)
	}
	return leveldata.LoadLayout(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// LoadStages loads the stage table. An empty path selects the embedded table.
func LoadStages(path string) (*leveldata.StageTable, error) {
	if path == "" {
		return leveldata.LoadStageTable(assetFS, StageFileName, config.Slime.Colors)
	}
	table, err := leveldata.LoadStageTable(os.DirFS(filepath.Dir(path)), filepath.Base(path), config.Slime.Colors)
	if err != nil {
		return nil, fmt.Errorf("stage table override: %w", err)
	}
	return table, nil
}
