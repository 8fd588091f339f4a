// Package leveldata provides stage layout and stage table parsing shared by the
// client and the headless runner. It does not import ebitengine, donburi or resolv.
package leveldata

// Rect is an axis-aligned rectangle in level pixels.
type Rect struct {
	X, Y, W, H float64
}

// SpawnPoint is a player start position.
type SpawnPoint struct {
	X, Y float64
}

// Layout holds the static geometry of a stage: ground line, spikes, door and
// where the slime batch is placed.
type Layout struct {
	Name         string
	Width        float64
	Height       float64
	GroundY      float64
	PlayerSpawn  SpawnPoint
	Spikes       []Rect
	Door         Rect
	SlimeStartX  float64 // x of the first slime
	SlimeSpacing float64 // horizontal gap between consecutive slimes
}

// SlimeX returns the patrol anchor of the i-th slime in a stage batch.
func (l *Layout) SlimeX(i int) float64 {
	return l.SlimeStartX + float64(i)*l.SlimeSpacing
}

// StageDef lists the slime colors spawned on one stage, left to right.
type StageDef struct {
	Stage  int      `yaml:"stage"`
	Colors []string `yaml:"colors"`
}

// StageTable is the full list of playable stages.
type StageTable struct {
	Stages []StageDef `yaml:"stages"`
}
