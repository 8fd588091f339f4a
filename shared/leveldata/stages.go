package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrUnknownStage is returned when a stage number has no table entry.
var ErrUnknownStage = errors.New("unknown stage")

// ParseStageTable decodes and validates a YAML stage table. knownColors is the
// slime color ordering; every listed color must appear in it.
func ParseStageTable(data []byte, knownColors []string) (*StageTable, error) {
	var table StageTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("unmarshal stage table: %w", err)
	}
	if len(table.Stages) == 0 {
		return nil, errors.New("stage table has no stages")
	}

	known := make(map[string]struct{}, len(knownColors))
	for _, c := range knownColors {
		known[c] = struct{}{}
	}

	seen := make(map[int]struct{}, len(table.Stages))
	for _, def := range table.Stages {
		if def.Stage < 1 {
			return nil, fmt.Errorf("stage %d: stage numbers start at 1", def.Stage)
		}
		if _, dup := seen[def.Stage]; dup {
			return nil, fmt.Errorf("stage %d: defined twice", def.Stage)
		}
		seen[def.Stage] = struct{}{}
		for _, c := range def.Colors {
			if _, ok := known[c]; !ok {
				return nil, fmt.Errorf("stage %d: unknown slime color %q", def.Stage, c)
			}
		}
	}

	sort.Slice(table.Stages, func(i, j int) bool {
		return table.Stages[i].Stage < table.Stages[j].Stage
	})
	return &table, nil
}

// LoadStageTable reads and parses a stage table from fsys.
func LoadStageTable(fsys fs.FS, name string, knownColors []string) (*StageTable, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read stage table %s: %w", name, err)
	}
	table, err := ParseStageTable(data, knownColors)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return table, nil
}

// Lookup returns the definition of a stage.
func (t *StageTable) Lookup(stage int) (StageDef, error) {
	for _, def := range t.Stages {
		if def.Stage == stage {
			return def, nil
		}
	}
	return StageDef{}, fmt.Errorf("stage %d: %w", stage, ErrUnknownStage)
}
