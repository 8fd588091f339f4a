package systems

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/automoto/slimerun/shared/gamemath"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const (
	setupItem   = "setup"
	resultsItem = "results"
)

// ItemStore is the subset of gdata.Manager used for saves.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// StageRecord holds the best results for one stage.
type StageRecord struct {
	BestTotalXP int   `json:"bestTotalXP"`
	FastestMs   int64 `json:"fastestMs"`
	Completions int   `json:"completions"`
	Failures    int   `json:"failures"`
}

// SavedResults maps stage numbers to their records.
type SavedResults map[string]StageRecord

// Store persists the last stat setup and per-stage results. A nil *Store or one
// without a backend is valid and saves nothing.
type Store struct {
	items ItemStore
}

// OpenStore opens the gdata save location for the app. Failure is logged and
// yields a store that saves nothing.
func OpenStore(appName string) *Store {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Warn("could not initialize persistence", "err", err)
		return &Store{}
	}
	return &Store{items: m}
}

// NewStore wraps an existing item store.
func NewStore(items ItemStore) *Store {
	return &Store{items: items}
}

func (s *Store) enabled() bool {
	return s != nil && s.items != nil
}

func (s *Store) loadJSON(key string, v any) (bool, error) {
	if !s.enabled() {
		return false, nil
	}
	data, err := s.items.LoadItem(key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) saveJSON(key string, v any) error {
	if !s.enabled() {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", key, err)
	}
	if err := s.items.SaveItem(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// LoadSetup returns the last saved stat setup. ok is false when nothing was
// saved or the save could not be read.
func (s *Store) LoadSetup() (setup gamemath.StatSetup, ok bool) {
	found, err := s.loadJSON(setupItem, &setup)
	if err != nil {
		log.Warn("could not load setup", "err", err)
		return gamemath.StatSetup{}, false
	}
	return setup, found
}

// SaveSetup remembers the stat setup for the next run.
func (s *Store) SaveSetup(setup gamemath.StatSetup) error {
	if err := s.saveJSON(setupItem, setup); err != nil {
		log.Warn("could not save setup", "err", err)
		return err
	}
	return nil
}

// LoadResults returns all saved stage records.
func (s *Store) LoadResults() SavedResults {
	results := SavedResults{}
	if _, err := s.loadJSON(resultsItem, &results); err != nil {
		log.Warn("could not load results", "err", err)
		return SavedResults{}
	}
	return results
}

// RecordResult folds one finished stage into the saved records and returns the
// updated record. Nothing is written when the existing records cannot be read.
func (s *Store) RecordResult(stage int, completed bool, elapsed time.Duration, totalXP int) (StageRecord, error) {
	results := SavedResults{}
	// An unreadable save is left untouched rather than replaced
	if _, err := s.loadJSON(resultsItem, &results); err != nil {
		log.Warn("not recording result", "stage", stage, "err", err)
		return StageRecord{}, err
	}
	key := strconv.Itoa(stage)
	rec := results[key]

	if completed {
		rec.Completions++
		if totalXP > rec.BestTotalXP {
			rec.BestTotalXP = totalXP
		}
		ms := elapsed.Milliseconds()
		if rec.FastestMs == 0 || ms < rec.FastestMs {
			rec.FastestMs = ms
		}
	} else {
		rec.Failures++
	}
	results[key] = rec

	if err := s.saveJSON(resultsItem, results); err != nil {
		log.Warn("could not save results", "stage", stage, "err", err)
		return rec, err
	}
	return rec, nil
}
