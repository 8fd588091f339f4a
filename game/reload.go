package game

import (
	"context"
	"os"
	"path/filepath"

	cfg "github.com/automoto/slimerun/config"
	"github.com/automoto/slimerun/shared/leveldata"
)

// WatchStages reloads the stage table from path each time the file changes,
// until ctx is cancelled. Reloaded tables take effect on the next Start. A table
// that fails to parse is logged and ignored.
func (d *Driver) WatchStages(ctx context.Context, path string) error {
	w, err := leveldata.NewStageWatcher(path)
	if err != nil {
		return err
	}

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case name, ok := <-w.Events:
				if !ok {
					return
				}
				table, err := leveldata.LoadStageTable(os.DirFS(filepath.Dir(name)), filepath.Base(name), cfg.Slime.Colors)
				if err != nil {
					d.logger.Warn("ignoring stage table change", "file", name, "err", err)
					continue
				}
				d.ReloadStages(table)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				d.logger.Warn("stage watcher error", "err", err)
			}
		}
	}()
	return nil
}
