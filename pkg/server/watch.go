package server

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/askoeller/menuboard/pkg/pipeline"
)

// debounceDelay coalesces editor save bursts into one reload.
const debounceDelay = 250 * time.Millisecond

// watchFiles reloads the board when the template or catalog changes on disk
// and pushes fresh layouts to connected displays. Parent directories are
// watched because editors typically replace files by rename.
func (s *Server) watchFiles(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	watched := map[string]bool{
		filepath.Clean(s.cfg.TemplatePath): true,
		filepath.Clean(s.cfg.CatalogPath):  true,
	}
	dirs := map[string]bool{}
	for path := range watched {
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	s.logger.Info("watching board files",
		"template", s.cfg.TemplatePath,
		"catalog", s.cfg.CatalogPath)

	debounce := time.NewTimer(debounceDelay)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
				debounce.Reset(debounceDelay)
			}

		case <-debounce.C:
			s.reloadAndBroadcast(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watcher error", "error", err)
		}
	}
}

// reloadAndBroadcast re-reads the board from disk and pushes every slide's
// fresh layout to connected displays. A broken edit keeps the previous board
// on screen.
func (s *Server) reloadAndBroadcast(ctx context.Context) {
	if err := s.reload(); err != nil {
		s.logger.Error("board reload failed, keeping previous board", "error", err)
		return
	}
	t, cat := s.board()
	s.logger.Info("board reloaded", "template", t.Name, "slides", len(t.Slides))
	s.hub.publish(wsMessage{Type: msgBoardReloaded})

	for _, slide := range t.Slides {
		_, lay, err := s.runner.ComputeLayout(ctx, t, cat, slide, pipeline.Options{Refresh: true})
		if err != nil {
			s.logger.Warn("layout recompute failed", "slide", slide.ID, "error", err)
			continue
		}
		l := lay
		s.hub.publish(wsMessage{Type: msgLayoutUpdated, SlideID: slide.ID, Layout: &l})
	}
}
