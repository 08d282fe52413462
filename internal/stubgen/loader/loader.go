package loader

import (
	"github.com/amusicadasegunda/stubgen/internal/stubgen/config"
	"github.com/amusicadasegunda/stubgen/internal/stubgen/song"
)

// Loader is the interface for loading songs from the content file.
type Loader interface {
	Load() ([]*song.Song, error)
}

// New creates the loader for the configured content path.
func New(cfg *config.Config) Loader {
	return &JSONLoader{Path: cfg.Paths.Songs}
}
