package loader

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/amusicadasegunda/stubgen/internal/stubgen/song"
)

// JSONLoader reads a JSON array of songs from a single content file.
type JSONLoader struct {
	Path string
}

// Load parses the songs file. A missing file is not an error: the admin
// pipeline may not have published content yet, so the build continues with an
// empty list. A present-but-malformed file is fatal, since every later stage
// assumes well-formed songs.
func (l *JSONLoader) Load() ([]*song.Song, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Warning: songs file %s not found, continuing with empty list", l.Path)
			return nil, nil
		}
		return nil, fmt.Errorf("reading songs file %s: %w", l.Path, err)
	}

	var songs []*song.Song
	if err := json.Unmarshal(data, &songs); err != nil {
		return nil, fmt.Errorf("parsing songs file %s: %w", l.Path, err)
	}

	// Songs without a slug or name cannot drive a page; skip them rather than
	// emit broken paths.
	valid := songs[:0]
	for _, s := range songs {
		if s == nil || s.Slug == "" || s.Name == "" {
			log.Printf("Warning: skipping song with missing slug or name")
			continue
		}
		valid = append(valid, s)
	}

	return valid, nil
}
