package album

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ConnorNovak/cd-ripper/internal/services"
	"github.com/ConnorNovak/cd-ripper/internal/services/mid3v2"
)

// Metadata holds the album configuration loaded from the JSON file. All
// fields except Songs are optional; unrecognized keys in the file are
// ignored.
type Metadata struct {
	Artist string   `json:"artist"`
	Album  string   `json:"album"`
	Genre  string   `json:"genre"`
	Date   string   `json:"date"`
	Songs  []string `json:"songs"`
}

// Load reads and validates an album metadata file.
func Load(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, services.Wrap(services.ErrNotFound, "album", "load config", "", err)
	}
	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "album", "parse config", path, err)
	}
	if len(meta.Songs) == 0 {
		return nil, services.Wrap(services.ErrConfiguration, "album", "parse config",
			fmt.Sprintf("%s: required field %q is absent or empty", path, "songs"), nil)
	}
	return &meta, nil
}

// ResolveConfigPath decides which metadata file to use. An explicit path
// wins and must exist. Otherwise the album directory must contain exactly
// one .json file; zero or several is an error.
func ResolveConfigPath(albumDir, explicit string) (string, error) {
	if explicit != "" {
		info, err := os.Stat(explicit)
		if err != nil {
			return "", services.Wrap(services.ErrNotFound, "album", "resolve config", "", err)
		}
		if info.IsDir() {
			return "", services.Wrap(services.ErrNotFound, "album", "resolve config",
				fmt.Sprintf("%s is a directory", explicit), nil)
		}
		return explicit, nil
	}

	entries, err := os.ReadDir(albumDir)
	if err != nil {
		return "", services.Wrap(services.ErrNotFound, "album", "resolve config", "", err)
	}
	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			candidates = append(candidates, filepath.Join(albumDir, entry.Name()))
		}
	}
	switch len(candidates) {
	case 0:
		return "", services.Wrap(services.ErrNotFound, "album", "resolve config",
			fmt.Sprintf("no .json config file found in %s and none given at the CLI", albumDir), nil)
	case 1:
		return candidates[0], nil
	default:
		return "", services.Wrap(services.ErrConfiguration, "album", "resolve config",
			fmt.Sprintf("multiple .json files in %s (%s); pass one explicitly", albumDir, strings.Join(candidates, ", ")), nil)
	}
}

// Tags returns the album-level tag fields shared by every track. Title and
// track number are filled in per track by the pipeline.
func (m *Metadata) Tags() mid3v2.Tags {
	return mid3v2.Tags{
		Artist: m.Artist,
		Album:  m.Album,
		Genre:  m.Genre,
		Date:   m.Date,
	}
}
