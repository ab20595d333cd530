package matching

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Pair associates one title with the file claimed for it.
type Pair struct {
	Title string
	Path  string
}

// CountMismatchError reports differing title and candidate counts.
type CountMismatchError struct {
	Titles int
	Files  int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("found %d music files, but given %d titles", e.Files, e.Titles)
}

// AmbiguousMatchError reports multiple candidates for one track.
type AmbiguousMatchError struct {
	Track      int
	Title      string
	Candidates []string
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("found multiple music files matching %d-%s: %s",
		e.Track, e.Title, strings.Join(e.Candidates, ", "))
}

// NoMatchError reports zero candidates for one track.
type NoMatchError struct {
	Track int
	Title string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("found no music files matching %d-%s", e.Track, e.Title)
}

// audioExtensions are the recognized candidate file types.
var audioExtensions = map[string]bool{
	".wav": true,
	".mp3": true,
}

// MatchTitles pairs each title with exactly one candidate file path. The
// candidate set and title list must have equal cardinality. Titles are
// consumed from last to first; each claimed file leaves the candidate set.
// The returned pairs are in title order.
func MatchTitles(titles []string, files []string) ([]Pair, error) {
	if len(titles) != len(files) {
		return nil, &CountMismatchError{Titles: len(titles), Files: len(files)}
	}

	remaining := append([]string(nil), files...)
	pairs := make([]Pair, 0, len(titles))

	for i := len(titles) - 1; i >= 0; i-- {
		title := titles[i]
		track := i + 1
		number := strconv.Itoa(track)

		var matched []string
		for _, file := range remaining {
			stem := fileStem(file)
			if strings.Contains(stem, number) || strings.Contains(stem, title) {
				matched = append(matched, file)
			}
		}

		switch len(matched) {
		case 0:
			return nil, &NoMatchError{Track: track, Title: title}
		case 1:
		default:
			return nil, &AmbiguousMatchError{Track: track, Title: title, Candidates: matched}
		}

		claimed := matched[0]
		pairs = append(pairs, Pair{Title: title, Path: claimed})
		kept := remaining[:0]
		for _, file := range remaining {
			if file != claimed {
				kept = append(kept, file)
			}
		}
		remaining = kept
	}

	// Pairs were accumulated in reverse; restore title order.
	for i, j := 0, len(pairs)-1; i < j; i, j = i+1, j-1 {
		pairs[i], pairs[j] = pairs[j], pairs[i]
	}
	return pairs, nil
}

// MatchDirectory gathers the audio files directly inside dir and delegates
// to MatchTitles.
func MatchDirectory(titles []string, dir string) ([]Pair, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan album directory: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if audioExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return MatchTitles(titles, files)
}

func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
