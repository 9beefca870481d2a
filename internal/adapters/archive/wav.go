package archive

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"

	"isrevy/internal/domain/model"
)

func isWAV(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".wav")
}

// probeWAVFile measures the duration of a WAV file on disk and records it
// on the asset. Other formats are never probed; they stay duration-unknown.
func probeWAVFile(path string, a *model.MusicAsset) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrProbe, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	dec.ReadInfo()
	if !dec.IsValidFile() {
		return fmt.Errorf("%w: %s is not a valid wav file", ErrProbe, a.Filename)
	}
	d, err := dec.Duration()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrProbe, err)
	}
	a.Duration = d
	a.DurationKnown = true
	return nil
}

// probeWAVBytes is the in-memory variant used for ZIP entries.
func probeWAVBytes(data []byte, a *model.MusicAsset) error {
	dec := wav.NewDecoder(bytes.NewReader(data))
	dec.ReadInfo()
	if !dec.IsValidFile() {
		return fmt.Errorf("%w: %s is not a valid wav file", ErrProbe, a.Filename)
	}
	d, err := dec.Duration()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrProbe, err)
	}
	a.Duration = d
	a.DurationKnown = true
	return nil
}
