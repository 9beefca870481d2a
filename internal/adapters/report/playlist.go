package report

import (
	"fmt"
	"io"

	"isrevy/internal/domain/schedule"
)

// WritePlaylistM3U writes the assigned music in start order as an extended
// M3U playlist. Slots without music are skipped; files with an unknown
// duration get the conventional -1 length so players still accept them.
func WritePlaylistM3U(w io.Writer, entries []schedule.Entry) error {
	if _, err := fmt.Fprintln(w, "#EXTM3U"); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	for _, e := range entries {
		if e.Kind != schedule.KindSkater || e.Participant.Asset == nil {
			continue
		}
		a := e.Participant.Asset
		seconds := -1
		if a.DurationKnown {
			seconds = int(a.Duration.Seconds())
		}
		if _, err := fmt.Fprintf(w, "#EXTINF:%d,%d. %s\n%s\n",
			seconds, e.Seq, e.Participant.DisplayName(), a.Filename); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}
	return nil
}
