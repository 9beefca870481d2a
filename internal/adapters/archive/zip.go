package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"path"

	"isrevy/internal/domain/model"
)

// scanZip lists audio entries inside a ZIP archive. Only the base name is
// kept; the archive's folder layout carries no meaning.
func (s *Scanner) scanZip(zipPath string) ([]*model.MusicAsset, []probe, error) {
	zf, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrScan, err)
	}
	defer zf.Close()

	var assets []*model.MusicAsset
	var probes []probe
	for _, entry := range zf.File {
		if entry.FileInfo().IsDir() || !isAudio(entry.Name) {
			continue
		}
		a := &model.MusicAsset{Filename: path.Base(entry.Name)}
		assets = append(assets, a)
		if !isWAV(a.Filename) {
			continue
		}
		// ZIP entry readers are not seekable; buffer the entry for the
		// decoder. Exhibition tracks are a few MB at most.
		data, err := readZipEntry(entry)
		if err != nil {
			continue
		}
		probes = append(probes, probe{asset: a, read: func() error {
			return probeWAVBytes(data, a)
		}})
	}
	return assets, probes, nil
}

func readZipEntry(entry *zip.File) ([]byte, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
