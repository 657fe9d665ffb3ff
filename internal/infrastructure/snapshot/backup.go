package snapshot

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"

	"pharmos/internal/domain/model"
)

// Backups are the state document, session user stripped, zstd-compressed.
// Import transparently accepts plain JSON so backups from the original
// application restore as well.

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Export writes a compressed backup of the state to w.
func Export(w io.Writer, state *model.AppState) error {
	clean := *state
	clean.CurrentUser = nil

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("create zstd encoder: %w", err)
	}

	if err := json.NewEncoder(enc).Encode(&clean); err != nil {
		enc.Close()
		return fmt.Errorf("encode backup: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finish backup: %w", err)
	}
	return nil
}

// Import reads a backup (compressed or plain JSON) and returns the candidate
// state after legacy-shape migration. The result still has to pass the
// restore guard in the engine before it becomes live.
func Import(r io.Reader) (*model.AppState, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(len(zstdMagic))
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read backup: %w", err)
	}

	var raw []byte
	if bytes.Equal(head, zstdMagic) {
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("create zstd decoder: %w", err)
		}
		defer dec.Close()
		raw, err = io.ReadAll(dec)
		if err != nil {
			return nil, fmt.Errorf("decompress backup: %w", err)
		}
	} else {
		raw, err = io.ReadAll(br)
		if err != nil {
			return nil, fmt.Errorf("read backup: %w", err)
		}
	}

	state, err := Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("decode backup: %w", err)
	}
	return state, nil
}

// BackupFilename suggests a timestamped download name.
func BackupFilename(t time.Time) string {
	return fmt.Sprintf("pharmacy-backup-%s.json.zst", t.Format("20060102-150405"))
}
