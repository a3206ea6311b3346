package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/braindrain/internal"
)

// WriteSnapshotsJSONL writes one snapshot per line
func WriteSnapshotsJSONL(snapshots []*internal.Snapshot, w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, snap := range snapshots {
		if err := enc.Encode(snap); err != nil {
			return &internal.ExportError{Format: "jsonl", Err: err}
		}
	}
	return nil
}
