package langstat

import (
	"encoding/json"
	"log/slog"
)

func jsonMarshal(v interface{}) ([]byte, error)      { return json.Marshal(v) }
func jsonUnmarshal(data []byte, v interface{}) error { return json.Unmarshal(data, v) }

// logWalkError reports a per-path directory-walk failure without
// aborting the walk.
func logWalkError(err error) {
	if err == nil {
		return
	}
	slog.Error("langstat: walk error", "error", err)
}
