package http

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
)

// apiFloat renders non-finite values ("NaN" and friends) as JSON strings,
// since encoding/json refuses them as numbers and a poisoned total is
// still a reportable result.
type apiFloat float64

func (f apiFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return json.Marshal(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return json.Marshal(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// queryFloat parses a float query parameter. ok is false when the
// parameter is absent; a present but malformed value is an error.
func queryFloat(r *http.Request, key string) (float64, bool, error) {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false, err
	}
	return f, true, nil
}
