package version

import (
    "encoding/json"
    "net/http"
)

// set via -ldflags at build time
var (
    Version   = "dev"
    Commit    = "none"
    BuildTime = "unknown"
)

type info struct {
    Service   string `json:"service"`
    Version   string `json:"version"`
    Commit    string `json:"commit"`
    BuildTime string `json:"build_time"`
}

// Handler writes version info as JSON
func Handler(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "application/json")
    _ = json.NewEncoder(w).Encode(info{Service: "orderbook-analyzer", Version: Version, Commit: Commit, BuildTime: BuildTime})
}
