package models

import "fmt"

// ContentDocument is the payload returned by the backend scrape endpoint.
type ContentDocument struct {
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// LoadStatus is the phase of a content load.
type LoadStatus int

const (
	StatusIdle LoadStatus = iota
	StatusLoading
	StatusSucceeded
	StatusFailed
)

var statusNames = [...]string{"idle", "loading", "succeeded", "failed"}

func (s LoadStatus) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("LoadStatus(%d)", int(s))
	}
	return statusNames[s]
}

func (s LoadStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *LoadStatus) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if name == string(text) {
			*s = LoadStatus(i)
			return nil
		}
	}
	return fmt.Errorf("unknown load status %q", text)
}

// LoadState is what a page view knows about its content.
// Data survives a later load or failure; Status decides what is shown.
type LoadState struct {
	Status LoadStatus       `json:"status"`
	Data   *ContentDocument `json:"data,omitempty"`
	Error  string           `json:"error,omitempty"`
}

func (s LoadState) Loading() bool { return s.Status == StatusLoading }

func (s LoadState) Failed() bool { return s.Status == StatusFailed }
