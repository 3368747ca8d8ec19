package models

// MediaFile is one object listed from the storage zone, addressed by its
// public CDN URL.
type MediaFile struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
	Modified string `json:"modified"`
	IsVideo  bool   `json:"is_video"`
}
