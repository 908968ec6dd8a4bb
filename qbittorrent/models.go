package qbittorrent

import "time"

// TorrentInfo contains information about a torrent known to qBittorrent
type TorrentInfo struct {
	Hash     string
	Name     string
	SavePath string
	State    string
	Size     int64
	Progress float64
	AddedOn  time.Time
	Category string
	Tags     []string
}

// IsActivelySeeding checks if the torrent is actively seeding
func (t *TorrentInfo) IsActivelySeeding() bool {
	return t.State == "uploading" || t.State == "stalledUP" || t.State == "queuedUP" || t.State == "forcedUP"
}

// AddResult contains the results of a batch add operation
type AddResult struct {
	Requested int
	Added     []string
	Skipped   []string
	Failed    []AddError
}
