package torrentapi

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

const (
	pubDateLayout = "2006-01-02 15:04:05 -0700"
	airDateLayout = "2006-01-02"
)

// Torrent is one element of a result set
type Torrent struct {
	Title       string       `json:"title,omitempty"`
	Filename    string       `json:"filename,omitempty"`
	Category    Category     `json:"category"`
	Download    string       `json:"download"`
	Seeders     *int64       `json:"seeders,omitempty"`
	Leechers    *int64       `json:"leechers,omitempty"`
	Size        *int64       `json:"size,omitempty"`
	PubDate     string       `json:"pubdate,omitempty"`
	EpisodeInfo *EpisodeInfo `json:"episode_info,omitempty"`
	Ranked      *int64       `json:"ranked,omitempty"`
	InfoPage    string       `json:"info_page,omitempty"`
}

// UnmarshalJSON decodes a torrent, requiring the download and category fields
func (t *Torrent) UnmarshalJSON(data []byte) error {
	type plain Torrent
	var raw struct {
		plain
		Download *string          `json:"download"`
		Category *json.RawMessage `json:"category"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Download == nil {
		return errors.New("torrent is missing field \"download\"")
	}
	if raw.Category == nil {
		return errors.New("torrent is missing field \"category\"")
	}

	*t = Torrent(raw.plain)
	t.Download = *raw.Download
	return t.Category.UnmarshalJSON(*raw.Category)
}

// Name returns the title, falling back to the filename used by the compact format
func (t *Torrent) Name() string {
	if t.Title != "" {
		return t.Title
	}
	return t.Filename
}

// IsRanked reports whether the API flagged the torrent as a ranked release
func (t *Torrent) IsRanked() bool {
	return t.Ranked != nil && *t.Ranked == 1
}

// PublishedAt parses the publish date
func (t *Torrent) PublishedAt() (time.Time, bool) {
	if t.PubDate == "" {
		return time.Time{}, false
	}
	ts, err := time.Parse(pubDateLayout, t.PubDate)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// InfoHash extracts the BitTorrent info hash from the magnet link
func (t *Torrent) InfoHash() string {
	const marker = "xt=urn:btih:"
	i := strings.Index(t.Download, marker)
	if i < 0 {
		return ""
	}
	hash := t.Download[i+len(marker):]
	if j := strings.IndexByte(hash, '&'); j >= 0 {
		hash = hash[:j]
	}
	return strings.ToLower(hash)
}

// EpisodeInfo holds the external ids and episode metadata of a TV release
type EpisodeInfo struct {
	IMDB       *string `json:"imdb,omitempty"`
	TVRage     *string `json:"tvrage,omitempty"`
	TVDB       *string `json:"tvdb,omitempty"`
	TMDB       *string `json:"themoviedb,omitempty"`
	RawAirDate *string `json:"airdate,omitempty"`
	EpisodeNo  *string `json:"epnum,omitempty"`
	SeasonNo   *string `json:"seasonnum,omitempty"`
	Title      *string `json:"title,omitempty"`
}

// AirDate parses the airing date. The API reports unknown dates as 0000-00-00.
func (e *EpisodeInfo) AirDate() (time.Time, bool) {
	if e == nil || e.RawAirDate == nil || *e.RawAirDate == "" || *e.RawAirDate == "0000-00-00" {
		return time.Time{}, false
	}
	d, err := time.Parse(airDateLayout, *e.RawAirDate)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
