package torrentapi

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Mode selects the endpoint family of a request
type Mode int

const (
	// ModeList lists the latest torrents
	ModeList Mode = iota
	// ModeSearch searches torrents by a search key
	ModeSearch
)

// Wire returns the value sent as the mode query parameter
func (m Mode) Wire() string {
	switch m {
	case ModeList:
		return "list"
	case ModeSearch:
		return "search"
	default:
		return ""
	}
}

// SortBy is the sorting criteria of a request
type SortBy int

const (
	// SortLast sorts by upload date, newest first
	SortLast SortBy = iota
	// SortSeeders sorts by seeder count
	SortSeeders
	// SortLeechers sorts by leecher count
	SortLeechers
)

// Wire returns the value sent as the sort query parameter
func (s SortBy) Wire() string {
	switch s {
	case SortLast:
		return "last"
	case SortSeeders:
		return "seeders"
	case SortLeechers:
		return "leechers"
	default:
		return ""
	}
}

// Limit is the number of torrents a request returns
type Limit int

const (
	Limit25  Limit = 25
	Limit50  Limit = 50
	Limit100 Limit = 100
)

// IsValid reports whether the limit is one the API accepts
func (l Limit) IsValid() bool {
	return l == Limit25 || l == Limit50 || l == Limit100
}

// Wire returns the value sent as the limit query parameter
func (l Limit) Wire() string {
	if !l.IsValid() {
		return ""
	}
	return strconv.Itoa(int(l))
}

// Format is the response format of a request.
// Seeders, leechers and size are only returned with FormatJSONExtended.
type Format int

const (
	FormatJSON Format = iota
	FormatJSONExtended
)

// Wire returns the value sent as the format query parameter
func (f Format) Wire() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatJSONExtended:
		return "json_extended"
	default:
		return ""
	}
}

// Category is a torrent category
type Category int

const (
	CategoryUnknown Category = iota
	CategoryXXX
	CategoryMoviesXvid
	CategoryMoviesXvid720
	CategoryMoviesX264
	CategoryMoviesX2641080
	CategoryMoviesX264720
	CategoryMoviesX2643D
	CategoryMoviesX2644K
	CategoryMoviesX2654K
	CategoryMoviesX2654KHDR
	CategoryMoviesFullBD
	CategoryMoviesBDRemux
	CategoryTVEpisodes
	CategoryTVHDEpisodes
	CategoryTVUHDEpisodes
	CategoryMusicMP3
	CategoryMusicFLAC
	CategoryGamesPCISO
	CategoryGamesPCRip
	CategoryGamesPS3
	CategoryGamesXbox360
	CategorySoftwarePCISO
	CategoryGamesPS4
)

type categoryInfo struct {
	code string
	name string
}

var categories = map[Category]categoryInfo{
	CategoryXXX:             {"4", "XXX (18+)"},
	CategoryMoviesXvid:      {"14", "Movies/XVID"},
	CategoryMoviesXvid720:   {"48", "Movies/XVID/720"},
	CategoryMoviesX264:      {"17", "Movies/x264"},
	CategoryMoviesX2641080:  {"44", "Movies/x264/1080"},
	CategoryMoviesX264720:   {"45", "Movies/x264/720"},
	CategoryMoviesX2643D:    {"47", "Movies/x264/3D"},
	CategoryMoviesX2644K:    {"50", "Movies/x264/4k"},
	CategoryMoviesX2654K:    {"51", "Movies/x265/4k"},
	CategoryMoviesX2654KHDR: {"52", "Movies/x264/4k/HDR"},
	CategoryMoviesFullBD:    {"42", "Movies/Full BD"},
	CategoryMoviesBDRemux:   {"46", "Movies/BD Remux"},
	CategoryTVEpisodes:      {"18", "TV Episodes"},
	CategoryTVHDEpisodes:    {"41", "TV HD Episodes"},
	CategoryTVUHDEpisodes:   {"49", "TV UHD Episodes"},
	CategoryMusicMP3:        {"23", "Music/MP3"},
	CategoryMusicFLAC:       {"25", "Music/FLAC"},
	CategoryGamesPCISO:      {"27", "Games/PC ISO"},
	CategoryGamesPCRip:      {"28", "Games/PC RIP"},
	CategoryGamesPS3:        {"40", "Games/PS3"},
	CategoryGamesXbox360:    {"32", "Games/XBOX-360"},
	CategorySoftwarePCISO:   {"33", "Software/PC ISO"},
	CategoryGamesPS4:        {"53", "Games/PS4"},
}

var categoriesByName = func() map[string]Category {
	m := make(map[string]Category, len(categories))
	for c, info := range categories {
		m[info.name] = c
	}
	return m
}()

// IsValid reports whether the category is known to the API
func (c Category) IsValid() bool {
	_, ok := categories[c]
	return ok
}

// Wire returns the numeric category code sent in the category query parameter
func (c Category) Wire() string {
	return categories[c].code
}

// String returns the category name as the API reports it in results
func (c Category) String() string {
	if info, ok := categories[c]; ok {
		return info.name
	}
	return "Unknown"
}

// UnmarshalJSON decodes a category from its display name.
// Names the client does not know decode to CategoryUnknown.
func (c *Category) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("category must be a string: %w", err)
	}
	*c = categoriesByName[name]
	return nil
}

// MarshalJSON encodes a category as its display name
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}
