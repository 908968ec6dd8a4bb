package torrentapi

import (
	"net/url"
	"strconv"
	"strings"
)

// Search keys accepted by the search mode
const (
	searchKeyString = "search_string"
	searchKeyIMDB   = "search_imdb"
	searchKeyTVDB   = "search_tvdb"
	searchKeyTMDB   = "search_tmdb"
)

const categorySeparator = ";"

// Param is a single query key/value pair
type Param struct {
	Key   string
	Value string
}

// Query is an ordered sequence of unescaped query pairs
type Query []Param

// Get returns the value of the first pair with the given key
func (q Query) Get(key string) (string, bool) {
	for _, p := range q {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Encode URL-encodes the pairs, preserving their order
func (q Query) Encode() string {
	var b strings.Builder
	for i, p := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// callIntent describes one logical request
type callIntent struct {
	mode   Mode
	search *Param
	params *Parameters
}

// composeQuery assembles the query pairs of a call in a fixed order:
// mode, token, app_id, the search pair, then the parameter set.
func composeQuery(intent callIntent, appID, token string) Query {
	q := Query{
		{"mode", intent.mode.Wire()},
		{"token", token},
		{"app_id", appID},
	}

	if intent.search != nil {
		q = append(q, *intent.search)
	}

	p := intent.params
	if p == nil {
		return q
	}

	ranked := "0"
	if p.ranked {
		ranked = "1"
	}
	q = append(q,
		Param{"ranked", ranked},
		Param{"sort", p.sortBy.Wire()},
		Param{"limit", p.limit.Wire()},
		Param{"format", p.format.Wire()},
	)

	if p.minSeeders != nil {
		q = append(q, Param{"min_seeders", strconv.FormatUint(uint64(*p.minSeeders), 10)})
	}
	if p.minLeechers != nil {
		q = append(q, Param{"min_leechers", strconv.FormatUint(uint64(*p.minLeechers), 10)})
	}
	if len(p.categories) > 0 {
		codes := make([]string, len(p.categories))
		for i, c := range p.categories {
			codes[i] = c.Wire()
		}
		q = append(q, Param{"category", strings.Join(codes, categorySeparator)})
	}

	return q
}

// tokenQuery is the handshake query exchanging an app id for a token
func tokenQuery(appID string) Query {
	return Query{
		{"get_token", "get_token"},
		{"app_id", appID},
	}
}
