package torrentapi

import (
	"encoding/json"
	"errors"
)

// resultsBody is the success schema
type resultsBody struct {
	TorrentResults *[]Torrent `json:"torrent_results"`
}

// errorBody is the failure schema
type errorBody struct {
	Error     *string `json:"error"`
	ErrorCode *int    `json:"error_code"`
}

// ResolveResponse decides whether a body is a result set or an API error.
// The API uses one bare object for both without a discriminant, so the body
// is parsed as results first and as an error only if that fails. A body
// matching neither yields a *MalformedResponseError.
func ResolveResponse(body []byte) ([]Torrent, error) {
	torrents, resultsErr := parseResults(body)
	if resultsErr == nil {
		return torrents, nil
	}

	apiErr, errorErr := parseError(body)
	if errorErr == nil {
		return nil, apiErr
	}

	return nil, &MalformedResponseError{
		Body:       string(body),
		ResultsErr: resultsErr,
		ErrorErr:   errorErr,
	}
}

func parseResults(body []byte) ([]Torrent, error) {
	var r resultsBody
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, err
	}
	if r.TorrentResults == nil {
		return nil, errors.New("missing field \"torrent_results\"")
	}
	if *r.TorrentResults == nil {
		return []Torrent{}, nil
	}
	return *r.TorrentResults, nil
}

func parseError(body []byte) (*APIError, error) {
	var e errorBody
	if err := json.Unmarshal(body, &e); err != nil {
		return nil, err
	}
	if e.Error == nil {
		return nil, errors.New("missing field \"error\"")
	}
	if e.ErrorCode == nil {
		return nil, errors.New("missing field \"error_code\"")
	}
	return &APIError{Code: *e.ErrorCode, Message: *e.Error}, nil
}
