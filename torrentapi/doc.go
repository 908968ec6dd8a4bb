// Package torrentapi provides a client for the token-gated, rate-limited
// torrent indexing API served at pubapi_v2.php.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the session. Owns the token lease, renews it and paces requests
//   - Parameters: immutable query options built with a ParametersBuilder
//   - Pacer: the fixed delay observed before every request
//   - Transport: the HTTP collaborator, replaceable for tests
//   - ResolveResponse: turns a body into results or an API error
//
// # Usage
//
//	logger := zerolog.New(os.Stdout)
//	client, err := torrentapi.NewClient("my-app", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	params, err := torrentapi.NewParametersBuilder().
//		Limit(torrentapi.Limit50).
//		SortBy(torrentapi.SortSeeders).
//		Categories(torrentapi.CategoryTVHDEpisodes, torrentapi.CategoryTVUHDEpisodes).
//		Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	torrents, err := client.SearchByIMDB(ctx, "tt2861424", params)
//
// # Tokens
//
// The API requires a token on every call. Tokens are acquired on first use
// and renewed once they are TokenTTL old. A failed acquisition is returned
// as an *AuthError and is never retried.
//
// # Error Handling
//
// The API answers with the same bare JSON object for results and errors.
// Errors are classified as:
//
//   - *APIError: a well-formed error reported by the API, e.g. no results
//   - *AuthError (ErrAuthFailure): the token handshake failed
//   - *TransportError (ErrTransport): the request could not be completed
//   - *MalformedResponseError (ErrMalformedResponse): the body matched neither shape
//
//	if apiErr, ok := torrentapi.AsAPIError(err); ok && apiErr.IsNoResults() {
//		// nothing found
//	}
package torrentapi
