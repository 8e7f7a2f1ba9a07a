package store

import "net/url"

// RemoveDSNOptions takes a DSN url string and removes from it any query options
// matching one of the `key` received in parameter.
//
// For example, transforms `badger3:///tmp/db?compression=none&other=1` to
// `badger3:///tmp/db?other=1` when passing `compression` as the key.
func RemoveDSNOptions(dsn string, keys ...string) (string, error) {
	dsnURL, err := url.Parse(dsn)
	if err != nil {
		return "", err
	}

	RemoveDSNOptionsFromURL(dsnURL, keys...)
	return dsnURL.String(), nil
}

// RemoveDSNOptionsFromURL is RemoveDSNOptions working on an already parsed
// URL, which is modified in place.
func RemoveDSNOptionsFromURL(dsnURL *url.URL, keys ...string) {
	query := dsnURL.Query()
	if len(query) <= 0 {
		return
	}

	for _, key := range keys {
		query.Del(key)
	}

	dsnURL.RawQuery = query.Encode()
}
