package badger

import (
	"fmt"
	"net/url"
)

type dsn struct {
	dbPath      string
	compression string
}

func newDSN(dsnString string) (*dsn, error) {
	u, err := url.Parse(dsnString)
	if err != nil {
		return nil, fmt.Errorf("cannot parse badger dsn %q: %w", dsnString, err)
	}

	dbPath := u.Hostname() + u.Path
	if dbPath == "" {
		return nil, fmt.Errorf("badger dsn %q has no path", dsnString)
	}

	return &dsn{
		dbPath:      dbPath,
		compression: u.Query().Get("compression"),
	}, nil
}
