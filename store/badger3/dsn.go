package badger3

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
		return nil, fmt.Errorf("cannot parse badger3 dsn %q: %w", dsnString, err)
	}

	// `badger3://./relative.db` parses `.` as the host, the path keeps its
	// leading slash.
	dbPath := u.Hostname() + u.Path
	if dbPath == "" {
		return nil, fmt.Errorf("badger3 dsn %q has no path", dsnString)
	}

	return &dsn{
		dbPath:      dbPath,
		compression: u.Query().Get("compression"),
	}, nil
}
