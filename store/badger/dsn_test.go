package badger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_newDSN(t *testing.T) {
	tests := []struct {
		name        string
		dsn         string
		expectError bool
		expectDSN   *dsn
	}{
		{
			name:      "local dir",
			dsn:       "badger://badger-db.db",
			expectDSN: &dsn{dbPath: "badger-db.db"},
		},
		{
			name:      "absolute path",
			dsn:       "badger:///Users/john/.hexints/badger-db.db",
			expectDSN: &dsn{dbPath: "/Users/john/.hexints/badger-db.db"},
		},
		{
			name:        "no path",
			dsn:         "badger://",
			expectError: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := newDSN(test.dsn)
			if test.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, test.expectDSN, d)
			}
		})
	}
}
