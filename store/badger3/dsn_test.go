package badger3

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
			dsn:       "badger3://hexints-fixtures.db",
			expectDSN: &dsn{dbPath: "hexints-fixtures.db"},
		},
		{
			name:      "relative dir",
			dsn:       "badger3://./hexints-fixtures.db",
			expectDSN: &dsn{dbPath: "./hexints-fixtures.db"},
		},
		{
			name:      "absolute path",
			dsn:       "badger3:///Users/john/.hexints/fixtures.db",
			expectDSN: &dsn{dbPath: "/Users/john/.hexints/fixtures.db"},
		},
		{
			name:      "compression option",
			dsn:       "badger3:///tmp/fixtures.db?compression=none",
			expectDSN: &dsn{dbPath: "/tmp/fixtures.db", compression: "none"},
		},
		{
			name:        "no path",
			dsn:         "badger3://",
			expectError: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d, err := newDSN(test.dsn)
			if test.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.expectDSN, d)
		})
	}
}
