package store

import (
	"github.com/streamingfast/logging"
)

var zlog, _ = logging.PackageLogger("hexints", "github.com/streamingfast/hexints/store")
