package fixture

import (
	"github.com/streamingfast/logging"
)

var zlog, tracer = logging.PackageLogger("hexints", "github.com/streamingfast/hexints/fixture")
