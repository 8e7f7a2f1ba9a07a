package badger3

import (
	"github.com/streamingfast/logging"
)

var zlog, _ = logging.PackageLogger("hexints", "github.com/streamingfast/hexints/store/badger3")

// badgerLogger routes badger's own messages to zlog, info messages are
// demoted to debug since badger is chatty on open and close.
type badgerLogger struct{}

func (badgerLogger) Errorf(template string, args ...interface{}) {
	zlog.Sugar().Errorf(template, args...)
}

func (badgerLogger) Warningf(template string, args ...interface{}) {
	zlog.Sugar().Warnf(template, args...)
}

func (badgerLogger) Infof(template string, args ...interface{}) {
	zlog.Sugar().Debugf(template, args...)
}

func (badgerLogger) Debugf(template string, args ...interface{}) {
	zlog.Sugar().Debugf(template, args...)
}
