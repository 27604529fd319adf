package obs

import (
	"os"

	"github.com/yanun0323/logs"
)

// InitLogging routes the default logger to stderr. The adapters' stdout is
// the data pipe; a lifecycle message written there would corrupt the stream
// ahead of the records, so it must be called before anything that logs.
func InitLogging() {
	logs.SetDefault(logs.New(logs.LevelInfo, &logs.Option{Output: os.Stderr}))
}
