package safe

import (
	"io"
	"log/slog"
	"os"

	"github.com/secmon-lab/offboard/pkg/utils/logging"
)

// Close safely closes the resource and logs error if any
func Close(closer io.Closer) {
	if closer != nil {
		if err := closer.Close(); err != nil {
			if err == io.EOF {
				return
			}
			logging.Default().Warn("Fail to close resource", slog.Any("error", err))
		}
	}
}

// CloseFile closes the file unless it is one of the standard streams
func CloseFile(f *os.File) {
	if f == nil || f == os.Stdout || f == os.Stderr {
		return
	}
	Close(f)
}
