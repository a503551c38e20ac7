package logging

import (
	"io"
	"log/slog"

	"github.com/sirupsen/logrus"
)

// New returns the backend matching format: FormatText selects logrus,
// anything else the slog JSON handler.
func New(format string, w io.Writer) Logger {
	if format == FormatText {
		return NewText(w, logrus.InfoLevel)
	}
	return NewJSON(w, slog.LevelInfo)
}
