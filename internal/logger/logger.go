package logger

import (
	"io"
	"log"
)

var (
	Debug   *log.Logger
	Info    *log.Logger
	Warning *log.Logger
	Error   *log.Logger
)

// LogInit - set up the four leveled loggers.
func LogInit(debugHandle io.Writer, infoHandle io.Writer, warningHandle io.Writer, errorHandle io.Writer) {
	Debug = log.New(debugHandle, "TRACE: ", log.Ldate|log.Ltime|log.LUTC|log.Lshortfile)
	Info = log.New(infoHandle, "INFO: ", log.Ldate|log.Ltime|log.LUTC|log.Lshortfile)
	Warning = log.New(warningHandle, "WARNING: ", log.Ldate|log.Ltime|log.LUTC|log.Lshortfile)
	Error = log.New(errorHandle, "ERROR: ", log.Ldate|log.Ltime|log.LUTC|log.Lshortfile)
}

// SetLevel - init loggers by level name: Debug, Info, Warning or Error.
// Everything below the level is discarded. Unknown names mean Debug.
func SetLevel(level string, out, errOut io.Writer) {
	switch level {
	case "Info":
		LogInit(io.Discard, out, errOut, errOut)
	case "Warning":
		LogInit(io.Discard, io.Discard, errOut, errOut)
	case "Error":
		LogInit(io.Discard, io.Discard, io.Discard, errOut)
	default:
		LogInit(errOut, out, errOut, errOut)
	}
}
