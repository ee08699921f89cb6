package utils

import (
	"fmt"
	"log"
	"os"
	"path"
)

// SetupLogger sends the standard logger to a file. Console output goes
// through ConsoleAndLogPrintf so the log file keeps a full transcript.
func SetupLogger(logFilePath string) error {
	if logFilePath == "" {
		return nil
	}

	logFile, err := os.OpenFile(path.Clean(logFilePath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)

	if err != nil {
		return err
	}

	log.SetOutput(logFile)
	return nil
}

func ConsoleAndLogPrintf(format string, v ...any) {
	fmt.Printf(format+"\n", v...)
	log.Printf(format, v...)
}
