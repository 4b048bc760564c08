package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

const LogFileName = "outie.log"

// SetupLogging routes the standard logger to LogDir/outie.log when Debug is
// set and discards it otherwise. The caller closes the returned file.
func SetupLogging(c Config) *os.File {
	if !c.Debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(c.LogDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(c.LogDir, LogFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
