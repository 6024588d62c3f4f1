package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/geometry-fighter/constants"
)

// setupLogging routes the standard logger to logs/geometry-fighter.log when debug is set
// and discards it otherwise, so log output never lands on the game screen
// A log file above the size limit is renamed with a timestamp before a fresh one is opened
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(constants.LogDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(constants.LogDir, constants.LogFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > constants.MaxLogSize {
		ext := filepath.Ext(constants.LogFileName)
		stem := constants.LogFileName[:len(constants.LogFileName)-len(ext)]
		rotated := filepath.Join(constants.LogDir, fmt.Sprintf("%s-%s%s", stem, time.Now().Format("20060102-150405"), ext))
		os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	log.Printf("geometry-fighter started, pid %d", os.Getpid())
	return f
}
