package main

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	gap "github.com/muesli/go-app-paths"
)

func getLogFilePath() (string, error) {
	if envConfig.LogFile != "" {
		return envConfig.LogFile, nil
	}
	dir, err := gap.NewScope(gap.User, "fmtt").CacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "fmtt.log"), nil
}

func setupLog() (func() error, error) {
	noop := func() error { return nil }

	// Log to file, if set
	logFile, err := getLogFilePath()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		// log disabled
		return noop, nil
	}
	f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		// log disabled
		return noop, nil
	}
	log.SetOutput(f)
	log.SetLevel(log.DebugLevel)
	return f.Close, nil
}
