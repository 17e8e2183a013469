package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// rollingFile is a single destination file with size-based rotation.
// Callers serialize access; rollingFile itself holds no lock.
type rollingFile struct {
	filename    string
	file        *os.File
	maxSize     int64
	maxBackups  int
	currentSize int64
}

// openRollingFile opens (or creates) the destination file for
// appending and records its current size.
func openRollingFile(filename string, maxSize int64, maxBackups int) (*rollingFile, error) {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		if cerr := file.Close(); cerr != nil {
			return nil, cerr
		}
		return nil, err
	}

	return &rollingFile{
		filename:    filename,
		file:        file,
		maxSize:     maxSize,
		maxBackups:  maxBackups,
		currentSize: info.Size(),
	}, nil
}

// write appends one record, rotating first when the file has reached
// its size limit.
func (f *rollingFile) write(rec []byte) error {
	if err := f.rotateIfNeeded(); err != nil {
		return err
	}

	n, err := f.file.Write(rec)
	if err == nil {
		f.currentSize += int64(n)
	}
	return err
}

// rotateIfNeeded checks and performs rotation if needed
func (f *rollingFile) rotateIfNeeded() error {
	if f.maxSize <= 0 || f.currentSize < f.maxSize {
		return nil
	}
	return f.rotate()
}

// rotate performs the actual file rotation
func (f *rollingFile) rotate() error {
	// Sync and close current file
	if err := f.file.Sync(); err != nil {
		return err
	}
	if err := f.file.Close(); err != nil {
		return err
	}

	// Rename current file with timestamp
	timestamp := time.Now().Format("2006-01-02T15-04-05")
	rotatedName := fmt.Sprintf("%s.%s", f.filename, timestamp)

	if err := os.Rename(f.filename, rotatedName); err != nil {
		// If rename fails, try to reopen the original file
		file, openErr := os.OpenFile(f.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if openErr != nil {
			return fmt.Errorf("rotation failed: %v, reopen failed: %v", err, openErr)
		}
		f.file = file
		return err
	}

	// Clean up old backups if needed
	if f.maxBackups > 0 {
		f.cleanupOldBackups()
	}

	// Open new file
	file, err := os.OpenFile(f.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	f.file = file
	f.currentSize = 0

	return nil
}

// cleanupOldBackups removes the oldest backup files beyond maxBackups
func (f *rollingFile) cleanupOldBackups() {
	dir := filepath.Dir(f.filename)
	base := filepath.Base(f.filename)

	// Find all backup files
	pattern := filepath.Join(dir, base+".*")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return
	}

	// Filter to only timestamp-based backups
	var backups []string
	for _, match := range matches {
		if strings.HasPrefix(filepath.Base(match), base+".") {
			backups = append(backups, match)
		}
	}

	// Sort by modification time (oldest first)
	sort.Slice(backups, func(i, j int) bool {
		infoI, errI := os.Stat(backups[i])
		infoJ, errJ := os.Stat(backups[j])
		if errI != nil || errJ != nil {
			return false
		}
		return infoI.ModTime().Before(infoJ.ModTime())
	})

	// Remove oldest files if we exceed maxBackups
	if len(backups) > f.maxBackups {
		toRemove := backups[:len(backups)-f.maxBackups]
		for _, file := range toRemove {
			if err := os.Remove(file); err != nil {
				return
			}
		}
	}
}

// close syncs and closes the destination file.
func (f *rollingFile) close() error {
	if f.file == nil {
		return nil
	}
	if err := f.file.Sync(); err != nil {
		_ = f.file.Close()
		return err
	}
	return f.file.Close()
}
