package log

import (
	"os"
	"path/filepath"
)

// FileWriter appends log output to a file, creating parent directories as needed.
type FileWriter struct {
	f *os.File
}

func NewFileWriter(pathname string) (*FileWriter, error) {
	if dir := filepath.Dir(pathname); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	f, err := os.OpenFile(pathname, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	return &FileWriter{f: f}, nil
}

func (w *FileWriter) Write(p []byte) (int, error) {
	return w.f.Write(p)
}

func (w *FileWriter) Close() error {
	if w.f == nil {
		return nil
	}
	err := w.f.Close()
	w.f = nil
	return err
}
