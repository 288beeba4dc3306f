package main

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/peterh/liner"
)

// historian is the history part of *liner.State.
type historian interface {
	ReadHistory(r io.Reader) (int, error)
	WriteHistory(w io.Writer) (int, error)
}

var _ historian = (*liner.State)(nil)

// loadHistory reads the history file name into h. A missing file is not an
// error, nor is an empty name.
func loadHistory(h historian, name string) error {
	if name == "" {
		return nil
	}
	f, err := os.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	defer f.Close()
	_, err = h.ReadHistory(f)
	return err
}

// saveHistory writes the history in h to the file name, if name is not empty.
func saveHistory(h historian, name string) error {
	if name == "" {
		return nil
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if _, err := h.WriteHistory(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
