// SPDX-License-Identifier: MIT
// File: ipc.go
// Role: single-record Arrow IPC files for population and contacts records.

package tabular

import (
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// WriteIPC writes rec as an Arrow IPC file with one record batch.
// Schema metadata (the contacts layer keys) travels with the file.
func WriteIPC(w io.Writer, mem memory.Allocator, rec arrow.Record) error {
	if rec == nil {
		return fmt.Errorf("WriteIPC: %w", ErrNilInput)
	}
	if mem == nil {
		mem = memory.DefaultAllocator
	}

	fw, err := ipc.NewFileWriter(w, ipc.WithSchema(rec.Schema()), ipc.WithAllocator(mem))
	if err != nil {
		return fmt.Errorf("WriteIPC: %w", err)
	}
	if err = fw.Write(rec); err != nil {
		_ = fw.Close()
		return fmt.Errorf("WriteIPC: %w", err)
	}
	if err = fw.Close(); err != nil {
		return fmt.Errorf("WriteIPC: %w", err)
	}

	return nil
}

// ReadIPC returns the first record batch of an Arrow IPC file. The record
// is retained past the reader; the caller releases it.
func ReadIPC(r ipc.ReadAtSeeker, mem memory.Allocator) (arrow.Record, error) {
	if r == nil {
		return nil, fmt.Errorf("ReadIPC: %w", ErrNilInput)
	}
	if mem == nil {
		mem = memory.DefaultAllocator
	}

	fr, err := ipc.NewFileReader(r, ipc.WithAllocator(mem))
	if err != nil {
		return nil, fmt.Errorf("ReadIPC: %w", err)
	}
	defer fr.Close()

	if fr.NumRecords() == 0 {
		return nil, fmt.Errorf("ReadIPC: %w", ErrNoRecord)
	}
	rec, err := fr.Record(0)
	if err != nil {
		return nil, fmt.Errorf("ReadIPC: %w", err)
	}
	rec.Retain()

	return rec, nil
}
