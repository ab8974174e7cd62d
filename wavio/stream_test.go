// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wavio

import (
	"io"
	"path/filepath"
	"testing"
)

func TestMemWriterSeekAndOverwrite(t *testing.T) {
	w := NewMemWriter()
	if _, err := w.Write([]byte("hello world")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := w.Seek(6, io.SeekStart); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	if _, err := w.Write([]byte("WORLD")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := string(w.Bytes()); got != "hello WORLD" {
		t.Fatalf("Bytes() = %q, want %q", got, "hello WORLD")
	}
}

func TestMemReaderRead(t *testing.T) {
	s := NewMemReader([]byte("abcdef"))
	buf := make([]byte, 3)
	n, err := s.Read(buf)
	if err != nil || n != 3 {
		t.Fatalf("Read() = %d, %v, want 3, nil", n, err)
	}
	if string(buf) != "abc" {
		t.Fatalf("Read() = %q, want %q", buf, "abc")
	}
	pos, err := s.Tell()
	if err != nil || pos != 3 {
		t.Fatalf("Tell() = %d, %v, want 3, nil", pos, err)
	}
}

func TestVFSWriteThenRead(t *testing.T) {
	fs := NewVFS()

	w := CreateVFSFile(fs, "voice.wav")
	if _, err := w.Write([]byte("riff-payload")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.(io.Closer).Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := OpenVFSFile(fs, "voice.wav")
	if err != nil {
		t.Fatalf("OpenVFSFile: %v", err)
	}
	buf := make([]byte, len("riff-payload"))
	if _, err := io.ReadFull(r, buf); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(buf) != "riff-payload" {
		t.Fatalf("read %q, want %q", buf, "riff-payload")
	}
}

func TestOpenVFSFileMissingName(t *testing.T) {
	fs := NewVFS()
	if _, err := OpenVFSFile(fs, "missing.wav"); err == nil {
		t.Fatal("OpenVFSFile on a missing name: got nil error, want one")
	}
}

func TestFileStreamRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.bin")

	w, err := CreateFile(path)
	if err != nil {
		t.Fatalf("CreateFile: %v", err)
	}
	if _, err := w.Write([]byte("hello file")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.(io.Closer).Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer r.(io.Closer).Close()
	buf := make([]byte, len("hello file"))
	if _, err := io.ReadFull(r, buf); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(buf) != "hello file" {
		t.Fatalf("read %q, want %q", buf, "hello file")
	}
}
