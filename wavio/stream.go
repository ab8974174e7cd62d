// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wavio loads and saves uncompressed PCM WAVE files into the
// canonical Signal representation the resample package operates on.
package wavio

import (
	"bytes"
	"io"
	"os"
)

// Stream is the virtual byte-stream capability the loader and saver read
// and write through, so that a WAVE can come from an OS file, an
// in-memory block, or any other io.ReadWriteSeeker-backed source without
// the conversion logic caring which.
type Stream interface {
	io.Reader
	io.Writer
	io.Seeker
	Tell() (int64, error)
}

// fileStream adapts an *os.File to Stream.
type fileStream struct {
	f *os.File
}

// OpenFile opens an OS file for reading as a Stream.
func OpenFile(path string) (Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ioErr{op: "open", path: path, err: err}
	}
	return &fileStream{f: f}, nil
}

// CreateFile creates (or truncates) an OS file for writing as a Stream.
func CreateFile(path string) (Stream, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, &ioErr{op: "create", path: path, err: err}
	}
	return &fileStream{f: f}, nil
}

func (s *fileStream) Read(p []byte) (int, error)  { return s.f.Read(p) }
func (s *fileStream) Write(p []byte) (int, error) { return s.f.Write(p) }
func (s *fileStream) Seek(offset int64, whence int) (int64, error) {
	return s.f.Seek(offset, whence)
}
func (s *fileStream) Tell() (int64, error) { return s.f.Seek(0, io.SeekCurrent) }
func (s *fileStream) Close() error         { return s.f.Close() }

// memStream is an in-memory byte-block backend, used by tests and by
// callers that already hold a WAVE in memory (e.g. received over a
// network) rather than on disk.
type memStream struct {
	buf *bytes.Reader
	out *bytes.Buffer
	pos int64
}

// NewMemReader wraps an in-memory byte block for reading as a Stream.
func NewMemReader(data []byte) Stream {
	return &memStream{buf: bytes.NewReader(data)}
}

// NewMemWriter returns a Stream that accumulates written bytes into an
// in-memory, seekable byte block, retrievable via Bytes. Seeking and
// rewriting earlier bytes is supported because the WAVE encoder patches
// the RIFF and data chunk sizes after streaming the samples.
func NewMemWriter() *MemWriter {
	return &MemWriter{}
}

// MemWriter is the writable, seekable in-memory backend.
type MemWriter struct {
	data []byte
	pos  int64
}

func (m *MemWriter) Write(p []byte) (int, error) {
	end := m.pos + int64(len(p))
	if end > int64(len(m.data)) {
		grown := make([]byte, end)
		copy(grown, m.data)
		m.data = grown
	}
	n := copy(m.data[m.pos:end], p)
	m.pos = end
	return n, nil
}
func (m *MemWriter) Read(p []byte) (int, error) { return 0, io.EOF }
func (m *MemWriter) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = m.pos
	case io.SeekEnd:
		base = int64(len(m.data))
	}
	m.pos = base + offset
	return m.pos, nil
}
func (m *MemWriter) Tell() (int64, error) { return m.pos, nil }
func (m *MemWriter) Bytes() []byte        { return m.data }

func (m *memStream) Read(p []byte) (int, error) {
	n, err := m.buf.Read(p)
	m.pos += int64(n)
	return n, err
}
func (m *memStream) Write(p []byte) (int, error) { return 0, io.ErrClosedPipe }
func (m *memStream) Seek(offset int64, whence int) (int64, error) {
	pos, err := m.buf.Seek(offset, whence)
	m.pos = pos
	return pos, err
}
func (m *memStream) Tell() (int64, error) { return m.pos, nil }

// VFS is a named-blob virtual filesystem: a set of sounds addressed by
// name rather than by OS path, the same role mwav.h's PHYSFS-backed
// wavLoadPFile/wavSavePFile play alongside its stdio and raw-memory
// backends. Nothing in the retrieved corpus vendors a PHYSFS binding, so
// the archive itself is just an in-process map rather than a mounted
// file; a caller that wants persistence can still serialize the blobs
// by hand.
type VFS struct {
	files map[string][]byte
}

// NewVFS returns an empty virtual filesystem.
func NewVFS() *VFS {
	return &VFS{files: make(map[string][]byte)}
}

// OpenVFSFile opens a named blob in fs for reading as a Stream.
func OpenVFSFile(fs *VFS, name string) (Stream, error) {
	data, ok := fs.files[name]
	if !ok {
		return nil, &ioErr{op: "open", path: name, err: os.ErrNotExist}
	}
	return &memStream{buf: bytes.NewReader(data)}, nil
}

// CreateVFSFile returns a Stream that, once closed, stores its accumulated
// bytes in fs under name.
func CreateVFSFile(fs *VFS, name string) Stream {
	return &vfsWriteStream{fs: fs, name: name, w: NewMemWriter()}
}

// vfsWriteStream buffers writes in memory and commits them to its VFS on
// Close, mirroring PHYSFS's write-then-flush-on-close archive semantics.
type vfsWriteStream struct {
	fs   *VFS
	name string
	w    *MemWriter
}

func (s *vfsWriteStream) Read(p []byte) (int, error)  { return s.w.Read(p) }
func (s *vfsWriteStream) Write(p []byte) (int, error) { return s.w.Write(p) }
func (s *vfsWriteStream) Seek(offset int64, whence int) (int64, error) {
	return s.w.Seek(offset, whence)
}
func (s *vfsWriteStream) Tell() (int64, error) { return s.w.Tell() }
func (s *vfsWriteStream) Close() error {
	s.fs.files[s.name] = s.w.Bytes()
	return nil
}
