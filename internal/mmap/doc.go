// Package mmap provides read-only memory-mapped file access.
//
// LocalStore maps input files instead of reading them into the heap, so a
// dataset is parsed straight from the page cache.
//
// # Usage
//
//	m, err := mmap.Open("points.txt")
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with madvise(2) sequential hints
//   - Windows: CreateFileMapping/MapViewOfFile (advice is a no-op)
package mmap
