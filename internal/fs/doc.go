// Package fs abstracts the filesystem calls of the local blob store's write
// path so tests can inject I/O failures.
//
//   - [LocalFS]: the os package
//   - [FaultyFS]: wraps another FileSystem and fails writes, syncs, closes or
//     renames on demand
//
// [WriteFile] replaces a file atomically through a FileSystem:
//
//	err := fs.WriteFile(fs.Default, path, data)
//
// Tests inject a [FaultyFS]:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule(".tmp-", fs.Fault{FailOnSync: true})
//
// Reads are not covered; the local store maps files with internal/mmap.
package fs
