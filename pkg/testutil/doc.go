// Package testutil provides filesystem helpers for linker tests.
//
// Helpers create real directory trees under t.TempDir() and fail the test on
// any setup error. FaultFS wraps a filesystem.FS and injects errors for
// chosen operations and paths, which is how collector and linker failure
// paths are exercised without permission tricks.
package testutil
