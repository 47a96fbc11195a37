// Package filesystem provides the filesystem operations used to snapshot
// directory trees and to materialize links.
//
// The FS interface keeps the collector and the linker independent of the
// operating system so tests can inject failures; NewOS returns the real
// implementation.
package filesystem
