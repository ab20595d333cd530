// Package cdparanoia wraps the cdparanoia CLI used to extract raw audio
// tracks from the disc in the drive.
//
// The client never builds shell strings; cdparanoia runs with an argv array
// and its working directory set to the destination, so filenames and titles
// cannot leak into a shell. An Executor seam keeps the client testable
// without a drive.
package cdparanoia
