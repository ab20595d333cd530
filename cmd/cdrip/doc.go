// Command cdrip rips audio CDs into an album folder and turns the result
// into tagged .mp3 files.
//
// The two main entry points mirror the workflow: `cdrip rip` drives the
// disc-by-disc extraction into <album>/raw, and `cdrip album` converts,
// matches, and tags the album directory using its JSON metadata file.
package main
