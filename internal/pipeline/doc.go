// Package pipeline runs the album metadata workflow: resolve and load the
// album config, transcode raw tracks to mp3, match titles to files, and
// write tags. Steps run strictly in order and the first failure aborts the
// rest.
package pipeline
