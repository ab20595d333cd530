// Package ffmpeg wraps the ffmpeg CLI for converting raw .wav tracks into
// .mp3 files.
//
// Conversion produces a sibling file with the same stem and a .mp3
// extension in the chosen output directory. Overwrite policy is decided by
// the caller; the client itself always passes -y because the pipeline has
// already confirmed by the time it invokes ffmpeg.
package ffmpeg
