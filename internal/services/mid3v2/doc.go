// Package mid3v2 wraps the mid3v2 CLI used to read and write ID3 tags on
// .mp3 files.
//
// Only the fields present in a Tags value become flags, so existing tags on
// the file are left untouched. Values are passed as argv entries, never
// interpolated into a shell.
package mid3v2
