// Package album models the per-album JSON metadata file: the ordered song
// titles plus optional artist, album, genre, and date tag values.
package album
