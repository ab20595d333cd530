// Package matching pairs ordered song titles with the audio files in an
// album directory.
//
// The heuristic is positional and substring-based: track N matches a file
// whose stem contains the decimal string N or the literal title. Titles are
// processed from last to first so that low track numbers (which are
// substrings of higher ones, "1" of "11") are claimed only after the files
// carrying the higher numbers are gone. Ambiguity is never resolved
// silently; it is a typed error naming the conflicting candidates.
package matching
