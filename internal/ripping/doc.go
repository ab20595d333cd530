// Package ripping drives the external ripper once per disc and collects
// every disc's tracks into one continuously numbered raw-track directory.
//
// Discs are processed strictly in sequence: wait for the operator to load
// disc n, rip it into a scratch directory, then relocate each track into
// <album>/raw with the disc prefix and the running track offset applied.
// A ripper failure aborts the whole sequence; re-reading damaged media by
// retrying the same invocation does not help.
package ripping
