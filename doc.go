// Package bimap implements bidirectional maps: containers of left-right
// pairs indexed in both directions, so that looking up a pair by its left
// value and looking up a pair by its right value are both direct.
//
// Both directions are injective at all times. Inserting a pair first
// evicts any pair holding its left value and any pair holding its right
// value, so a single Insert can displace up to two prior pairs; the
// Overwritten result reports exactly which. TryInsert refuses to displace
// anything and reports the conflicting pairs instead.
//
// Two variants are provided. BiHashMap indexes both directions with hash
// maps and iterates in no particular order. BiTreeMap indexes both
// directions with red-black trees; it iterates in ascending left order
// and supports bounded range scans over either direction.
//
// Both variants marshal to and from JSON and YAML as if they were plain
// maps of their pairs, and unmarshalling replays one insertion per
// document member in document order. A document produced from a source
// that was not itself a bijection can therefore carry the same value
// under several keys; every such document still decodes into a valid
// bidirectional map, and the insertion replay means the document's later
// members win. Decoding {"A":1,"B":2,"C":2} yields a map of length two
// holding A-1 and exactly one of B-2 or C-2, depending on the order the
// decoder delivers members.
//
// Neither variant is safe for concurrent use; guard shared instances with
// a mutex, or confine them to one goroutine.
package bimap
