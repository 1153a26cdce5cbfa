package compress

import (
	"fmt"

	"github.com/kronosnet/knet/cmn"
)

// modelDescriptor is one row of the static model table: an immutable
// name/id/builtIn triple plus the bookkeeping fields the registry mutates
// under Registry.mu (loaded, libref) and the factory used to construct the
// back-end's Adapter singleton.
//
// Wire stability: once a row's id ships, it is never reused or reassigned,
// even if the row is later built with builtIn=false in some build
// configuration.
type modelDescriptor struct {
	name    string
	id      uint8
	builtIn bool
	newFn   func() Adapter // nil for "none"; a compiled-out codec's stub constructor returns nil and is never called

	// mutated only under Registry.mu
	loaded  bool
	libref  int
	adapter Adapter // the loaded singleton; nil unless loaded
}

// modelTable is the static, ordered, append-only registry. Index i always
// equals row i's id for every row actually present — lookups below rely on
// this direct-index correspondence. A row built with builtIn=false (see
// the per-codec stub files behind "no_<codec>" build tags) is how a codec
// can be compiled out of a build without shifting every id after it.
var modelTable = buildModelTable()

var maxModel uint8

func buildModelTable() []modelDescriptor {
	t := []modelDescriptor{
		{name: "none", id: 0, builtIn: true, newFn: nil},
		{name: "zlib", id: 1, builtIn: zlibBuiltIn, newFn: newZlibAdapter},
		{name: "lz4", id: 2, builtIn: lz4BuiltIn, newFn: newLZ4Adapter},
		{name: "lz4hc", id: 3, builtIn: lz4hcBuiltIn, newFn: newLZ4HCAdapter},
		{name: "lzo2", id: 4, builtIn: lzo2BuiltIn, newFn: newLZO2Adapter},
		{name: "lzma", id: 5, builtIn: lzmaBuiltIn, newFn: newLZMAAdapter},
		{name: "bzip2", id: 6, builtIn: bzip2BuiltIn, newFn: newBzip2Adapter},
	}
	cmn.AssertMsg(len(t) <= MaxCompressMethods,
		fmt.Sprintf("model table has %d rows, exceeds MaxCompressMethods=%d", len(t), MaxCompressMethods))
	for i, row := range t {
		cmn.AssertMsg(int(row.id) == i,
			fmt.Sprintf("model table row %d (%s) has non-positional id %d", i, row.name, row.id))
		cmn.Assert(row.id != sentinelModelID)
		if row.id > maxModel {
			maxModel = row.id
		}
	}
	return t
}

// ModelInfo is the read-only view of a Model Table row exposed to callers
// outside this package (diagnostics, the knetcompress CLI).
type ModelInfo struct {
	Name    string
	ID      uint8
	BuiltIn bool
}

// Models returns the static model table as a snapshot of ModelInfo values,
// in id order.
func Models() []ModelInfo {
	out := make([]ModelInfo, len(modelTable))
	for i, row := range modelTable {
		out[i] = ModelInfo{Name: row.name, ID: row.id, BuiltIn: row.builtIn}
	}
	return out
}

// lookupByName resolves a configuration-time model name to its row index
// with a linear scan; the table has at most MaxCompressMethods rows, so
// this is cheaper in practice than maintaining a separate name index.
func lookupByName(name string) (int, bool) {
	for i := range modelTable {
		if modelTable[i].name == name {
			return i, true
		}
	}
	return 0, false
}

// lookupByID resolves a wire-received model_id to its row index, rejecting
// ids beyond maxModel outright (the caller still must separately check
// builtIn, since a gap row is a valid index but never selectable).
func lookupByID(id uint8) (int, bool) {
	if id > maxModel {
		return 0, false
	}
	if int(id) >= len(modelTable) {
		return 0, false
	}
	return int(id), true
}
