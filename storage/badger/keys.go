package badger

import (
	"fmt"

	"github.com/selera/menurec/core"
)

// Key prefixes for different data types
const (
	snapshotPrefix     = "catsnap"
	snapshotMetaPrefix = "catmeta"
	snapshotVersionSeq = "catsnapseq"
	currentVersionKey  = "catcur"
)

// makeSnapshotKey generates a key for a full snapshot by version.
func makeSnapshotKey(version core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", snapshotPrefix, version))
}

// makeSnapshotMetaKey generates a key for snapshot metadata by version.
// Metadata is stored separately so version listings avoid loading records.
func makeSnapshotMetaKey(version core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", snapshotMetaPrefix, version))
}

// makeCurrentVersionKey generates the key of the current-version pointer.
func makeCurrentVersionKey() []byte {
	return []byte(currentVersionKey)
}
