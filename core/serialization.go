// Copyright 2025 Selera Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the persisted domain types. Hand-written against the
// mus-go primitives; field order is part of the storage format and must not
// change without a schema tag bump.
var (
	IDMUS               = idMUS{}
	MenuRecordMUS       = menuRecordMUS{}
	SnapshotMetadataMUS = snapshotMetadataMUS{}
	CatalogSnapshotMUS  = catalogSnapshotMUS{}

	vectorMUS     = ord.NewSliceSer[float32](raw.Float32)
	stringListMUS = ord.NewSliceSer[string](ord.String)
	recordListMUS = ord.NewSliceSer[MenuRecord](MenuRecordMUS)
)

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

type menuRecordMUS struct{}

func (menuRecordMUS) Marshal(record MenuRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(record.Id, bs)
	n += ord.String.Marshal(record.Title, bs[n:])
	n += ord.String.Marshal(record.Ingredients, bs[n:])
	n += ord.String.Marshal(record.Description, bs[n:])
	n += ord.String.Marshal(record.Price, bs[n:])
	n += varint.Int.Marshal(record.NumericPrice, bs[n:])
	n += ord.String.Marshal(record.Image, bs[n:])
	n += ord.Bool.Marshal(record.Available, bs[n:])
	n += vectorMUS.Marshal(record.Vector, bs[n:])
	return n
}

func (menuRecordMUS) Unmarshal(bs []byte) (record MenuRecord, n int, err error) {
	var n1 int
	if record.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if record.Title, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return record, n + n1, err
	}
	n += n1
	if record.Ingredients, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return record, n + n1, err
	}
	n += n1
	if record.Description, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return record, n + n1, err
	}
	n += n1
	if record.Price, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return record, n + n1, err
	}
	n += n1
	if record.NumericPrice, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return record, n + n1, err
	}
	n += n1
	if record.Image, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return record, n + n1, err
	}
	n += n1
	if record.Available, n1, err = ord.Bool.Unmarshal(bs[n:]); err != nil {
		return record, n + n1, err
	}
	n += n1
	record.Vector, n1, err = vectorMUS.Unmarshal(bs[n:])
	return record, n + n1, err
}

func (menuRecordMUS) Size(record MenuRecord) (size int) {
	size = IDMUS.Size(record.Id)
	size += ord.String.Size(record.Title)
	size += ord.String.Size(record.Ingredients)
	size += ord.String.Size(record.Description)
	size += ord.String.Size(record.Price)
	size += varint.Int.Size(record.NumericPrice)
	size += ord.String.Size(record.Image)
	size += ord.Bool.Size(record.Available)
	size += vectorMUS.Size(record.Vector)
	return size
}

func (menuRecordMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = IDMUS.Skip(bs); err != nil {
		return
	}
	for i := 0; i < 4; i++ {
		if n1, err = ord.String.Skip(bs[n:]); err != nil {
			return n + n1, err
		}
		n += n1
	}
	if n1, err = varint.Int.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = ord.String.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = ord.Bool.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	n1, err = vectorMUS.Skip(bs[n:])
	return n + n1, err
}

type snapshotMetadataMUS struct{}

func (snapshotMetadataMUS) Marshal(metadata SnapshotMetadata, bs []byte) (n int) {
	n = IDMUS.Marshal(metadata.Version, bs)
	n += ord.String.Marshal(metadata.SchemaTag, bs[n:])
	n += varint.Int.Marshal(metadata.TotalRecords, bs[n:])
	n += varint.Int64.Marshal(metadata.LastUpdated.UnixNano(), bs[n:])
	n += ord.String.Marshal(metadata.EmbeddingModel, bs[n:])
	n += stringListMUS.Marshal(metadata.FeatureFlags, bs[n:])
	return n
}

func (snapshotMetadataMUS) Unmarshal(bs []byte) (metadata SnapshotMetadata, n int, err error) {
	var n1 int
	if metadata.Version, n, err = IDMUS.Unmarshal(bs); err != nil {
		return
	}
	if metadata.SchemaTag, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return metadata, n + n1, err
	}
	n += n1
	if metadata.TotalRecords, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return metadata, n + n1, err
	}
	n += n1
	var nanos int64
	if nanos, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return metadata, n + n1, err
	}
	n += n1
	metadata.LastUpdated = time.Unix(0, nanos).UTC()
	if metadata.EmbeddingModel, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return metadata, n + n1, err
	}
	n += n1
	metadata.FeatureFlags, n1, err = stringListMUS.Unmarshal(bs[n:])
	return metadata, n + n1, err
}

func (snapshotMetadataMUS) Size(metadata SnapshotMetadata) (size int) {
	size = IDMUS.Size(metadata.Version)
	size += ord.String.Size(metadata.SchemaTag)
	size += varint.Int.Size(metadata.TotalRecords)
	size += varint.Int64.Size(metadata.LastUpdated.UnixNano())
	size += ord.String.Size(metadata.EmbeddingModel)
	size += stringListMUS.Size(metadata.FeatureFlags)
	return size
}

func (snapshotMetadataMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = IDMUS.Skip(bs); err != nil {
		return
	}
	if n1, err = ord.String.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = varint.Int.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = varint.Int64.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	if n1, err = ord.String.Skip(bs[n:]); err != nil {
		return n + n1, err
	}
	n += n1
	n1, err = stringListMUS.Skip(bs[n:])
	return n + n1, err
}

type catalogSnapshotMUS struct{}

func (catalogSnapshotMUS) Marshal(snapshot CatalogSnapshot, bs []byte) (n int) {
	n = recordListMUS.Marshal(snapshot.Records, bs)
	n += SnapshotMetadataMUS.Marshal(snapshot.Metadata, bs[n:])
	return n
}

func (catalogSnapshotMUS) Unmarshal(bs []byte) (snapshot CatalogSnapshot, n int, err error) {
	var n1 int
	if snapshot.Records, n, err = recordListMUS.Unmarshal(bs); err != nil {
		return
	}
	snapshot.Metadata, n1, err = SnapshotMetadataMUS.Unmarshal(bs[n:])
	return snapshot, n + n1, err
}

func (catalogSnapshotMUS) Size(snapshot CatalogSnapshot) int {
	return recordListMUS.Size(snapshot.Records) + SnapshotMetadataMUS.Size(snapshot.Metadata)
}

func (catalogSnapshotMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	if n, err = recordListMUS.Skip(bs); err != nil {
		return
	}
	n1, err = SnapshotMetadataMUS.Skip(bs[n:])
	return n + n1, err
}
