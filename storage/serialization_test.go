package storage

import (
	"testing"
	"time"

	"github.com/selera/menurec/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	tests := []struct {
		name string
		id   core.ID
	}{
		{"zero ID", core.ID(0)},
		{"small ID", core.ID(42)},
		{"large ID", core.ID(18446744073709551615)}, // max uint64
		{"content-based ID", core.IDFromContent("nasi goreng spesial")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalID(tt.id)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalID(data)
			require.NoError(t, err)
			assert.Equal(t, tt.id, decoded)
		})
	}
}

func TestUnmarshalID_Invalid(t *testing.T) {
	_, err := UnmarshalID([]byte{})
	assert.Error(t, err)
}

func TestMarshalUnmarshalMenuRecord(t *testing.T) {
	tests := []struct {
		name   string
		record *core.MenuRecord
	}{
		{
			name: "minimal record",
			record: &core.MenuRecord{
				Id:        core.ID(1),
				Title:     "Soto Ayam",
				Available: true,
			},
		},
		{
			name: "full record with vector",
			record: &core.MenuRecord{
				Id:           core.IDFromContent("rendang sapi"),
				Title:        "Rendang Sapi",
				Ingredients:  "daging sapi, santan, cabai, rempah",
				Description:  "Daging sapi dimasak lama dengan bumbu padang",
				Price:        "Rp 45.000",
				NumericPrice: 45000,
				Image:        "https://example.com/rendang.jpg",
				Available:    true,
				Vector:       []float32{0.25, -0.5, 0.125, 0.0625},
			},
		},
		{
			name: "unavailable record without vector",
			record: &core.MenuRecord{
				Id:          core.ID(99),
				Title:       "Es Teh Manis",
				Description: "Teh manis dingin",
				Available:   false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalMenuRecord(tt.record)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalMenuRecord(data)
			require.NoError(t, err)
			assert.Equal(t, tt.record, decoded)
		})
	}
}

func TestUnmarshalMenuRecord_Truncated(t *testing.T) {
	record := &core.MenuRecord{
		Id:     core.ID(7),
		Title:  "Gado-Gado",
		Vector: []float32{0.5, 0.5},
	}
	data := MarshalMenuRecord(record)

	_, err := UnmarshalMenuRecord(data[:len(data)/2])
	assert.Error(t, err)
}

func TestMarshalUnmarshalSnapshotMetadata(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	metadata := &core.SnapshotMetadata{
		Version:        core.ID(3),
		SchemaTag:      "v1",
		TotalRecords:   120,
		LastUpdated:    now,
		EmbeddingModel: "embeddinggemma",
		FeatureFlags:   []string{"weighted-search-text", "prefilter"},
	}

	data := MarshalSnapshotMetadata(metadata)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalSnapshotMetadata(data)
	require.NoError(t, err)
	assert.Equal(t, metadata.Version, decoded.Version)
	assert.Equal(t, metadata.SchemaTag, decoded.SchemaTag)
	assert.Equal(t, metadata.TotalRecords, decoded.TotalRecords)
	assert.True(t, metadata.LastUpdated.Equal(decoded.LastUpdated))
	assert.Equal(t, metadata.EmbeddingModel, decoded.EmbeddingModel)
	assert.Equal(t, metadata.FeatureFlags, decoded.FeatureFlags)
}

func TestMarshalUnmarshalCatalogSnapshot(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	snapshot := &core.CatalogSnapshot{
		Records: []core.MenuRecord{
			{
				Id:           core.ID(1),
				Title:        "Ayam Bakar Madu",
				Ingredients:  "ayam, madu, kecap manis",
				Price:        "Rp 35.000",
				NumericPrice: 35000,
				Available:    true,
				Vector:       []float32{0.1, 0.2, 0.3},
			},
			{
				Id:        core.ID(2),
				Title:     "Tahu Isi",
				Available: true,
			},
		},
		Metadata: core.SnapshotMetadata{
			Version:        core.ID(1),
			SchemaTag:      "v1",
			TotalRecords:   2,
			LastUpdated:    now,
			EmbeddingModel: "embeddinggemma",
		},
	}

	data := MarshalCatalogSnapshot(snapshot)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalCatalogSnapshot(data)
	require.NoError(t, err)
	require.Len(t, decoded.Records, 2)
	assert.Equal(t, snapshot.Records, decoded.Records)
	assert.Equal(t, snapshot.Metadata.Version, decoded.Metadata.Version)
	assert.True(t, snapshot.Metadata.LastUpdated.Equal(decoded.Metadata.LastUpdated))
}
