package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, IDFromContent("nasi goreng"), IDFromContent("nasi goreng"))
	})

	t.Run("distinct content yields distinct IDs", func(t *testing.T) {
		assert.NotEqual(t, IDFromContent("nasi goreng"), IDFromContent("mie goreng"))
	})

	t.Run("non-zero for non-trivial content", func(t *testing.T) {
		assert.NotZero(t, IDFromContent("soto ayam"))
	})
}

func TestFeatureSet(t *testing.T) {
	t.Run("Add keeps set semantics", func(t *testing.T) {
		fs := FeatureSet{}
		fs.Add(CategoryProtein, "ayam")
		fs.Add(CategoryProtein, "ayam")
		fs.Add(CategoryProtein, "sapi")

		assert.Equal(t, []string{"ayam", "sapi"}, fs[CategoryProtein])
	})

	t.Run("Has", func(t *testing.T) {
		fs := FeatureSet{}
		fs.Add(CategoryFlavor, "pedas")

		assert.True(t, fs.Has(CategoryFlavor, "pedas"))
		assert.False(t, fs.Has(CategoryFlavor, "manis"))
		assert.False(t, fs.Has(CategoryProtein, "pedas"))
	})

	t.Run("TotalValues counts across categories", func(t *testing.T) {
		fs := FeatureSet{}
		assert.Equal(t, 0, fs.TotalValues())

		fs.Add(CategoryProtein, "ayam")
		fs.Add(CategoryCookingMethod, "goreng")
		fs.Add(CategoryFlavor, "pedas")
		assert.Equal(t, 3, fs.TotalValues())
	})

	t.Run("empty categories stay absent", func(t *testing.T) {
		fs := FeatureSet{}
		fs.Add(CategoryProtein, "ayam")

		_, present := fs[CategoryFlavor]
		assert.False(t, present)
		assert.Len(t, fs, 1)
	})
}

func TestMenuRecordFullText(t *testing.T) {
	record := MenuRecord{
		Title:       "Gado-Gado",
		Ingredients: "sayuran, bumbu kacang",
		Description: "Sayuran rebus dengan saus kacang",
	}
	assert.Equal(t, "Gado-Gado sayuran, bumbu kacang Sayuran rebus dengan saus kacang", record.FullText())
}

func TestValidateMenuRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  *MenuRecord
		wantErr error
	}{
		{"valid", &MenuRecord{Title: "Soto Ayam"}, nil},
		{"nil record", nil, ErrInvalidMenuRecord},
		{"short title", &MenuRecord{Title: "ab"}, ErrShortTitle},
		{"whitespace title", &MenuRecord{Title: "   x   "}, ErrShortTitle},
		{"negative price", &MenuRecord{Title: "Soto Ayam", NumericPrice: -1}, ErrNegativePrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMenuRecord(tt.record)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseNumericPrice(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"Rp 25.000", 25000},
		{"25000", 25000},
		{"Rp25,500", 25500},
		{"harga 12 ribu 500", 12500},
		{"", 0},
		{"gratis", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNumericPrice(tt.input))
		})
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{25000, "Rp 25.000"},
		{1500000, "Rp 1.500.000"},
		{999, "Rp 999"},
		{1000, "Rp 1.000"},
		{0, PriceUnavailable},
		{-5, PriceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.input))
		})
	}
}
