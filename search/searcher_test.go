package search

import (
	"testing"

	"github.com/selera/menurec/core"
	"github.com/selera/menurec/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSearcher(t *testing.T) *Searcher {
	t.Helper()
	s, err := NewSearcher(taxonomy.Default())
	require.NoError(t, err)
	return s
}

func menuCatalog() []core.MenuRecord {
	return []core.MenuRecord{
		{Id: 1, Title: "Ikan Bakar Pedas", Ingredients: "ikan kakap, cabai merah, kecap", Description: "ikan bakar dengan sambal", NumericPrice: 35000, Available: true},
		{Id: 2, Title: "Ayam Goreng Kremes", Ingredients: "ayam, tepung, bumbu kuning", Description: "ayam goreng dengan kremesan gurih", NumericPrice: 25000, Available: true},
		{Id: 3, Title: "Tahu Goreng Crispy", Ingredients: "tahu, tepung terigu", Description: "tahu goreng renyah", NumericPrice: 12000, Available: true},
		{Id: 4, Title: "Tahu Telur Spesial", Ingredients: "tahu, telur, ayam suwir", Description: "tahu telur dengan topping", NumericPrice: 18000, Available: true},
		{Id: 5, Title: "Rendang Sapi", Ingredients: "daging sapi, santan, cabai", Description: "rendang khas padang", NumericPrice: 40000, Available: true},
		{Id: 6, Title: "Soto Ayam Lamongan", Ingredients: "ayam, kuah kaldu, koya", Description: "soto ayam berkuah segar", NumericPrice: 20000, Available: true},
	}
}

func matchIds(matches []Match) []core.ID {
	ids := make([]core.ID, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.Record.Id)
	}
	return ids
}

func TestNewSearcher(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		s, err := NewSearcher(taxonomy.Default())
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("nil taxonomy", func(t *testing.T) {
		_, err := NewSearcher(nil)
		assert.Equal(t, ErrTaxonomyRequired, err)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		s, err := NewSearcher(taxonomy.Default(), WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxResults = 0
		_, err := NewSearcher(taxonomy.Default(), WithConfig(cfg))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestSearch_MultiCategoryQuery(t *testing.T) {
	s := newTestSearcher(t)

	result := s.Search("ikan bakar pedas", menuCatalog())

	assert.Equal(t, []string{"ikan"}, result.Features[core.CategoryProtein])
	assert.Equal(t, []string{"bakar"}, result.Features[core.CategoryCookingMethod])
	assert.Equal(t, []string{"pedas"}, result.Features[core.CategoryFlavor])

	assert.True(t, result.Profile.IsMultiCategory)
	assert.False(t, result.Profile.IsMultiValue)
	assert.Equal(t, 3, result.Profile.TotalValues)

	// Only the fully matching record clears the 0.75 satisfaction bar.
	require.Equal(t, []core.ID{1}, matchIds(result.Matches))
	top := result.Matches[0].Breakdown
	assert.Equal(t, 3, top.RequirementsMet)
	assert.InDelta(t, 1.0, top.SatisfactionRatio, 1e-9)
}

func TestSearch_VegetarianPrefilter(t *testing.T) {
	s := newTestSearcher(t)

	result := s.Search("vegetarian", menuCatalog())

	assert.True(t, result.VegetarianQuery)
	assert.Equal(t, []string{"vegetarian"}, result.Features[core.CategoryProtein])

	// Only the pure tofu dish survives; the tahu+ayam record is excluded even
	// though it contains a vegetarian keyword.
	require.Equal(t, []core.ID{3}, matchIds(result.Matches))
	for _, m := range result.Matches {
		assert.NotEqual(t, core.ID(4), m.Record.Id)
	}
}

func TestSearch_NoSignalQuery(t *testing.T) {
	s := newTestSearcher(t)

	result := s.Search("xyz qwerty", menuCatalog())
	assert.Empty(t, result.Matches)
	assert.Empty(t, result.Features)
	assert.Zero(t, result.Profile.TotalValues)
}

func TestSearch_EmptyInputs(t *testing.T) {
	s := newTestSearcher(t)

	t.Run("empty query", func(t *testing.T) {
		result := s.Search("", menuCatalog())
		assert.Empty(t, result.Matches)
	})

	t.Run("empty catalog", func(t *testing.T) {
		result := s.Search("ayam goreng", nil)
		assert.Empty(t, result.Matches)
	})
}

func TestSearch_Deterministic(t *testing.T) {
	s := newTestSearcher(t)

	first := s.Search("ayam pedas", menuCatalog())
	second := s.Search("ayam pedas", menuCatalog())
	assert.Equal(t, first, second)
}

func TestSearch_SortOrder(t *testing.T) {
	s := newTestSearcher(t)

	result := s.Search("ayam", menuCatalog())
	require.NotEmpty(t, result.Matches)
	for i := 1; i < len(result.Matches); i++ {
		prev, cur := result.Matches[i-1].Breakdown, result.Matches[i].Breakdown
		assert.GreaterOrEqual(t, prev.TotalScore, cur.TotalScore)
		if prev.TotalScore == cur.TotalScore {
			assert.GreaterOrEqual(t, prev.RelevanceScore, cur.RelevanceScore)
		}
	}
}

func TestSearch_MatchedTagsAreSubsets(t *testing.T) {
	s := newTestSearcher(t)

	result := s.Search("ayam goreng gurih", menuCatalog())
	require.NotEmpty(t, result.Matches)
	for _, m := range result.Matches {
		for category, detail := range m.Breakdown.MatchDetails {
			for _, tag := range detail.Matched {
				assert.Contains(t, detail.Required, tag, "category %s", category)
				assert.Contains(t, detail.Found, tag, "category %s", category)
			}
		}
	}
}

func TestMatchRanksHigher(t *testing.T) {
	t.Run("total score wins", func(t *testing.T) {
		a := Match{Breakdown: core.ScoreBreakdown{TotalScore: 120, RelevanceScore: 10}}
		b := Match{Breakdown: core.ScoreBreakdown{TotalScore: 100, RelevanceScore: 90}}
		assert.True(t, matchRanksHigher(a, b))
		assert.False(t, matchRanksHigher(b, a))
	})

	t.Run("relevance breaks ties", func(t *testing.T) {
		a := Match{Breakdown: core.ScoreBreakdown{TotalScore: 100, RelevanceScore: 50}}
		b := Match{Breakdown: core.ScoreBreakdown{TotalScore: 100, RelevanceScore: 25}}
		assert.True(t, matchRanksHigher(a, b))
		assert.False(t, matchRanksHigher(b, a))
	})
}

// recordingMonitor captures pipeline callbacks for assertions.
type recordingMonitor struct {
	started         bool
	prefilterKind   string
	prefilterCount  int
	fallbackApplied bool
	scored          int
	finished        bool
}

func (m *recordingMonitor) Start(_ string) { m.started = true }
func (m *recordingMonitor) QueryAnalyzed(_ core.FeatureSet, _ core.QueryRequirementProfile) {}
func (m *recordingMonitor) PrefilterApplied(kind string, remaining int) {
	m.prefilterKind = kind
	m.prefilterCount = remaining
}
func (m *recordingMonitor) PrefilterFallback(_ int) { m.fallbackApplied = true }
func (m *recordingMonitor) RecordScored(_ *core.MenuRecord, _ *core.ScoreBreakdown) {
	m.scored++
}
func (m *recordingMonitor) Finish(_ []Match) { m.finished = true }

func TestSearchWithMonitor(t *testing.T) {
	s := newTestSearcher(t)

	t.Run("reports prefilter", func(t *testing.T) {
		monitor := &recordingMonitor{}
		s.SearchWithMonitor("vegetarian", menuCatalog(), monitor)
		assert.True(t, monitor.started)
		assert.Equal(t, PrefilterVegetarian, monitor.prefilterKind)
		assert.Equal(t, 1, monitor.prefilterCount)
		assert.False(t, monitor.fallbackApplied)
		assert.True(t, monitor.finished)
	})

	t.Run("falls back to full catalog when prefilter empties", func(t *testing.T) {
		// No record in this catalog passes the seafood prefilter.
		catalog := []core.MenuRecord{
			{Id: 10, Title: "Ayam Goreng", Ingredients: "ayam"},
			{Id: 11, Title: "Tempe Bacem", Ingredients: "tempe"},
		}
		monitor := &recordingMonitor{}
		s.SearchWithMonitor("menu seafood laut", catalog, monitor)
		assert.Equal(t, PrefilterSeafood, monitor.prefilterKind)
		assert.Equal(t, 0, monitor.prefilterCount)
		assert.True(t, monitor.fallbackApplied)
		assert.Equal(t, len(catalog), monitor.scored)
	})
}
