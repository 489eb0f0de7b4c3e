package search

import "github.com/selera/menurec/core"

// SearchMonitor provides hooks to observe the recommendation pipeline.
// Implement this interface to track intermediate steps during a search.
type SearchMonitor interface {
	Start(query string)
	QueryAnalyzed(features core.FeatureSet, profile core.QueryRequirementProfile)
	PrefilterApplied(kind string, remaining int)
	PrefilterFallback(total int)
	RecordScored(record *core.MenuRecord, breakdown *core.ScoreBreakdown)
	Finish(matches []Match)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                                                 {}
func (n *noopMonitor) QueryAnalyzed(_ core.FeatureSet, _ core.QueryRequirementProfile) {}
func (n *noopMonitor) PrefilterApplied(_ string, _ int)                               {}
func (n *noopMonitor) PrefilterFallback(_ int)                                        {}
func (n *noopMonitor) RecordScored(_ *core.MenuRecord, _ *core.ScoreBreakdown)        {}
func (n *noopMonitor) Finish(_ []Match)                                               {}
