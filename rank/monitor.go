package rank

import "github.com/amnamine/djiblistore/core"

// RankMonitor provides hooks to observe the ranking process.
// Implement this interface to track intermediate steps during a query.
type RankMonitor interface {
	Start(query string)
	AfterNormalization(normalized string)
	Scored(product *core.Product, score float64)
	BelowThreshold(product *core.Product, score float64)
	Finish(results []core.RankedResult)
}

// noopMonitor is a no-op implementation of RankMonitor
type noopMonitor struct{}

var _ RankMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                              {}
func (n *noopMonitor) AfterNormalization(_ string)                 {}
func (n *noopMonitor) Scored(_ *core.Product, _ float64)           {}
func (n *noopMonitor) BelowThreshold(_ *core.Product, _ float64)   {}
func (n *noopMonitor) Finish(_ []core.RankedResult)                {}
