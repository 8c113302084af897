package service

import (
	"sort"
	"time"

	"stocksight/internal/entity"

	"github.com/patrickmn/go-cache"
)

type recentEntry struct {
	stock    entity.StockData
	viewedAt time.Time
}

// RecentStocks remembers the stocks looked up on the home page for a limited
// time. Only the newest limit entries are kept.
type RecentStocks struct {
	inmemoryCache *cache.Cache
	limit         int
	now           func() time.Time
}

// NewRecentStocks creates a list whose entries expire after ttl.
func NewRecentStocks(ttl time.Duration, limit int) *RecentStocks {
	if limit <= 0 {
		limit = 5
	}
	return &RecentStocks{
		inmemoryCache: cache.New(ttl, 2*ttl),
		limit:         limit,
		now:           time.Now,
	}
}

// Add records stock as just viewed, replacing an older entry for the symbol.
func (r *RecentStocks) Add(stock entity.StockData) {
	r.inmemoryCache.SetDefault(stock.Symbol, recentEntry{stock: stock, viewedAt: r.now()})

	entries := r.sorted()
	for _, e := range entries[min(len(entries), r.limit):] {
		r.inmemoryCache.Delete(e.stock.Symbol)
	}
}

// List returns the live entries, most recently viewed first.
func (r *RecentStocks) List() []entity.StockData {
	entries := r.sorted()
	if len(entries) > r.limit {
		entries = entries[:r.limit]
	}
	stocks := make([]entity.StockData, len(entries))
	for i, e := range entries {
		stocks[i] = e.stock
	}
	return stocks
}

func (r *RecentStocks) sorted() []recentEntry {
	items := r.inmemoryCache.Items()
	entries := make([]recentEntry, 0, len(items))
	for _, item := range items {
		if e, ok := item.Object.(recentEntry); ok {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].viewedAt.After(entries[j].viewedAt)
	})
	return entries
}
