// Package aggregation rebuilds rate slabs and their incentives from the flat rows of
// the slab/incentive left join.
package aggregation

import (
	"github.com/SscSPs/ratechart_app/internal/core/domain"
	"github.com/SscSPs/ratechart_app/internal/models"
	"github.com/SscSPs/ratechart_app/internal/utils/mapping"
)

// AggregateRateSlabs converts rows into slabs in a single forward pass.
//
// Rows sharing a slab id must be contiguous; a change of slab id closes the current
// group. Rows whose slab projection is absent open no group and are skipped, along with
// any incentive they carry. Rows whose incentive projection is absent add nothing.
// The result is never nil.
func AggregateRateSlabs(rows []models.RateSlabRow) []domain.RateSlab {
	slabs := make([]domain.RateSlab, 0)

	var current *domain.RateSlabBuilder
	var currentKey int64
	flush := func() {
		if current != nil {
			slabs = append(slabs, current.Build())
			current = nil
		}
	}

	for _, row := range rows {
		key := slabKey(row)
		if current == nil || key != currentKey {
			flush()
			head, ok := mapping.ToDomainRateSlab(row)
			if !ok {
				continue
			}
			current = domain.NewRateSlabBuilder(head)
			currentKey = key
		}

		if incentive, ok := mapping.ToDomainIncentive(row); ok {
			current.AddIncentive(incentive)
		}
	}
	flush()

	return slabs
}

// RegroupBySlabID makes rows contiguous by slab id. Groups keep the order in which
// their first row appears and rows keep their relative order inside a group, so
// already contiguous input is returned unchanged.
func RegroupBySlabID(rows []models.RateSlabRow) []models.RateSlabRow {
	if isContiguous(rows) {
		return rows
	}

	order := make([]int64, 0)
	groups := make(map[int64][]models.RateSlabRow)
	for _, row := range rows {
		key := slabKey(row)
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], row)
	}

	out := make([]models.RateSlabRow, 0, len(rows))
	for _, key := range order {
		out = append(out, groups[key]...)
	}
	return out
}

func isContiguous(rows []models.RateSlabRow) bool {
	closed := make(map[int64]struct{})
	for i := 1; i < len(rows); i++ {
		prev, key := slabKey(rows[i-1]), slabKey(rows[i])
		if prev == key {
			continue
		}
		closed[prev] = struct{}{}
		if _, ok := closed[key]; ok {
			return false
		}
	}
	return true
}

// slabKey is the group-detection key. NULL ids group with zero ids, both of which
// project to no slab.
func slabKey(row models.RateSlabRow) int64 {
	if row.SlabID == nil {
		return 0
	}
	return *row.SlabID
}
