package engine

import (
	"log/slog"

	"github.com/heroforge/hero-api/internal/catalog"
	"github.com/heroforge/hero-api/internal/entities/hero"
)

// MergeStacks consolidates the flat request list into stack-limited
// item stacks. Existing stacks of the same item are topped up in
// creation order before a new stack is opened, so the sum of quantities
// per item always equals the sum requested.
//
// An unknown item id is a data-quality problem, not a failure: the
// stack limit defaults to 1 and a warning is logged.
func MergeStacks(reg *catalog.Registry, requests []catalog.ItemQuantity) []hero.ItemStack {
	stacks := make([]hero.ItemStack, 0, len(requests))

	for _, req := range requests {
		if req.Quantity <= 0 {
			continue
		}

		limit, known := reg.StackLimit(req.ItemID)
		if !known {
			slog.Warn("item missing from catalog, defaulting stack limit to 1",
				"item_id", req.ItemID)
		}

		remaining := req.Quantity

		// Top up existing stacks first
		for i := range stacks {
			if remaining <= 0 {
				break
			}
			if stacks[i].ItemID != req.ItemID || stacks[i].Quantity >= limit {
				continue
			}
			add := min(remaining, limit-stacks[i].Quantity)
			stacks[i].Quantity += add
			remaining -= add
		}

		// Open new stacks for what is left
		for remaining > 0 {
			size := min(remaining, limit)
			stacks = append(stacks, hero.ItemStack{ItemID: req.ItemID, Quantity: size})
			remaining -= size
		}
	}

	return stacks
}
