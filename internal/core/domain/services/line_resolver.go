package services

import (
	"foodorder/internal/core/domain/model/item"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// LineRequest is a draft order line as supplied by the client: an item
// reference plus a requested quantity. Quantity zero means "use the
// default of one".
type LineRequest struct {
	ItemID   kernel.UUID
	Quantity int
}

// LineResolver is a domain service that turns draft line requests into
// resolved order lines using authoritative catalog items.
//
// Business rules:
//   - The request list must be non-empty
//   - Every requested item id must resolve; a single missing id fails the
//     whole batch, so no partial orders ever exist
//   - Resolved lines keep the request order, preserving line-item
//     correspondence regardless of how the items were fetched
//   - The authoritative unit price comes from the catalog item, never
//     from the client; the quantity comes from the request
//
// Example:
//
//	resolver := services.NewLineResolver()
//	lines, err := resolver.Resolve(requests, fetchedItems)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // at least one item id does not exist in the catalog
//	}
type LineResolver struct{}

// NewLineResolver creates a LineResolver instance.
func NewLineResolver() LineResolver {
	return LineResolver{}
}

// Resolve matches every request against the fetched items and builds the
// order lines in request order.
//
// Returns a ValueIsRequiredError for an empty request list and an
// ObjectNotFoundError carrying the first unresolved item id.
func (LineResolver) Resolve(requests []LineRequest, items []*item.Item) ([]order.Line, error) {
	if len(requests) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	byID := make(map[kernel.UUID]*item.Item, len(items))
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return nil, err
		}
		byID[it.ID()] = it
	}

	lines := make([]order.Line, 0, len(requests))
	for _, req := range requests {
		resolved, ok := byID[req.ItemID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("itemId", req.ItemID.String())
		}

		line, err := order.NewLine(resolved, req.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}
