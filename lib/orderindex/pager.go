// Copyright 2026 The Orderdesk Authors
// SPDX-License-Identifier: Apache-2.0

package orderindex

// Pager tracks the current 1-based page of a paginated list. Moves
// past either end are clamped no-ops.
type Pager struct {
	Page     int
	PageSize int
}

// NewPager returns a pager on page 1.
func NewPager(pageSize int) Pager {
	return Pager{Page: 1, PageSize: pageSize}
}

// Next advances one page. It reports whether the page changed.
func (pager *Pager) Next(totalItems int) bool {
	if pager.Page >= TotalPages(totalItems, pager.PageSize) {
		return false
	}
	pager.Page++
	return true
}

// Previous moves back one page. It reports whether the page changed.
func (pager *Pager) Previous() bool {
	if pager.Page <= 1 {
		return false
	}
	pager.Page--
	return true
}

// Clamp pulls the page back into range after the list shrank.
func (pager *Pager) Clamp(totalItems int) {
	total := TotalPages(totalItems, pager.PageSize)
	if pager.Page > total {
		pager.Page = total
	}
	if pager.Page < 1 {
		pager.Page = 1
	}
}

// Bounds returns the 1-based item range the current page covers, for
// the "showing X to Y of N" footer. Both bounds are zero when the list
// is empty.
func (pager Pager) Bounds(totalItems int) (first, last int) {
	if totalItems == 0 {
		return 0, 0
	}
	first = (pager.Page-1)*pager.PageSize + 1
	last = min(pager.Page*pager.PageSize, totalItems)
	if first > totalItems {
		return 0, 0
	}
	return first, last
}
