package repository

import "time"

// MenuItemListFilter filters menu item listings.
type MenuItemListFilter struct {
	Page          int
	PageSize      int
	CategoryID    uint
	Search        string
	OnlyAvailable bool
}

// OrderListFilter filters order listings.
type OrderListFilter struct {
	Page          int
	PageSize      int
	Status        string
	OrderNo       string
	CustomerID    uint
	CustomerPhone string
	CreatedBy     uint
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
}

// CustomerListFilter filters customer listings.
type CustomerListFilter struct {
	Page       int
	PageSize   int
	Keyword    string
	OnlyActive bool
}

// ActivityLogListFilter filters the activity feed.
type ActivityLogListFilter struct {
	Page        int
	PageSize    int
	EventType   string
	OrderID     uint
	ActorID     uint
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
