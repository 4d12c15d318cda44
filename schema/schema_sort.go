package schema

// SortOption is one selectable ordering for a list view. The set of sort
// behaviors is a closed sum: either a generic field/direction sort, or a
// named custom comparator identified by Kind.
type SortOption struct {
	ID    string   // Stable identifier, e.g. "product-asc"
	Kind  SortKind // FieldSort or a named custom kind
	Field SortField
	Desc  bool
}

// BoardSortOptions are the orderings available for board lists. The
// vendor-first option is the default.
var BoardSortOptions = []SortOption{
	{ID: "vendor-asc", Kind: VendorFirstSort, Field: VendorField},
	{ID: "product-asc", Kind: FieldSort, Field: ProductField},
	{ID: "product-desc", Kind: FieldSort, Field: ProductField, Desc: true},
}

// SystemSortOptions are the orderings available for system report lists.
var SystemSortOptions = []SortOption{
	{ID: "sys-asc", Kind: FieldSort, Field: SysField},
	{ID: "sys-desc", Kind: FieldSort, Field: SysField, Desc: true},
	{ID: "board-asc", Kind: FieldSort, Field: BoardField},
	{ID: "board-desc", Kind: FieldSort, Field: BoardField, Desc: true},
}

// ReportSortOptions are the orderings available for the flat report list.
// Latest-first is the default; undated reports sort last either way.
var ReportSortOptions = []SortOption{
	{ID: "date-desc", Kind: FieldSort, Field: DateField, Desc: true},
	{ID: "date-asc", Kind: FieldSort, Field: DateField},
	{ID: "board-asc", Kind: FieldSort, Field: BoardField},
	{ID: "sys-asc", Kind: FieldSort, Field: SysField},
}

// FindSortOption looks up an option by ID within a set. The second return
// is false when the ID names no option in the set.
func FindSortOption(options []SortOption, id string) (SortOption, bool) {
	for _, opt := range options {
		if opt.ID == id {
			return opt, true
		}
	}
	return SortOption{}, false
}
