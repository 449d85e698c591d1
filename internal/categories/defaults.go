package categories

// DefaultCategories returns the built-in category list. User-defined
// categories from the vendor mapping are layered on top of these.
func DefaultCategories() []string {
	return []string{
		"Groceries",
		"Transportation",
		"Utilities",
		"Entertainment",
		"Healthcare",
		"Shopping",
		"Dining",
		"Bills",
		"Insurance",
		"Education",
		"Travel",
		"Investment",
		"Other",
	}
}

// Uncategorized is the bucket for expenses with no category association.
const Uncategorized = "Uncategorized"
