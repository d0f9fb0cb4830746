package domain

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Category is an apartment's room-count classification. The set is closed
// and agreed with the mapping file schema; values are the raw labels found
// in the mapping workbook.
type Category string

const (
	CategoryStudio        Category = "studio"
	CategoryOneBedroom    Category = "1 chambre"
	CategoryTwoBedrooms   Category = "2 chambres"
	CategoryThreeBedrooms Category = "3 chambres"
	CategoryFourBedrooms  Category = "4 chambres"
	CategoryFiveBedrooms  Category = "5 chambres"
	CategorySixBedrooms   Category = "6 chambres"
)

// Categories lists every recognized category in display order.
func Categories() []Category {
	return []Category{
		CategoryStudio,
		CategoryOneBedroom,
		CategoryTwoBedrooms,
		CategoryThreeBedrooms,
		CategoryFourBedrooms,
		CategoryFiveBedrooms,
		CategorySixBedrooms,
	}
}

var categoryOrder = map[Category]int{
	CategoryStudio:        1,
	CategoryOneBedroom:    2,
	CategoryTwoBedrooms:   3,
	CategoryThreeBedrooms: 4,
	CategoryFourBedrooms:  5,
	CategoryFiveBedrooms:  6,
	CategorySixBedrooms:   7,
}

// ParseCategory normalizes a raw mapping-file value into a Category.
// Unrecognized values return ok=false; the apartment still participates in
// owner rows, it is only excluded from category aggregation.
func ParseCategory(raw string) (Category, bool) {
	c := Category(strings.TrimSpace(strings.ToLower(raw)))
	_, ok := categoryOrder[c]
	return c, ok
}

// Order returns the category's display rank. Unknown categories sort last.
func (c Category) Order() int {
	if o, ok := categoryOrder[c]; ok {
		return o
	}
	return 999
}

// Known reports whether the category belongs to the closed set.
func (c Category) Known() bool {
	_, ok := categoryOrder[c]
	return ok
}

// Label formats the category for a report summary row.
func (c Category) Label() string {
	if c == "" {
		return "Non catégorisé"
	}
	return "Prix moyen - " + string(c)
}

// TallyLabel names the per-category availability count row of the
// combined sheet.
func (c Category) TallyLabel() string {
	return "Disponibilité - " + string(c)
}

var nameDigits = regexp.MustCompile(`\d+`)

// InferCategory guesses a category from an apartment name for apartments
// that appear in reservations but not in the mapping file. Falls back to
// one bedroom when the name carries no usable hint.
func InferCategory(apartmentName string) Category {
	name := strings.ToLower(apartmentName)

	if strings.Contains(name, "studio") {
		return CategoryStudio
	}
	if strings.Contains(name, "chambre") || strings.Contains(name, "bedroom") {
		if m := nameDigits.FindString(name); m != "" {
			n, err := strconv.Atoi(m)
			if err == nil && n >= 1 && n <= 6 {
				if n == 1 {
					return CategoryOneBedroom
				}
				return Category(strconv.Itoa(n) + " chambres")
			}
		}
	}
	return CategoryOneBedroom
}

// OwnerUnassigned groups apartments that were referenced by reservations but
// absent from the mapping file.
const OwnerUnassigned = "Unassigned"

// Apartment is one row of the mapping file. Immutable for a report run.
type Apartment struct {
	Name       string
	Owner      string
	Category   Category
	Commission float64
}

// ApartmentIndex is a read-only name -> Apartment lookup built once per run
// and shared by every aggregator.
type ApartmentIndex map[string]Apartment

// NewApartmentIndex builds the index. Later duplicates of a name win, which
// mirrors how the mapping file is read top to bottom.
func NewApartmentIndex(apartments []Apartment) ApartmentIndex {
	idx := make(ApartmentIndex, len(apartments))
	for _, a := range apartments {
		idx[a.Name] = a
	}
	return idx
}

// NamesByCategory returns the apartment names belonging to a category.
func (idx ApartmentIndex) NamesByCategory(c Category) []string {
	var names []string
	for name, a := range idx {
		if a.Category == c {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Owners returns the distinct owner names, sorted.
func (idx ApartmentIndex) Owners() []string {
	seen := map[string]struct{}{}
	for _, a := range idx {
		if a.Owner == "" {
			continue
		}
		seen[a.Owner] = struct{}{}
	}
	owners := make([]string, 0, len(seen))
	for o := range seen {
		owners = append(owners, o)
	}
	sort.Strings(owners)
	return owners
}

// ByOwner returns the apartments of one owner, sorted by name.
func (idx ApartmentIndex) ByOwner(owner string) []Apartment {
	var out []Apartment
	for _, a := range idx {
		if a.Owner == owner {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// All returns every apartment, sorted by name.
func (idx ApartmentIndex) All() []Apartment {
	out := make([]Apartment, 0, len(idx))
	for _, a := range idx {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// PresentCategories returns the known categories that at least one indexed
// apartment belongs to, in display order.
func (idx ApartmentIndex) PresentCategories() []Category {
	seen := map[Category]struct{}{}
	for _, a := range idx {
		if a.Category.Known() {
			seen[a.Category] = struct{}{}
		}
	}
	out := make([]Category, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order() < out[j].Order() })
	return out
}
