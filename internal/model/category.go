package model

// Category classifies catalog and list items into the fixed supermarket
// sections the UI groups by.
type Category string

const (
	CategoryVegetables Category = "vegetables"
	CategoryFruits     Category = "fruits"
	CategoryDairy      Category = "dairy"
	CategoryMeat       Category = "meat"
	CategoryBakery     Category = "bakery"
	CategoryPantry     Category = "pantry"
	CategoryFrozen     Category = "frozen"
	CategoryDrinks     Category = "drinks"
	CategorySnacks     Category = "snacks"
	CategoryCleaning   Category = "cleaning"
	CategoryPersonal   Category = "personal"
	CategoryBaby       Category = "baby"
)

// CategoryOrder is the fixed display order of category groups.
// Grouped list views iterate this slice, never map order.
var CategoryOrder = []Category{
	CategoryVegetables,
	CategoryFruits,
	CategoryDairy,
	CategoryMeat,
	CategoryBakery,
	CategoryPantry,
	CategoryFrozen,
	CategoryDrinks,
	CategorySnacks,
	CategoryCleaning,
	CategoryPersonal,
	CategoryBaby,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range CategoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

// Unit is the measurement unit of a list or catalog item quantity.
type Unit string

const (
	UnitUnits Unit = "units"
	UnitKg    Unit = "kg"
	UnitGram  Unit = "gram"
	UnitLiter Unit = "liter"
	UnitPack  Unit = "pack"
)

var AllUnits = []Unit{UnitUnits, UnitKg, UnitGram, UnitLiter, UnitPack}

func (u Unit) Valid() bool {
	for _, known := range AllUnits {
		if u == known {
			return true
		}
	}
	return false
}
