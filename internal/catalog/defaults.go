package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/yuda85/family-ops-sub001/internal/model"
)

// seedEntry is one row of the default catalog, kept compact so the table
// stays reviewable as data.
type seedEntry struct {
	name     string
	category model.Category
	unit     model.Unit
	qty      float64
	price    float64
	keywords []string
}

// DefaultItems expands the seed table into catalog rows for one family.
// Slice order is the catalog insertion order, which search uses for
// tie-breaking, so the table order is part of the contract.
func DefaultItems(familyID uuid.UUID) []model.CatalogItem {
	items := make([]model.CatalogItem, 0, len(seedTable))
	for _, e := range seedTable {
		items = append(items, model.CatalogItem{
			FamilyID:        familyID,
			Name:            e.name,
			Category:        e.category,
			DefaultUnit:     e.unit,
			DefaultQuantity: e.qty,
			EstimatedPrice:  decimal.NewFromFloat(e.price),
			Keywords:        e.keywords,
		})
	}
	return items
}

var seedTable = []seedEntry{
	// Vegetables
	{"עגבניות", model.CategoryVegetables, model.UnitKg, 1, 7.9, []string{"עגבניה", "tomato"}},
	{"עגבניות שרי", model.CategoryVegetables, model.UnitPack, 1, 9.9, []string{"שרי", "cherry"}},
	{"מלפפונים", model.CategoryVegetables, model.UnitKg, 1, 6.9, []string{"מלפפון", "cucumber"}},
	{"חסה", model.CategoryVegetables, model.UnitUnits, 1, 7.0, []string{"lettuce"}},
	{"גזר", model.CategoryVegetables, model.UnitKg, 1, 4.9, []string{"carrot"}},
	{"בצל יבש", model.CategoryVegetables, model.UnitKg, 1, 4.5, []string{"בצל", "onion"}},
	{"בצל ירוק", model.CategoryVegetables, model.UnitUnits, 1, 4.0, []string{"בצל", "scallion"}},
	{"שום", model.CategoryVegetables, model.UnitUnits, 1, 3.5, []string{"garlic"}},
	{"פלפל אדום", model.CategoryVegetables, model.UnitKg, 1, 9.9, []string{"פלפל", "pepper"}},
	{"פלפל ירוק", model.CategoryVegetables, model.UnitKg, 1, 8.9, []string{"פלפל", "pepper"}},
	{"תפוחי אדמה", model.CategoryVegetables, model.UnitKg, 2, 5.9, []string{"תפוח אדמה", "potato"}},
	{"בטטה", model.CategoryVegetables, model.UnitKg, 1, 8.9, []string{"sweet potato"}},
	{"קישואים", model.CategoryVegetables, model.UnitKg, 1, 6.9, []string{"קישוא", "zucchini"}},
	{"חצילים", model.CategoryVegetables, model.UnitKg, 1, 6.5, []string{"חציל", "eggplant"}},
	{"כרוב לבן", model.CategoryVegetables, model.UnitUnits, 1, 8.0, []string{"כרוב", "cabbage"}},
	{"כרובית", model.CategoryVegetables, model.UnitUnits, 1, 10.0, []string{"cauliflower"}},
	{"ברוקולי", model.CategoryVegetables, model.UnitUnits, 1, 10.9, []string{"broccoli"}},
	{"תרד", model.CategoryVegetables, model.UnitPack, 1, 8.9, []string{"spinach"}},
	{"פטריות", model.CategoryVegetables, model.UnitPack, 1, 8.9, []string{"פטרי", "mushroom"}},
	{"סלרי", model.CategoryVegetables, model.UnitUnits, 1, 6.0, []string{"celery"}},
	{"פטרוזיליה", model.CategoryVegetables, model.UnitUnits, 1, 3.0, []string{"parsley"}},
	{"כוסברה", model.CategoryVegetables, model.UnitUnits, 1, 3.0, []string{"cilantro"}},
	{"שמיר", model.CategoryVegetables, model.UnitUnits, 1, 3.0, []string{"dill"}},
	{"צנוניות", model.CategoryVegetables, model.UnitPack, 1, 5.9, []string{"צנונית", "radish"}},
	{"סלק", model.CategoryVegetables, model.UnitKg, 1, 5.9, []string{"beet"}},
	{"קולורבי", model.CategoryVegetables, model.UnitKg, 1, 6.9, []string{"kohlrabi"}},
	{"שומר", model.CategoryVegetables, model.UnitKg, 1, 7.9, []string{"fennel"}},
	{"כרוב אדום", model.CategoryVegetables, model.UnitUnits, 1, 8.5, []string{"כרוב", "red cabbage"}},
	{"עגבניות תמר", model.CategoryVegetables, model.UnitPack, 1, 10.9, []string{"עגבניה", "tomato"}},
	{"פלפל צהוב", model.CategoryVegetables, model.UnitKg, 1, 9.9, []string{"פלפל", "pepper"}},
	{"פלפל חריף", model.CategoryVegetables, model.UnitKg, 0.2, 12.9, []string{"פלפל", "chili"}},
	{"שעועית ירוקה", model.CategoryVegetables, model.UnitKg, 0.5, 11.9, []string{"green beans"}},
	{"תירס טרי", model.CategoryVegetables, model.UnitPack, 1, 9.9, []string{"corn"}},
	{"ארטישוק", model.CategoryVegetables, model.UnitKg, 1, 14.9, []string{"artichoke"}},
	{"אספרגוס", model.CategoryVegetables, model.UnitPack, 1, 16.9, []string{"asparagus"}},
	{"בזיליקום", model.CategoryVegetables, model.UnitUnits, 1, 4.0, []string{"basil"}},
	{"נענע", model.CategoryVegetables, model.UnitUnits, 1, 3.0, []string{"mint"}},
	{"רוקולה", model.CategoryVegetables, model.UnitPack, 1, 8.9, []string{"arugula"}},
	{"עלי בייבי", model.CategoryVegetables, model.UnitPack, 1, 9.9, []string{"baby leaves"}},
	{"דלעת", model.CategoryVegetables, model.UnitKg, 1, 5.9, []string{"pumpkin"}},
	{"דלורית", model.CategoryVegetables, model.UnitKg, 1, 6.9, []string{"squash"}},
	{"כרישה", model.CategoryVegetables, model.UnitUnits, 1, 5.5, []string{"leek"}},
	{"זוקיני צהוב", model.CategoryVegetables, model.UnitKg, 1, 7.9, []string{"קישוא", "zucchini"}},

	// Fruits
	{"תפוחים", model.CategoryFruits, model.UnitKg, 1, 9.9, []string{"תפוח", "apple"}},
	{"בננות", model.CategoryFruits, model.UnitKg, 1, 6.9, []string{"בננה", "banana"}},
	{"תפוזים", model.CategoryFruits, model.UnitKg, 1, 5.9, []string{"תפוז", "orange"}},
	{"קלמנטינות", model.CategoryFruits, model.UnitKg, 1, 6.9, []string{"clementine"}},
	{"לימונים", model.CategoryFruits, model.UnitKg, 1, 7.9, []string{"לימון", "lemon"}},
	{"ענבים", model.CategoryFruits, model.UnitKg, 1, 14.9, []string{"grapes"}},
	{"אבטיח", model.CategoryFruits, model.UnitUnits, 1, 20.0, []string{"watermelon"}},
	{"מלון", model.CategoryFruits, model.UnitUnits, 1, 12.0, []string{"melon"}},
	{"אפרסקים", model.CategoryFruits, model.UnitKg, 1, 12.9, []string{"אפרסק", "peach"}},
	{"נקטרינות", model.CategoryFruits, model.UnitKg, 1, 12.9, []string{"nectarine"}},
	{"אגסים", model.CategoryFruits, model.UnitKg, 1, 11.9, []string{"אגס", "pear"}},
	{"תות שדה", model.CategoryFruits, model.UnitPack, 1, 15.0, []string{"תות", "strawberry"}},
	{"מנגו", model.CategoryFruits, model.UnitKg, 1, 13.9, []string{"mango"}},
	{"אננס", model.CategoryFruits, model.UnitUnits, 1, 15.0, []string{"pineapple"}},
	{"רימונים", model.CategoryFruits, model.UnitKg, 1, 10.9, []string{"רימון", "pomegranate"}},
	{"שזיפים", model.CategoryFruits, model.UnitKg, 1, 12.9, []string{"שזיף", "plum"}},
	{"אבוקדו", model.CategoryFruits, model.UnitKg, 1, 14.9, []string{"avocado"}},
	{"קיווי", model.CategoryFruits, model.UnitKg, 1, 13.9, []string{"kiwi"}},
	{"אשכוליות", model.CategoryFruits, model.UnitKg, 1, 6.9, []string{"grapefruit"}},
	{"פומלה", model.CategoryFruits, model.UnitUnits, 1, 8.9, []string{"pomelo"}},
	{"תמרים מג'הול", model.CategoryFruits, model.UnitGram, 500, 24.9, []string{"תמר", "dates"}},
	{"תאנים", model.CategoryFruits, model.UnitKg, 0.5, 19.9, []string{"figs"}},
	{"משמשים", model.CategoryFruits, model.UnitKg, 1, 14.9, []string{"apricot"}},
	{"דובדבנים", model.CategoryFruits, model.UnitKg, 0.5, 29.9, []string{"cherries"}},
	{"ליצ'י", model.CategoryFruits, model.UnitKg, 0.5, 24.9, []string{"lychee"}},
	{"פפאיה", model.CategoryFruits, model.UnitUnits, 1, 12.9, []string{"papaya"}},
	{"אפרסמון", model.CategoryFruits, model.UnitKg, 1, 11.9, []string{"persimmon"}},
	{"גויאבה", model.CategoryFruits, model.UnitKg, 1, 13.9, []string{"guava"}},

	// Dairy
	{"חלב 3%", model.CategoryDairy, model.UnitLiter, 1, 6.3, []string{"חלב", "milk"}},
	{"חלב 1%", model.CategoryDairy, model.UnitLiter, 1, 6.1, []string{"חלב", "milk"}},
	{"ביצים L", model.CategoryDairy, model.UnitPack, 1, 13.2, []string{"ביצים", "eggs"}},
	{"גבינה לבנה 5%", model.CategoryDairy, model.UnitUnits, 1, 5.9, []string{"גבינה", "cheese"}},
	{"גבינה צהובה", model.CategoryDairy, model.UnitGram, 200, 12.9, []string{"גבינה", "cheese"}},
	{"קוטג' 5%", model.CategoryDairy, model.UnitUnits, 1, 5.9, []string{"קוטג", "cottage"}},
	{"יוגורט טבעי", model.CategoryDairy, model.UnitUnits, 4, 8.9, []string{"יוגורט", "yogurt"}},
	{"שמנת חמוצה", model.CategoryDairy, model.UnitUnits, 1, 4.9, []string{"שמנת", "sour cream"}},
	{"שמנת מתוקה", model.CategoryDairy, model.UnitUnits, 1, 6.9, []string{"שמנת", "cream"}},
	{"חמאה", model.CategoryDairy, model.UnitUnits, 1, 7.9, []string{"butter"}},
	{"לבן", model.CategoryDairy, model.UnitUnits, 1, 3.5, []string{"לבן"}},
	{"מעדן שוקולד", model.CategoryDairy, model.UnitUnits, 4, 9.9, []string{"מעדן", "pudding"}},
	{"גבינת פטה", model.CategoryDairy, model.UnitGram, 250, 14.9, []string{"פטה", "feta"}},
	{"גבינת מוצרלה", model.CategoryDairy, model.UnitGram, 200, 13.9, []string{"מוצרלה", "mozzarella"}},
	{"גבינת שמנת", model.CategoryDairy, model.UnitUnits, 1, 9.9, []string{"גבינה", "cream cheese"}},
	{"גבינה בולגרית", model.CategoryDairy, model.UnitGram, 250, 13.9, []string{"גבינה", "bulgarian"}},
	{"גבינת ריקוטה", model.CategoryDairy, model.UnitGram, 250, 12.9, []string{"גבינה", "ricotta"}},
	{"גבינת פרמזן", model.CategoryDairy, model.UnitGram, 100, 16.9, []string{"גבינה", "parmesan"}},
	{"גבינת עיזים", model.CategoryDairy, model.UnitGram, 200, 18.9, []string{"גבינה", "goat cheese"}},
	{"יוגורט יווני", model.CategoryDairy, model.UnitUnits, 1, 6.9, []string{"יוגורט", "greek yogurt"}},
	{"יוגורט פירות", model.CategoryDairy, model.UnitUnits, 4, 10.9, []string{"יוגורט", "yogurt"}},
	{"אשל", model.CategoryDairy, model.UnitUnits, 1, 3.5, []string{"eshel"}},
	{"קפיר", model.CategoryDairy, model.UnitUnits, 1, 7.9, []string{"kefir"}},
	{"חלב עמיד", model.CategoryDairy, model.UnitLiter, 1, 6.9, []string{"חלב", "uht milk"}},
	{"חלב ללא לקטוז", model.CategoryDairy, model.UnitLiter, 1, 8.9, []string{"חלב", "lactose free"}},
	{"משקה סויה", model.CategoryDairy, model.UnitLiter, 1, 10.9, []string{"חלב צמחי", "soy"}},
	{"משקה שקדים", model.CategoryDairy, model.UnitLiter, 1, 12.9, []string{"חלב צמחי", "almond"}},
	{"ביצים M", model.CategoryDairy, model.UnitPack, 1, 11.9, []string{"ביצים", "eggs"}},

	// Meat & fish
	{"חזה עוף", model.CategoryMeat, model.UnitKg, 1, 32.9, []string{"עוף", "chicken"}},
	{"כרעיים עוף", model.CategoryMeat, model.UnitKg, 1, 19.9, []string{"עוף", "chicken"}},
	{"שוקיים עוף", model.CategoryMeat, model.UnitKg, 1, 21.9, []string{"עוף", "chicken"}},
	{"הודו טחון", model.CategoryMeat, model.UnitKg, 0.5, 29.9, []string{"הודו", "turkey"}},
	{"בשר טחון", model.CategoryMeat, model.UnitKg, 0.5, 49.9, []string{"בשר", "ground beef"}},
	{"אנטריקוט", model.CategoryMeat, model.UnitKg, 0.5, 119.0, []string{"בשר", "steak"}},
	{"פילה סלמון", model.CategoryMeat, model.UnitKg, 0.5, 69.9, []string{"סלמון", "salmon"}},
	{"דג אמנון", model.CategoryMeat, model.UnitKg, 0.5, 39.9, []string{"דג", "fish"}},
	{"נקניקיות עוף", model.CategoryMeat, model.UnitPack, 1, 14.9, []string{"נקניק", "hot dog"}},
	{"פסטרמה", model.CategoryMeat, model.UnitGram, 200, 13.9, []string{"פסטרמה", "pastrami"}},
	{"כנפיים עוף", model.CategoryMeat, model.UnitKg, 1, 14.9, []string{"עוף", "wings"}},
	{"עוף שלם", model.CategoryMeat, model.UnitKg, 1.5, 16.9, []string{"עוף", "chicken"}},
	{"פרגיות", model.CategoryMeat, model.UnitKg, 1, 34.9, []string{"עוף", "thighs"}},
	{"כבד עוף", model.CategoryMeat, model.UnitKg, 0.5, 17.9, []string{"עוף", "liver"}},
	{"צלעות טלה", model.CategoryMeat, model.UnitKg, 0.5, 99.0, []string{"בשר", "lamb"}},
	{"בשר לצלי", model.CategoryMeat, model.UnitKg, 1, 79.0, []string{"בשר", "roast"}},
	{"דג בקלה", model.CategoryMeat, model.UnitKg, 0.5, 34.9, []string{"דג", "cod"}},
	{"דג מושט", model.CategoryMeat, model.UnitKg, 0.5, 29.9, []string{"דג", "tilapia"}},
	{"סלמי", model.CategoryMeat, model.UnitGram, 200, 12.9, []string{"נקניק", "salami"}},
	{"המבורגר טרי", model.CategoryMeat, model.UnitPack, 1, 29.9, []string{"המבורגר", "burger"}},
	{"שווארמה הודו", model.CategoryMeat, model.UnitKg, 0.5, 27.9, []string{"הודו", "shawarma"}},
	{"קבב טרי", model.CategoryMeat, model.UnitPack, 1, 26.9, []string{"קבב", "kebab"}},

	// Bakery
	{"לחם אחיד", model.CategoryBakery, model.UnitUnits, 1, 7.0, []string{"לחם", "bread"}},
	{"לחם מלא", model.CategoryBakery, model.UnitUnits, 1, 9.5, []string{"לחם", "bread"}},
	{"פיתות", model.CategoryBakery, model.UnitPack, 1, 8.0, []string{"פיתה", "pita"}},
	{"חלה", model.CategoryBakery, model.UnitUnits, 1, 9.0, []string{"challah"}},
	{"לחמניות", model.CategoryBakery, model.UnitPack, 1, 10.0, []string{"לחמני", "rolls"}},
	{"בגט", model.CategoryBakery, model.UnitUnits, 1, 6.0, []string{"baguette"}},
	{"טורטיות", model.CategoryBakery, model.UnitPack, 1, 12.9, []string{"tortilla"}},
	{"קרואסונים", model.CategoryBakery, model.UnitPack, 1, 14.9, []string{"קרואסון", "croissant"}},
	{"לחם שיפון", model.CategoryBakery, model.UnitUnits, 1, 11.9, []string{"לחם", "rye"}},
	{"לחם כוסמין", model.CategoryBakery, model.UnitUnits, 1, 13.9, []string{"לחם", "spelt"}},
	{"לחם ללא גלוטן", model.CategoryBakery, model.UnitUnits, 1, 17.9, []string{"לחם", "gluten free"}},
	{"לחם שום", model.CategoryBakery, model.UnitUnits, 1, 10.9, []string{"לחם", "garlic bread"}},
	{"פוקצ'ה", model.CategoryBakery, model.UnitUnits, 1, 12.9, []string{"focaccia"}},
	{"ג'בטה", model.CategoryBakery, model.UnitUnits, 1, 8.9, []string{"ciabatta"}},
	{"עוגת שמרים", model.CategoryBakery, model.UnitUnits, 1, 19.9, []string{"עוגה", "babka"}},
	{"עוגת גבינה", model.CategoryBakery, model.UnitUnits, 1, 29.9, []string{"עוגה", "cheesecake"}},
	{"מאפה בורקס", model.CategoryBakery, model.UnitPack, 1, 15.9, []string{"בורקס", "bourekas"}},
	{"רוגלך", model.CategoryBakery, model.UnitPack, 1, 16.9, []string{"rugelach"}},
	{"פיתות מקמח מלא", model.CategoryBakery, model.UnitPack, 1, 9.5, []string{"פיתה", "pita"}},
	{"לחמניות מתוקות", model.CategoryBakery, model.UnitPack, 1, 12.0, []string{"לחמני", "buns"}},

	// Pantry
	{"אורז בסמטי", model.CategoryPantry, model.UnitKg, 1, 12.9, []string{"אורז", "rice"}},
	{"אורז עגול", model.CategoryPantry, model.UnitKg, 1, 9.9, []string{"אורז", "rice"}},
	{"פסטה פנה", model.CategoryPantry, model.UnitPack, 1, 6.9, []string{"פסטה", "pasta"}},
	{"ספגטי", model.CategoryPantry, model.UnitPack, 1, 6.9, []string{"פסטה", "spaghetti"}},
	{"פתיתים", model.CategoryPantry, model.UnitPack, 1, 7.9, []string{"ptitim"}},
	{"קוסקוס", model.CategoryPantry, model.UnitPack, 1, 8.9, []string{"couscous"}},
	{"קמח לבן", model.CategoryPantry, model.UnitKg, 1, 5.9, []string{"קמח", "flour"}},
	{"סוכר לבן", model.CategoryPantry, model.UnitKg, 1, 5.5, []string{"סוכר", "sugar"}},
	{"מלח שולחן", model.CategoryPantry, model.UnitUnits, 1, 2.9, []string{"מלח", "salt"}},
	{"שמן זית", model.CategoryPantry, model.UnitLiter, 0.75, 34.9, []string{"שמן", "olive oil"}},
	{"שמן קנולה", model.CategoryPantry, model.UnitLiter, 1, 12.9, []string{"שמן", "canola"}},
	{"קטשופ", model.CategoryPantry, model.UnitUnits, 1, 9.9, []string{"ketchup"}},
	{"מיונז", model.CategoryPantry, model.UnitUnits, 1, 11.9, []string{"mayo"}},
	{"חומוס מוכן", model.CategoryPantry, model.UnitUnits, 1, 8.9, []string{"חומוס", "hummus"}},
	{"טחינה גולמית", model.CategoryPantry, model.UnitUnits, 1, 14.9, []string{"טחינה", "tahini"}},
	{"טונה בשמן", model.CategoryPantry, model.UnitPack, 4, 18.9, []string{"טונה", "tuna"}},
	{"רסק עגבניות", model.CategoryPantry, model.UnitUnits, 2, 5.9, []string{"רסק", "שימורי"}},
	{"תירס שימורים", model.CategoryPantry, model.UnitUnits, 1, 5.9, []string{"שימורי", "corn"}},
	{"עדשים", model.CategoryPantry, model.UnitKg, 0.5, 8.9, []string{"lentils"}},
	{"דבש", model.CategoryPantry, model.UnitUnits, 1, 19.9, []string{"honey"}},
	{"פפריקה", model.CategoryPantry, model.UnitUnits, 1, 6.9, []string{"תבלין", "paprika"}},
	{"כמון", model.CategoryPantry, model.UnitUnits, 1, 6.9, []string{"תבלין", "cumin"}},
	{"דגני בוקר", model.CategoryPantry, model.UnitPack, 1, 17.9, []string{"cereal", "קורנפלקס"}},
	{"שיבולת שועל", model.CategoryPantry, model.UnitPack, 1, 11.9, []string{"oats"}},
	{"קינואה", model.CategoryPantry, model.UnitKg, 0.5, 16.9, []string{"quinoa"}},
	{"בורגול", model.CategoryPantry, model.UnitKg, 0.5, 8.9, []string{"bulgur"}},
	{"גריסים", model.CategoryPantry, model.UnitKg, 0.5, 7.9, []string{"barley"}},
	{"חומץ בן יין", model.CategoryPantry, model.UnitUnits, 1, 6.9, []string{"vinegar"}},
	{"חומץ בלסמי", model.CategoryPantry, model.UnitUnits, 1, 14.9, []string{"balsamic"}},
	{"רוטב סויה", model.CategoryPantry, model.UnitUnits, 1, 9.9, []string{"soy sauce"}},
	{"רוטב פסטה", model.CategoryPantry, model.UnitUnits, 1, 11.9, []string{"רוטב", "pasta sauce"}},
	{"אבקת אפייה", model.CategoryPantry, model.UnitUnits, 1, 3.9, []string{"baking powder"}},
	{"אבקת סוכר", model.CategoryPantry, model.UnitUnits, 1, 4.9, []string{"סוכר", "powdered sugar"}},
	{"סוכר חום", model.CategoryPantry, model.UnitKg, 1, 8.9, []string{"סוכר", "brown sugar"}},
	{"סוכר וניל", model.CategoryPantry, model.UnitUnits, 1, 3.5, []string{"vanilla"}},
	{"קינמון", model.CategoryPantry, model.UnitUnits, 1, 5.9, []string{"תבלין", "cinnamon"}},
	{"כורכום", model.CategoryPantry, model.UnitUnits, 1, 5.9, []string{"תבלין", "turmeric"}},
	{"זעתר", model.CategoryPantry, model.UnitUnits, 1, 7.9, []string{"תבלין", "zaatar"}},
	{"פלפל שחור", model.CategoryPantry, model.UnitUnits, 1, 6.9, []string{"תבלין", "black pepper"}},
	{"עלי דפנה", model.CategoryPantry, model.UnitUnits, 1, 4.9, []string{"תבלין", "bay leaves"}},
	{"אבקת מרק עוף", model.CategoryPantry, model.UnitUnits, 1, 11.9, []string{"מרק", "soup mix"}},
	{"קוביות מרק", model.CategoryPantry, model.UnitPack, 1, 7.9, []string{"מרק", "bouillon"}},
	{"שעועית לבנה יבשה", model.CategoryPantry, model.UnitKg, 0.5, 9.9, []string{"white beans"}},
	{"חומוס יבש", model.CategoryPantry, model.UnitKg, 0.5, 8.9, []string{"חומוס", "chickpeas"}},
	{"ריבת תות", model.CategoryPantry, model.UnitUnits, 1, 12.9, []string{"ריבה", "jam"}},
	{"ממרח שוקולד", model.CategoryPantry, model.UnitUnits, 1, 16.9, []string{"ממרח", "spread"}},
	{"חמאת בוטנים", model.CategoryPantry, model.UnitUnits, 1, 17.9, []string{"ממרח", "peanut butter"}},
	{"זיתים ירוקים", model.CategoryPantry, model.UnitUnits, 1, 9.9, []string{"זיתים", "olives"}},
	{"זיתים שחורים", model.CategoryPantry, model.UnitUnits, 1, 9.9, []string{"זיתים", "olives"}},
	{"מלפפונים חמוצים", model.CategoryPantry, model.UnitUnits, 1, 8.9, []string{"חמוצים", "pickles"}},
	{"סירופ מייפל", model.CategoryPantry, model.UnitUnits, 1, 24.9, []string{"maple"}},
	{"אטריות אורז", model.CategoryPantry, model.UnitPack, 1, 9.9, []string{"noodles"}},
	{"נודלס", model.CategoryPantry, model.UnitPack, 5, 12.9, []string{"noodles"}},
	{"פירורי לחם", model.CategoryPantry, model.UnitUnits, 1, 7.9, []string{"breadcrumbs"}},
	{"קמח מלא", model.CategoryPantry, model.UnitKg, 1, 7.9, []string{"קמח", "whole wheat"}},
	{"קמח תופח", model.CategoryPantry, model.UnitKg, 1, 6.9, []string{"קמח", "self rising"}},

	// Frozen
	{"שניצל קפוא", model.CategoryFrozen, model.UnitPack, 1, 24.9, []string{"שניצל", "schnitzel"}},
	{"ירקות מוקפאים", model.CategoryFrozen, model.UnitPack, 1, 12.9, []string{"קפוא", "frozen"}},
	{"אפונה קפואה", model.CategoryFrozen, model.UnitPack, 1, 9.9, []string{"קפוא", "peas"}},
	{"פיצה קפואה", model.CategoryFrozen, model.UnitUnits, 1, 19.9, []string{"קפוא", "pizza"}},
	{"גלידה וניל", model.CategoryFrozen, model.UnitUnits, 1, 24.9, []string{"גלידה", "ice cream"}},
	{"ארטיקים", model.CategoryFrozen, model.UnitPack, 1, 19.9, []string{"ארטיק", "popsicle"}},
	{"בצק עלים", model.CategoryFrozen, model.UnitPack, 1, 12.9, []string{"קפוא", "puff pastry"}},
	{"מלאווח קפוא", model.CategoryFrozen, model.UnitPack, 1, 14.9, []string{"קפוא", "malawach"}},
	{"ג'חנון קפוא", model.CategoryFrozen, model.UnitPack, 1, 16.9, []string{"קפוא", "jachnun"}},
	{"בצק פילו", model.CategoryFrozen, model.UnitPack, 1, 13.9, []string{"קפוא", "phyllo"}},
	{"שעועית ירוקה קפואה", model.CategoryFrozen, model.UnitPack, 1, 10.9, []string{"קפוא", "green beans"}},
	{"תות שדה קפוא", model.CategoryFrozen, model.UnitPack, 1, 14.9, []string{"קפוא", "strawberry"}},
	{"סיגרים קפואים", model.CategoryFrozen, model.UnitPack, 1, 19.9, []string{"קפוא", "cigars"}},
	{"צ'יפס קפוא", model.CategoryFrozen, model.UnitPack, 1, 11.9, []string{"קפוא", "fries"}},
	{"פילה דג קפוא", model.CategoryFrozen, model.UnitPack, 1, 29.9, []string{"קפוא", "fish"}},
	{"גלידה שוקולד", model.CategoryFrozen, model.UnitUnits, 1, 24.9, []string{"גלידה", "ice cream"}},
	{"בורקס קפוא", model.CategoryFrozen, model.UnitPack, 1, 17.9, []string{"קפוא", "bourekas"}},

	// Drinks
	{"מים מינרליים", model.CategoryDrinks, model.UnitPack, 1, 19.9, []string{"מים", "water"}},
	{"סודה", model.CategoryDrinks, model.UnitPack, 1, 15.9, []string{"soda"}},
	{"קוקה קולה", model.CategoryDrinks, model.UnitLiter, 1.5, 8.9, []string{"קולה", "cola"}},
	{"מיץ תפוזים", model.CategoryDrinks, model.UnitLiter, 1, 11.9, []string{"מיץ", "juice"}},
	{"מיץ ענבים", model.CategoryDrinks, model.UnitLiter, 1, 12.9, []string{"מיץ", "juice"}},
	{"קפה שחור", model.CategoryDrinks, model.UnitUnits, 1, 12.9, []string{"קפה", "coffee"}},
	{"קפה נמס", model.CategoryDrinks, model.UnitUnits, 1, 24.9, []string{"קפה", "instant coffee"}},
	{"תה ירוק", model.CategoryDrinks, model.UnitPack, 1, 14.9, []string{"תה", "tea"}},
	{"בירה", model.CategoryDrinks, model.UnitPack, 6, 39.9, []string{"beer"}},
	{"יין אדום", model.CategoryDrinks, model.UnitUnits, 1, 39.9, []string{"יין", "wine"}},
	{"מים בטעמים", model.CategoryDrinks, model.UnitPack, 1, 22.9, []string{"מים", "flavored water"}},
	{"משקה אנרגיה", model.CategoryDrinks, model.UnitUnits, 4, 19.9, []string{"energy drink"}},
	{"לימונדה", model.CategoryDrinks, model.UnitLiter, 1.5, 8.9, []string{"מיץ", "lemonade"}},
	{"תה צמחים", model.CategoryDrinks, model.UnitPack, 1, 13.9, []string{"תה", "herbal tea"}},
	{"תה שחור", model.CategoryDrinks, model.UnitPack, 1, 10.9, []string{"תה", "black tea"}},
	{"שוקו", model.CategoryDrinks, model.UnitLiter, 1, 7.9, []string{"שוקו", "chocolate milk"}},
	{"סיידר תפוחים", model.CategoryDrinks, model.UnitLiter, 1, 10.9, []string{"מיץ", "cider"}},
	{"מיץ גזר", model.CategoryDrinks, model.UnitLiter, 1, 12.9, []string{"מיץ", "juice"}},
	{"פטל מרוכז", model.CategoryDrinks, model.UnitUnits, 1, 9.9, []string{"מיץ", "raspberry syrup"}},
	{"יין לבן", model.CategoryDrinks, model.UnitUnits, 1, 39.9, []string{"יין", "wine"}},
	{"בירה ללא אלכוהול", model.CategoryDrinks, model.UnitPack, 6, 34.9, []string{"בירה", "beer"}},

	// Snacks
	{"במבה", model.CategorySnacks, model.UnitPack, 1, 5.9, []string{"חטיף", "bamba"}},
	{"ביסלי גריל", model.CategorySnacks, model.UnitPack, 1, 5.9, []string{"חטיף", "bisli"}},
	{"שוקולד פרה", model.CategorySnacks, model.UnitUnits, 1, 6.9, []string{"שוקולד", "chocolate"}},
	{"עוגיות שוקולד צ'יפס", model.CategorySnacks, model.UnitPack, 1, 12.9, []string{"עוגיות", "cookies"}},
	{"צ'יפס תפוצ'יפס", model.CategorySnacks, model.UnitPack, 1, 7.9, []string{"צ'יפס", "chips"}},
	{"בוטנים", model.CategorySnacks, model.UnitPack, 1, 9.9, []string{"peanuts"}},
	{"חטיף אנרגיה", model.CategorySnacks, model.UnitUnits, 4, 15.9, []string{"חטיף", "bar"}},
	{"פופקורן", model.CategorySnacks, model.UnitPack, 1, 8.9, []string{"popcorn"}},
	{"אפרופו", model.CategorySnacks, model.UnitPack, 1, 5.9, []string{"חטיף", "apropo"}},
	{"דוריטוס", model.CategorySnacks, model.UnitPack, 1, 7.9, []string{"חטיף", "doritos"}},
	{"פרינגלס", model.CategorySnacks, model.UnitUnits, 1, 11.9, []string{"צ'יפס", "pringles"}},
	{"קרקרים", model.CategorySnacks, model.UnitPack, 1, 8.9, []string{"crackers"}},
	{"בייגלה", model.CategorySnacks, model.UnitPack, 1, 7.9, []string{"pretzels"}},
	{"חטיף גרנולה", model.CategorySnacks, model.UnitPack, 6, 16.9, []string{"חטיף", "granola bar"}},
	{"שוקולד מריר", model.CategorySnacks, model.UnitUnits, 1, 8.9, []string{"שוקולד", "dark chocolate"}},
	{"שוקולד לבן", model.CategorySnacks, model.UnitUnits, 1, 6.9, []string{"שוקולד", "white chocolate"}},
	{"סוכריות גומי", model.CategorySnacks, model.UnitPack, 1, 9.9, []string{"סוכרי", "gummies"}},
	{"מרשמלו", model.CategorySnacks, model.UnitPack, 1, 8.9, []string{"marshmallow"}},
	{"וופלים", model.CategorySnacks, model.UnitPack, 1, 7.9, []string{"wafers"}},
	{"עוגיות חמאה", model.CategorySnacks, model.UnitPack, 1, 11.9, []string{"עוגיות", "butter cookies"}},

	// Cleaning
	{"נוזל כלים", model.CategoryCleaning, model.UnitUnits, 1, 11.9, []string{"סבון כלים", "dish soap"}},
	{"אבקת כביסה", model.CategoryCleaning, model.UnitUnits, 1, 39.9, []string{"כביסה", "detergent"}},
	{"מרכך כביסה", model.CategoryCleaning, model.UnitUnits, 1, 19.9, []string{"כביסה", "softener"}},
	{"אקונומיקה", model.CategoryCleaning, model.UnitUnits, 1, 8.9, []string{"bleach"}},
	{"נייר טואלט", model.CategoryCleaning, model.UnitPack, 1, 29.9, []string{"טואלט", "toilet paper"}},
	{"מגבות נייר", model.CategoryCleaning, model.UnitPack, 1, 19.9, []string{"נייר", "paper towels"}},
	{"שקיות זבל", model.CategoryCleaning, model.UnitPack, 1, 14.9, []string{"זבל", "trash bags"}},
	{"ספוגים", model.CategoryCleaning, model.UnitPack, 1, 7.9, []string{"ספוג", "sponge"}},
	{"מטליות רצפה", model.CategoryCleaning, model.UnitPack, 1, 9.9, []string{"מטלי", "cloth"}},
	{"נוזל רצפות", model.CategoryCleaning, model.UnitUnits, 1, 12.9, []string{"ניקוי", "floor cleaner"}},
	{"מסיר שומנים", model.CategoryCleaning, model.UnitUnits, 1, 14.9, []string{"ניקוי", "degreaser"}},
	{"מנקה חלונות", model.CategoryCleaning, model.UnitUnits, 1, 10.9, []string{"ניקוי", "window cleaner"}},
	{"ג'ל כביסה", model.CategoryCleaning, model.UnitUnits, 1, 34.9, []string{"כביסה", "laundry gel"}},
	{"כפפות גומי", model.CategoryCleaning, model.UnitPack, 1, 8.9, []string{"gloves"}},
	{"נייר אפייה", model.CategoryCleaning, model.UnitUnits, 1, 9.9, []string{"נייר", "baking paper"}},
	{"רדיד אלומיניום", model.CategoryCleaning, model.UnitUnits, 1, 11.9, []string{"foil"}},
	{"שקיות סנדוויץ'", model.CategoryCleaning, model.UnitPack, 1, 7.9, []string{"שקיות", "sandwich bags"}},
	{"מפיות נייר", model.CategoryCleaning, model.UnitPack, 1, 6.9, []string{"נייר", "napkins"}},
	{"מטהר אוויר", model.CategoryCleaning, model.UnitUnits, 1, 13.9, []string{"air freshener"}},

	// Personal care
	{"שמפו", model.CategoryPersonal, model.UnitUnits, 1, 17.9, []string{"shampoo"}},
	{"מרכך שיער", model.CategoryPersonal, model.UnitUnits, 1, 17.9, []string{"conditioner"}},
	{"סבון גוף", model.CategoryPersonal, model.UnitUnits, 1, 14.9, []string{"סבון", "body wash"}},
	{"משחת שיניים", model.CategoryPersonal, model.UnitUnits, 1, 12.9, []string{"שיניים", "toothpaste"}},
	{"מברשת שיניים", model.CategoryPersonal, model.UnitUnits, 1, 9.9, []string{"שיניים", "toothbrush"}},
	{"דאודורנט", model.CategoryPersonal, model.UnitUnits, 1, 15.9, []string{"deodorant"}},
	{"סבון ידיים", model.CategoryPersonal, model.UnitUnits, 1, 9.9, []string{"סבון", "hand soap"}},
	{"קרם גוף", model.CategoryPersonal, model.UnitUnits, 1, 19.9, []string{"קרם", "body lotion"}},
	{"קרם ידיים", model.CategoryPersonal, model.UnitUnits, 1, 14.9, []string{"קרם", "hand cream"}},
	{"מי פה", model.CategoryPersonal, model.UnitUnits, 1, 16.9, []string{"mouthwash"}},
	{"תחבושות", model.CategoryPersonal, model.UnitPack, 1, 14.9, []string{"pads"}},
	{"טמפונים", model.CategoryPersonal, model.UnitPack, 1, 16.9, []string{"tampons"}},
	{"סכיני גילוח", model.CategoryPersonal, model.UnitPack, 1, 24.9, []string{"גילוח", "razors"}},
	{"קצף גילוח", model.CategoryPersonal, model.UnitUnits, 1, 14.9, []string{"גילוח", "shaving foam"}},
	{"צמר גפן", model.CategoryPersonal, model.UnitPack, 1, 7.9, []string{"cotton"}},
	{"מקלוני אוזניים", model.CategoryPersonal, model.UnitPack, 1, 6.9, []string{"cotton swabs"}},

	// Baby
	{"חיתולים מידה 4", model.CategoryBaby, model.UnitPack, 1, 54.9, []string{"חיתול", "diapers"}},
	{"מגבונים לתינוק", model.CategoryBaby, model.UnitPack, 1, 19.9, []string{"מגבונים", "wipes"}},
	{"מטרנה שלב 1", model.CategoryBaby, model.UnitUnits, 1, 64.9, []string{"מטרנה", "formula"}},
	{"מחית פירות", model.CategoryBaby, model.UnitUnits, 4, 15.9, []string{"מחית", "puree"}},
	{"חיתולים מידה 3", model.CategoryBaby, model.UnitPack, 1, 54.9, []string{"חיתול", "diapers"}},
	{"חיתולים מידה 5", model.CategoryBaby, model.UnitPack, 1, 54.9, []string{"חיתול", "diapers"}},
	{"דייסת תינוקות", model.CategoryBaby, model.UnitUnits, 1, 24.9, []string{"דייסה", "baby cereal"}},
	{"מוצצים", model.CategoryBaby, model.UnitPack, 1, 19.9, []string{"מוצץ", "pacifier"}},
	{"שמפו לתינוק", model.CategoryBaby, model.UnitUnits, 1, 15.9, []string{"תינוק", "baby shampoo"}},
	{"משחת החתלה", model.CategoryBaby, model.UnitUnits, 1, 18.9, []string{"תינוק", "diaper cream"}},
	{"מטרנה שלב 2", model.CategoryBaby, model.UnitUnits, 1, 64.9, []string{"מטרנה", "formula"}},
	{"מגבונים ללא בישום", model.CategoryBaby, model.UnitPack, 1, 21.9, []string{"מגבונים", "wipes"}},
}
