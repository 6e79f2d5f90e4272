package domain

// Category groups templates by the kind of content they produce.
type Category string

const (
	CategoryBlog    Category = "blog"
	CategorySocial  Category = "social"
	CategoryEmail   Category = "email"
	CategoryProduct Category = "product"
)

var KnownCategories = map[Category]struct{}{
	CategoryBlog:    {},
	CategorySocial:  {},
	CategoryEmail:   {},
	CategoryProduct: {},
}

// Template is a ready-to-customize content blueprint.
type Template struct {
	ID          string
	Title       string
	Description string
	Category    Category
	Industry    string
	Content     string
	Tags        []string
}

// Industry is a catalog facet with a display label.
type Industry struct {
	ID    string
	Label string
}

// Industries lists the catalog facets in display order.
var Industries = []Industry{
	{ID: "tech", Label: "Technology"},
	{ID: "marketing", Label: "Marketing"},
	{ID: "ecommerce", Label: "E-commerce"},
	{ID: "health", Label: "Health & Wellness"},
	{ID: "education", Label: "Education"},
	{ID: "finance", Label: "Finance"},
	{ID: "startup", Label: "Startups"},
	{ID: "food", Label: "Food & Beverage"},
	{ID: "realestate", Label: "Real Estate"},
	{ID: "fitness", Label: "Fitness"},
	{ID: "creative", Label: "Creative Agency"},
}
