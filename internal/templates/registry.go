// Package templates holds the process-wide template registry: metadata for
// every registered visual template. The registry is built once at package
// init and is read-only afterwards, so concurrent lookups need no locking.
package templates

// LayoutKind is the structural arrangement of sections within a template.
type LayoutKind string

const (
	// LayoutSingleColumn stacks all sections top to bottom.
	LayoutSingleColumn LayoutKind = "single-column"
	// LayoutTwoColumn renders a narrow sidebar (personal, skills) beside a
	// wide main column.
	LayoutTwoColumn LayoutKind = "two-column"
)

// Config is the immutable metadata of a registered template.
type Config struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	AccentColor  string     `json:"accent_color"`
	Features     []string   `json:"features"`
	SuitableFor  []string   `json:"suitable_for"`
	Layout       LayoutKind `json:"layout"`
	PreviewImage string     `json:"preview_image"`
}

// DefaultTemplateID is the canonical fallback when a template id does not
// resolve. Falling back instead of failing is deliberate: an unknown id is a
// recoverable caller mistake, not a reason to lose an export.
const DefaultTemplateID = "modern"

var registry = []Config{
	{
		ID:           "modern",
		Name:         "Modern",
		Description:  "Clean single-column layout with a colored accent bar and generous whitespace.",
		Category:     "professional",
		AccentColor:  "#2563eb",
		Features:     []string{"accent bar", "single column", "ATS friendly"},
		SuitableFor:  []string{"software engineering", "product", "general"},
		Layout:       LayoutSingleColumn,
		PreviewImage: "/assets/templates/modern.png",
	},
	{
		ID:           "classic",
		Name:         "Classic",
		Description:  "Traditional serif layout with centered header and ruled section dividers.",
		Category:     "traditional",
		AccentColor:  "#1f2937",
		Features:     []string{"serif typography", "ruled dividers", "conservative"},
		SuitableFor:  []string{"finance", "law", "academia"},
		Layout:       LayoutSingleColumn,
		PreviewImage: "/assets/templates/classic.png",
	},
	{
		ID:           "minimal",
		Name:         "Minimal",
		Description:  "Sparse monochrome layout, small caps headings, no decoration.",
		Category:     "minimal",
		AccentColor:  "#111827",
		Features:     []string{"monochrome", "compact", "typography first"},
		SuitableFor:  []string{"design", "research", "general"},
		Layout:       LayoutSingleColumn,
		PreviewImage: "/assets/templates/minimal.png",
	},
	{
		ID:           "sidebar",
		Name:         "Sidebar",
		Description:  "Two-column layout: tinted sidebar for contact details and skills, wide main column for everything else.",
		Category:     "creative",
		AccentColor:  "#0f766e",
		Features:     []string{"two columns", "tinted sidebar", "accent headings"},
		SuitableFor:  []string{"marketing", "creative", "consulting"},
		Layout:       LayoutTwoColumn,
		PreviewImage: "/assets/templates/sidebar.png",
	},
}

// Resolve looks up a template by id. It is a pure lookup: unknown ids return
// ok=false and the caller decides the fallback policy.
func Resolve(id string) (Config, bool) {
	for _, cfg := range registry {
		if cfg.ID == id {
			return cfg, true
		}
	}
	return Config{}, false
}

// ResolveOrDefault resolves id, falling back to the default template when the
// id is unknown. This is the composer's documented fallback policy.
func ResolveOrDefault(id string) Config {
	if cfg, ok := Resolve(id); ok {
		return cfg
	}
	cfg, _ := Resolve(DefaultTemplateID)
	return cfg
}

// List returns the registered templates in registration order. The result is
// a copy; callers may not reach the registry itself.
func List() []Config {
	out := make([]Config, len(registry))
	copy(out, registry)
	return out
}
