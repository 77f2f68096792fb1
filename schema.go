package schemanode

// Schema is one JSON Schema document or sub-schema. Every field is optional:
// nil (or a nil slice) means the keyword is absent and imposes nothing. A
// present but empty sequence is a non-nil empty slice.
//
// The tree is owned top-down: each map and slice exclusively owns its
// children. Ref is a plain identifier; it is never followed, so the tree has
// no ownership cycles even when references are logically cyclic.
//
// A Schema built by Parse is treated as immutable and is safe for concurrent
// readers. Consumers that need to annotate nodes should Clone first.
type Schema struct {
	// Identity and annotations.
	ID                  *string // id (draft-04 and older)
	DollarID            *string // $id
	SchemaURI           *string // $schema
	Comment             *string // $comment
	Title               *string
	Description         *string
	MarkdownDescription *string
	Default             *Value
	Examples            []Value

	Type *TypeSet

	// Object keywords.
	Required             []string
	Properties           *Map[*SchemaOrBool]
	PatternProperties    *Map[*SchemaOrBool]
	AdditionalProperties *SchemaOrBool
	MinProperties        *int
	MaxProperties        *int
	Dependencies         *Map[Dependency]
	PropertyNames        *SchemaOrBool

	// Array keywords.
	Items           *Items
	AdditionalItems *SchemaOrBool
	MinItems        *int
	MaxItems        *int
	UniqueItems     *bool
	Contains        *SchemaOrBool

	// String keywords.
	Pattern   *string
	MinLength *int
	MaxLength *int

	// Numeric keywords.
	Minimum          *Number
	Maximum          *Number
	ExclusiveMinimum *ExclusiveBound
	ExclusiveMaximum *ExclusiveBound
	MultipleOf       *Number

	// Composition.
	Ref    *string // $ref
	AllOf  []*SchemaOrBool
	AnyOf  []*SchemaOrBool
	OneOf  []*SchemaOrBool
	Not    *SchemaOrBool
	If     *SchemaOrBool
	Then   *SchemaOrBool
	Else   *SchemaOrBool
	Enum   []Value
	Const  *Value
	Format *string

	// Sub-schema registries. Not constraints; namespaces for $ref targets.
	Definitions *Map[*SchemaOrBool]
	Defs        *Map[*SchemaOrBool] // $defs

	// Editor extensions. No validation semantics.
	DefaultSnippets          []Snippet
	ErrorMessage             *string
	PatternErrorMessage      *string
	DeprecationMessage       *string
	EnumDescriptions         []string
	MarkdownEnumDescriptions []string
	DoNotSuggest             *bool
	SuggestSortText          *string
	AllowComments            *bool
	AllowTrailingCommas      *bool

	// Extra holds keywords outside the vocabulary above, in document order.
	Extra *Map[Value]

	// keywords records the order keys appeared in the source document.
	keywords []string
}

// IsEmpty reports whether s carries no keyword at all, making it
// equivalent to the schema true.
func (s *Schema) IsEmpty() bool {
	if s == nil {
		return true
	}
	if s.Extra.Len() > 0 {
		return false
	}
	for i := range vocabulary {
		if vocabulary[i].has(s) {
			return false
		}
	}
	return true
}

// Keywords lists the keywords present on s: document order for parsed nodes,
// followed by any keyword set programmatically afterwards.
func (s *Schema) Keywords() []string {
	if s == nil {
		return nil
	}
	var out []string
	seen := map[string]bool{}
	for _, k := range s.keywords {
		if s.hasKeyword(k) && !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	for i := range vocabulary {
		k := vocabulary[i].name
		if !seen[k] && vocabulary[i].has(s) {
			seen[k] = true
			out = append(out, k)
		}
	}
	for k := range s.Extra.All() {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

func (s *Schema) hasKeyword(k string) bool {
	if kw, ok := vocabularyIndex[k]; ok {
		return kw.has(s)
	}
	return s.Extra.Has(k)
}

// EnumDescription returns the i-th enumDescriptions entry, tolerating lists
// shorter than enum by reporting a missing entry as absent.
func (s *Schema) EnumDescription(i int) (string, bool) {
	return indexString(s.EnumDescriptions, i)
}

// MarkdownEnumDescription is EnumDescription for markdownEnumDescriptions.
func (s *Schema) MarkdownEnumDescription(i int) (string, bool) {
	return indexString(s.MarkdownEnumDescriptions, i)
}

func indexString(ss []string, i int) (string, bool) {
	if i < 0 || i >= len(ss) {
		return "", false
	}
	return ss[i], true
}
