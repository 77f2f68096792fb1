package schemanode

// UnknownPolicy controls what construction does with keywords outside the
// recognized vocabulary. Unknown keywords are never rejected.
type UnknownPolicy int

const (
	UnknownRetain UnknownPolicy = iota // Keep unknown keywords in Schema.Extra (round-trip safe).
	UnknownDrop                        // Discard unknown keywords.
)

// Strictness configures enforcement applied to the raw token stream.
type Strictness struct {
	OnDuplicateKey Severity // Ignore, Warn or Error on duplicate JSON object keys.
}

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// ParseOpt bundles construction options. Functions taking ...ParseOpt use the
// last value supplied.
type ParseOpt struct {
	Strictness Strictness
	Unknown    UnknownPolicy
	MaxDepth   int
	MaxBytes   int64
	FailFast   bool
	// StrictBounds rejects min*/max* keyword pairs where the minimum exceeds
	// the maximum. Such schemas are syntactically valid, so this is opt-in.
	StrictBounds bool
	// Placeholder replaces every sub-schema that fails construction with the
	// permissive true schema. The tree is then returned together with the
	// Issues describing what was replaced. Combined with FailFast the tree
	// stops at the first failure.
	Placeholder bool
	// OnIssue receives non-fatal issues (duplicate key warnings) as they are found.
	OnIssue func(Issue)
}

func lastOpt(opts []ParseOpt) ParseOpt {
	if len(opts) == 0 {
		return ParseOpt{}
	}
	return opts[len(opts)-1]
}
