package domain

// Category is one of the independent axes a page is evaluated on.
type Category string

const (
	// CategoryMeta covers titles, descriptions, canonicals and robots directives.
	CategoryMeta Category = "meta"
	// CategoryBody covers the rendered page body.
	CategoryBody Category = "body"
	// CategorySocial covers Open Graph and Twitter card tags.
	CategorySocial Category = "social"
	// CategorySchema covers JSON-LD structured data.
	CategorySchema Category = "schema"
)

// Severity ranks how much an issue hurts the page.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Issue is a single finding produced by a check.
type Issue struct {
	// Code is a stable machine readable identifier, e.g. "missing_title".
	Code string `json:"code"`
	// Severity ranks the finding.
	Severity Severity `json:"severity"`
	// Message is a human readable explanation.
	Message string `json:"message"`
}

// IssueResult is the outcome of one category check for one URL.
type IssueResult struct {
	Category Category `json:"category"`
	Issues   []Issue  `json:"issues"`
}

// Add appends an issue to the result.
func (r *IssueResult) Add(code string, severity Severity, message string) {
	r.Issues = append(r.Issues, Issue{Code: code, Severity: severity, Message: message})
}

// Has reports whether the result contains an issue with the given code.
func (r IssueResult) Has(code string) bool {
	for _, issue := range r.Issues {
		if issue.Code == code {
			return true
		}
	}

	return false
}

// IssueBundle groups the four category results of one URL.
type IssueBundle struct {
	Meta   IssueResult `json:"meta"`
	Body   IssueResult `json:"body"`
	Social IssueResult `json:"social"`
	Schema IssueResult `json:"schema"`
}

// Count returns the total number of issues across all categories.
func (b IssueBundle) Count() int {
	return len(b.Meta.Issues) + len(b.Body.Issues) + len(b.Social.Issues) + len(b.Schema.Issues)
}

// URLIssues is a persisted issue bundle together with the URL it belongs to.
type URLIssues struct {
	URLID  string      `json:"urlId"`
	Bundle IssueBundle `json:"bundle"`
}
