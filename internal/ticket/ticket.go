package ticket

// Request is the body of a create-issue call.
type Request struct {
	Fields Fields   `json:"fields"`
	Update struct{} `json:"update"`
}

// Fields holds the issue fields sent on creation.
type Fields struct {
	Summary     string       `json:"summary"`
	Description Document     `json:"description"`
	Project     ProjectRef   `json:"project"`
	IssueType   IssueTypeRef `json:"issuetype"`
}

// ProjectRef selects the target project by key.
type ProjectRef struct {
	Key string `json:"key"`
}

// IssueTypeRef selects the issue type by id.
type IssueTypeRef struct {
	ID string `json:"id"`
}

// Builder maps an issue's title and body onto a create-issue request for a
// fixed project and issue type.
type Builder struct {
	ProjectKey  string
	IssueTypeID string
}

// NewBuilder creates a Builder targeting the given project and issue type.
func NewBuilder(projectKey, issueTypeID string) Builder {
	return Builder{ProjectKey: projectKey, IssueTypeID: issueTypeID}
}

// Build never fails. The title is used as the summary without truncation.
func (b Builder) Build(title, body string) Request {
	return Request{
		Fields: Fields{
			Summary:     title,
			Description: NewDocument(body),
			Project:     ProjectRef{Key: b.ProjectKey},
			IssueType:   IssueTypeRef{ID: b.IssueTypeID},
		},
	}
}
