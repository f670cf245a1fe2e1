// Package jsonapi shapes API responses as JSON:API documents.
// See https://jsonapi.org/format/.
package jsonapi

// MediaType is the JSON:API content type.
const MediaType = "application/vnd.api+json"

// Document is a top-level JSON:API document. A document carries either
// data or errors, never both.
type Document struct {
	Data   any     `json:"data,omitempty"`
	Meta   *Meta   `json:"meta,omitempty"`
	Errors []Error `json:"errors,omitempty"`
}

// Meta holds non-standard information about a document.
type Meta map[string]any

// Resource is a JSON:API resource object.
type Resource struct {
	Type          string        `json:"type"`
	ID            string        `json:"id"`
	Attributes    any           `json:"attributes"`
	Relationships Relationships `json:"relationships,omitempty"`
}

// Relationships maps relationship names to their linkage.
type Relationships map[string]*Relationship

// Relationship holds resource linkage for one relationship.
type Relationship struct {
	Data ResourceIdentifier `json:"data"`
}

// ResourceIdentifier points at another resource.
type ResourceIdentifier struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Error is a JSON:API error object.
type Error struct {
	Status string `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

// NewResource creates a resource without relationships.
func NewResource(resourceType, id string, attrs any) *Resource {
	return &Resource{Type: resourceType, ID: id, Attributes: attrs}
}

// NewSingleResponse wraps one resource.
func NewSingleResponse(resource *Resource) *Document {
	return &Document{Data: resource}
}

// NewListResponse wraps a list of resources. An empty list is encoded as
// [] rather than omitted.
func NewListResponse(resources []*Resource) *Document {
	if resources == nil {
		resources = []*Resource{}
	}
	return &Document{Data: resources}
}

// NewErrorResponse wraps error objects.
func NewErrorResponse(errors ...Error) *Document {
	return &Document{Errors: errors}
}

// NewError creates an error object.
func NewError(status, title, detail string) Error {
	return Error{Status: status, Title: title, Detail: detail}
}
