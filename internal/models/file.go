package models

import "time"

// File kind discriminators as reported by the files connection.
// The union is closed on the remote side today, but new kinds appear
// between API versions, so everything downstream must tolerate values
// outside this set.
const (
	KindGenericFile   = "GenericFile"
	KindMediaImage    = "MediaImage"
	KindVideo         = "Video"
	KindExternalVideo = "ExternalVideo"
	KindModel3d       = "Model3d"
)

// FileNode represents one asset from the store's file library.
// Only the fields matching Typename are populated; the rest stay at
// their zero values.
type FileNode struct {
	Typename  string    `json:"__typename"`
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	// GenericFile
	URL string `json:"url,omitempty"`

	// MediaImage
	Image *ImageSource `json:"image,omitempty"`

	// Video, Model3d
	OriginalSource *OriginalSource `json:"originalSource,omitempty"`

	// ExternalVideo
	EmbeddedURL string `json:"embeddedUrl,omitempty"`
}

// ImageSource is the nested image payload of a MediaImage node.
type ImageSource struct {
	URL string `json:"url"`
}

// OriginalSource is the nested upload-source payload of Video and
// Model3d nodes.
type OriginalSource struct {
	URL string `json:"url"`
}

// FileEdge is one item of the files connection together with its own
// cursor. Pagination resumes after a specific edge, not after a page,
// so the cursor lives here.
type FileEdge struct {
	Cursor string   `json:"cursor"`
	Node   FileNode `json:"node"`
}

// PageInfo carries the page-level continuation flag.
type PageInfo struct {
	HasNextPage bool `json:"hasNextPage"`
}

// FilesConnection is the paginated files collection.
type FilesConnection struct {
	Edges    []FileEdge `json:"edges"`
	PageInfo PageInfo   `json:"pageInfo"`
}

// GraphQLError is one entry of a GraphQL response's errors list.
type GraphQLError struct {
	Message string `json:"message"`
}

// FilesResponse is the full GraphQL envelope for the files query.
type FilesResponse struct {
	Data struct {
		Files FilesConnection `json:"files"`
	} `json:"data"`
	Errors []GraphQLError `json:"errors"`
}
