// Package classify maps file-library nodes to their media category
// and downloadable source URL.
package classify

import "github.com/shopvault/shopvault/internal/models"

// Category is the on-disk folder a node's content lands in.
type Category string

const (
	CategoryGeneric  Category = "generic"
	CategoryImages   Category = "images"
	CategoryVideos   Category = "videos"
	CategoryModels   Category = "models"
	CategoryExternal Category = "external"
	CategoryUnknown  Category = "unknown"
)

// Categories lists every category folder, unknown included, in the
// order they are created under the output directory.
var Categories = []Category{
	CategoryGeneric,
	CategoryImages,
	CategoryVideos,
	CategoryModels,
	CategoryExternal,
	CategoryUnknown,
}

// Target is the classification result for one node. An empty URL means
// the node has nothing to download: either its kind is not recognized,
// or the URL-bearing field for its kind is absent.
type Target struct {
	URL      string
	Category Category
}

// Classify derives the download target for a node from its kind.
//
// The mapping is total: a kind outside the recognized set degrades to
// CategoryUnknown with an empty URL rather than failing, so new node
// types on the remote side never break an archive run.
func Classify(node models.FileNode) Target {
	switch node.Typename {
	case models.KindGenericFile:
		return Target{URL: node.URL, Category: CategoryGeneric}
	case models.KindMediaImage:
		var url string
		if node.Image != nil {
			url = node.Image.URL
		}
		return Target{URL: url, Category: CategoryImages}
	case models.KindVideo:
		var url string
		if node.OriginalSource != nil {
			url = node.OriginalSource.URL
		}
		return Target{URL: url, Category: CategoryVideos}
	case models.KindModel3d:
		var url string
		if node.OriginalSource != nil {
			url = node.OriginalSource.URL
		}
		return Target{URL: url, Category: CategoryModels}
	case models.KindExternalVideo:
		return Target{URL: node.EmbeddedURL, Category: CategoryExternal}
	default:
		return Target{Category: CategoryUnknown}
	}
}
