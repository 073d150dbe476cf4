package data

import "intrack/internal/model"

/*

A Store is where the internship list lives between sessions.

After creation, a Store must be Opened or Created before any other methods are invoked

*/

// ViewMetadata is the sort and filter description saved at the end of a session, so the next one
// can rebuild the same view through the command layer
type ViewMetadata struct {
	SortPrefix      string
	SortOrder       model.SortOrder
	FilterParameter string
	FilterValue     string
}

type Store interface {
	Open(filepath string) error

	Create(filepath string) error

	Close() error

	LoadInternships() (*model.InternshipBook, error)

	SaveInternships(book model.ReadOnlyInternshipBook) error

	LastView() (ViewMetadata, error)

	SaveLastView(v ViewMetadata) error
}
