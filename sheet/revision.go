package sheet

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/drive/v3"
)

// Revision identifies a Drive file revision.
type Revision struct {
	ID       string
	Modified time.Time
}

// LatestRevision pages through the Drive revision list for a file and
// returns the most recently modified revision.
func LatestRevision(ctx context.Context, gdrive *drive.Service, fileID string) (Revision, error) {
	page := ""
	latest := Revision{}

	for {
		call := gdrive.Revisions.List(fileID).Fields("nextPageToken", "revisions(id,modifiedTime)").Context(ctx)
		if page != "" {
			call = call.PageToken(page)
		}

		revisions, err := call.Do()
		if err != nil {
			return Revision{}, fmt.Errorf("unable to list revisions (%w)", err)
		}

		for _, revision := range revisions.Revisions {
			datetime, err := time.Parse("2006-01-02T15:04:05.999Z", revision.ModifiedTime)
			if err != nil {
				return Revision{}, err
			}

			if latest.Modified.Before(datetime) {
				latest.ID = revision.Id
				latest.Modified = datetime
			}
		}

		if page = revisions.NextPageToken; page == "" {
			break
		}
	}

	if latest.Modified.IsZero() {
		return Revision{}, fmt.Errorf("unable to identify latest revision for file ID %s", fileID)
	}

	return latest, nil
}
