// Package file models uploaded files grouped under a common file group.
package file

import (
	"context"
	"path"
	"strings"
	"time"

	"likenovel/internal/shared/errors"
)

// GroupType is the kind of content a file group belongs to.
type GroupType string

const (
	GroupBadge   GroupType = "badge"
	GroupCover   GroupType = "cover"
	GroupEpisode GroupType = "episode"
	GroupPanel   GroupType = "panel"
	GroupUser    GroupType = "user"
)

func (g GroupType) IsValid() bool {
	switch g {
	case GroupBadge, GroupCover, GroupEpisode, GroupPanel, GroupUser:
		return true
	}
	return false
}

func ParseGroupType(s string) (GroupType, error) {
	g := GroupType(s)
	if !g.IsValid() {
		return "", errors.ErrInvalidGroupType
	}
	return g, nil
}

// StoredName builds "<uuid><.ext>" from the original file name, lower-casing the extension.
func StoredName(id, originalName string) string {
	return id + strings.ToLower(path.Ext(originalName))
}

// ObjectKey is the object-storage key "{group_type}/{stored name}".
func ObjectKey(group GroupType, storedName string) string {
	return string(group) + "/" + storedName
}

// CDNPath joins the CDN base URL and the object key.
func CDNPath(cdnURL, key string) string {
	return strings.TrimRight(cdnURL, "/") + "/" + key
}

// Item is a stored file record.
type Item struct {
	FileID      int64
	FileGroupID int64
	FileName    string
	FileOrgName string
	FilePath    string
	FileSize    int64
}

type Repository interface {
	// NameInUse reports whether an active item already carries name.
	NameInUse(ctx context.Context, name string) (bool, error)
	CreateGroup(ctx context.Context, group GroupType, writerID int64, now time.Time) (int64, error)
	CreateItem(ctx context.Context, item *Item, writerID int64, now time.Time) error
}

// Presigner issues upload URLs for object-storage keys.
type Presigner interface {
	PresignUpload(ctx context.Context, key, contentType string) (string, error)
}
