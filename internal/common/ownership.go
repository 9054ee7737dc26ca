package common

import (
	"context"

	"github.com/tamaliftics/backend/pkg/errorx"
	"github.com/tamaliftics/backend/pkg/xcontext"
)

// AssertOwned fails with PermissionDenied when the requesting user is not
// the owner of the row.
func AssertOwned(ctx context.Context, ownerID string) error {
	if ownerID != xcontext.RequestUserID(ctx) {
		return errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	return nil
}
