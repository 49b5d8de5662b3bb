// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/inkspire/models"
)

// authorizeOwner allows the call only when callerID owns resource.
// Anonymous callers (zero id) never own anything.
func authorizeOwner(resource models.Owned, callerID int64) error {
	if callerID == 0 || resource.OwnerID() != callerID {
		return ErrAccessDenied
	}
	return nil
}

// authorizeRead allows any caller to read public resources and only the
// owner to read private ones.
func authorizeRead(resource models.Shareable, callerID int64) error {
	if resource.IsPublic() {
		return nil
	}
	return authorizeOwner(resource, callerID)
}

// loadOwned finds the resource with id and checks that callerID owns it.
// The decision is made on the freshly loaded row every time.
func loadOwned[T models.Owned](ctx context.Context, find func(context.Context, int64) (T, error), id, callerID int64) (T, error) {
	var zero T

	resource, err := find(ctx, id)
	if err != nil {
		return zero, err
	}
	if err = authorizeOwner(resource, callerID); err != nil {
		return zero, err
	}
	return resource, nil
}

// loadReadable finds the resource with id and checks that callerID may
// read it.
func loadReadable[T models.Shareable](ctx context.Context, find func(context.Context, int64) (T, error), id, callerID int64) (T, error) {
	var zero T

	resource, err := find(ctx, id)
	if err != nil {
		return zero, err
	}
	if err = authorizeRead(resource, callerID); err != nil {
		return zero, err
	}
	return resource, nil
}
