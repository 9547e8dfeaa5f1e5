// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"encoding/json"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/spellbook/internal/errors"
	kvstoremock "github.com/KirkDiggler/spellbook/internal/kvstore/mock"
)

// ExpectEmptyStore makes every Get on the mock report a missing key
func ExpectEmptyStore(ctx context.Context, store *kvstoremock.MockStore) {
	store.EXPECT().
		Get(ctx, gomock.Any()).
		Return(nil, errors.NotFound("key not found")).
		AnyTimes()
}

// ExpectStoredJSON makes a Get for key return value encoded as JSON
func ExpectStoredJSON(ctx context.Context, store *kvstoremock.MockStore, key string, value any) *gomock.Call {
	data, err := json.Marshal(value)
	if err != nil {
		panic(err)
	}
	return store.EXPECT().
		Get(ctx, key).
		Return(data, nil)
}

// ExpectStoreOutage makes every Get on the mock fail as unavailable
func ExpectStoreOutage(ctx context.Context, store *kvstoremock.MockStore) {
	store.EXPECT().
		Get(ctx, gomock.Any()).
		Return(nil, errors.Unavailable("store is down")).
		AnyTimes()
}
