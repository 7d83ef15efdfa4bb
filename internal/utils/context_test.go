// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	if got := contextKey("someKey").String(); got != "someKey" {
		t.Errorf("expected 'someKey', got '%s'", got)
	}
	if got := UserIDCtxKey.String(); got != "userID" {
		t.Errorf("expected 'userID', got '%s'", got)
	}
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID int64
		wantOK bool
	}{
		{
			name:   "present",
			ctx:    context.WithValue(context.Background(), UserIDCtxKey, int64(42)),
			wantID: 42,
			wantOK: true,
		},
		{
			name:   "zero value is still present",
			ctx:    context.WithValue(context.Background(), UserIDCtxKey, int64(0)),
			wantID: 0,
			wantOK: true,
		},
		{
			name:   "missing",
			ctx:    context.Background(),
			wantOK: false,
		},
		{
			name:   "wrong type",
			ctx:    context.WithValue(context.Background(), UserIDCtxKey, "not-an-int64"),
			wantOK: false,
		},
		{
			name:   "different key",
			ctx:    context.WithValue(context.Background(), contextKey("otherKey"), int64(99)),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, ok := GetUserIDFromContext(tt.ctx)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if userID != tt.wantID {
				t.Errorf("expected userID=%d, got %d", tt.wantID, userID)
			}
		})
	}
}
