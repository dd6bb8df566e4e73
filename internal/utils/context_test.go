// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Kovalev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGetOriginFromContext_Found verifies that an origin stored under
// OriginCtxKey is retrieved with ok == true.
func TestGetOriginFromContext_Found(t *testing.T) {
	ctx := context.WithValue(context.Background(), OriginCtxKey, "tui")

	origin, ok := GetOriginFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, "tui", origin)
}

// TestGetOriginFromContext_Missing verifies that a context without an origin
// yields ok == false.
func TestGetOriginFromContext_Missing(t *testing.T) {
	origin, ok := GetOriginFromContext(context.Background())

	assert.False(t, ok)
	assert.Empty(t, origin)
}

// TestGetOriginFromContext_WrongType verifies that a value of the wrong type
// under the key yields ok == false rather than a panic.
func TestGetOriginFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), OriginCtxKey, 42)

	origin, ok := GetOriginFromContext(ctx)

	assert.False(t, ok)
	assert.Empty(t, origin)
}

// TestContextKey_String verifies the fmt.Stringer implementation.
func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "origin", OriginCtxKey.String())
}
