// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOr(t *testing.T) {
	require.Equal(t, "b", Or("", "  ", "b", "c"))
	require.Equal(t, "", Or())
	require.Equal(t, "", Or("", " "))
}

func TestYes(t *testing.T) {
	require.True(t, Yes("yes"))
	require.True(t, Yes(" YES "))
	require.True(t, Yes("true"))
	require.True(t, Yes("1"))
	require.False(t, Yes("no"))
	require.False(t, Yes(""))
}

func TestFirstParsedTime(t *testing.T) {
	when := FirstParsedTime("2026-10-17", time.RFC3339, ISODateFormat)
	require.Equal(t, time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC), when)

	when = FirstParsedTime("2026-10-17T09:30:00Z", time.RFC3339, ISODateFormat)
	require.Equal(t, 9, when.Hour())

	require.True(t, FirstParsedTime("17/10/2026", time.RFC3339, ISODateFormat).IsZero())
}
