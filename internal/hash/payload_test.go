// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package hash

import (
	"testing"
)

func TestPayload(t *testing.T) {
	sum, err := Payload([]byte("hello"))
	if err != nil {
		t.Fatal(err)
	}
	if sum != "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824" {
		t.Errorf("sum=%s", sum)
	}

	if _, err := Payload(nil); err == nil {
		t.Error("expected error")
	}
}
