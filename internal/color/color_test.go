// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsColorEnabled(t *testing.T) {
	t.Setenv(NoColor, "1")
	assert.False(t, isColorEnabled(-1), "Expected color output to be disabled")

	t.Setenv(ForceColor, "1")
	assert.False(t, isColorEnabled(-1), "Expected NO_COLOR to win over FORCE_COLOR")

	t.Setenv(NoColor, "")
	assert.True(t, isColorEnabled(-1), "Expected FORCE_COLOR to enable color")

	t.Setenv(ForceColor, "")
	assert.False(t, isColorEnabled(-1), "Expected an invalid descriptor not to be a terminal")
}

func TestColorize(t *testing.T) {
	old := enabled
	t.Cleanup(func() { enabled = old })

	enabled = false
	assert.Equal(t, "plain", Colorize("plain", FgRed))

	enabled = true
	assert.Equal(t, "\033[31mred\033[0m", Colorize("red", FgRed))
	assert.Equal(t, "\033[1;32mok\033[0m", Colorize("ok", Bold, FgGreen))
	assert.Equal(t, "nocodes", Colorize("nocodes"))
}
