// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package redirect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{
			name:   "no operator",
			tokens: []string{"ls", "-l"},
			want:   []string{"ls", "-l"},
		},
		{
			name:   "standalone operator untouched",
			tokens: []string{"echo", "hi", ">", "out"},
			want:   []string{"echo", "hi", ">", "out"},
		},
		{
			name:   "embedded in command",
			tokens: []string{"ls>out.txt"},
			want:   []string{"ls", ">", "out.txt"},
		},
		{
			name:   "embedded in argument shifts the rest",
			tokens: []string{"echo", "a>b", "c"},
			want:   []string{"echo", "a", ">", "b", "c"},
		},
		{
			name:   "trailing operator",
			tokens: []string{"echo", "hi>"},
			want:   []string{"echo", "hi", ">"},
		},
		{
			name:   "leading operator",
			tokens: []string{"echo", ">out"},
			want:   []string{"echo", ">", "out"},
		},
		{
			name:   "every occurrence is split",
			tokens: []string{"a>b>c"},
			want:   []string{"a", ">", "b", ">", "c"},
		},
		{
			name:   "append operator becomes two operators",
			tokens: []string{"echo", ">>"},
			want:   []string{"echo", ">", ">"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Expand(tc.tokens))
		})
	}
}

func TestExpand_DoesNotModifyInput(t *testing.T) {
	in := []string{"ls>out", "x"}
	_ = Expand(in)
	assert.Equal(t, []string{"ls>out", "x"}, in)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		tokens  []string
		want    Spec
		wantErr error
	}{
		{
			name:   "plain command",
			tokens: []string{"ls", "-l", "/tmp"},
			want:   Spec{Argv: []string{"ls", "-l", "/tmp"}},
		},
		{
			name:   "spaced redirection",
			tokens: []string{"echo", "hi", ">", "out.txt"},
			want:   Spec{Argv: []string{"echo", "hi"}, Target: "out.txt"},
		},
		{
			name:   "glued redirection",
			tokens: []string{"ls>out.txt"},
			want:   Spec{Argv: []string{"ls"}, Target: "out.txt"},
		},
		{
			name:   "half glued redirection",
			tokens: []string{"ls", ">out.txt"},
			want:   Spec{Argv: []string{"ls"}, Target: "out.txt"},
		},
		{
			name:    "operator leads",
			tokens:  []string{">", "out.txt"},
			wantErr: ErrNoCommand,
		},
		{
			name:    "operator glued to target leads",
			tokens:  []string{">out.txt"},
			wantErr: ErrNoCommand,
		},
		{
			name:    "two operators",
			tokens:  []string{"echo", "hi", ">", "a", ">", "b"},
			wantErr: ErrMultipleRedirects,
		},
		{
			name:    "two glued operators",
			tokens:  []string{"echo", "hi>a>b"},
			wantErr: ErrMultipleRedirects,
		},
		{
			name:    "missing target",
			tokens:  []string{"echo", "hi", ">"},
			wantErr: ErrBadTarget,
		},
		{
			name:    "two targets",
			tokens:  []string{"echo", "hi", ">", "a", "b"},
			wantErr: ErrBadTarget,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.tokens)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, got.Argv)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want.Target != "", got.Redirected())
		})
	}
}
