// Copyright 2020 ZUP IT SERVICOS EM TECNOLOGIA E INOVACAO SA
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmdlang_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdecl-go/cdecl/internal/cmdlang"
	"github.com/cdecl-go/cdecl/internal/langver"
	"github.com/cdecl-go/cdecl/internal/session"
)

func newRunner(t *testing.T, v langver.Version) (*cmdlang.Runner, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return &cmdlang.Runner{Sess: session.New(v), Out: out}, out
}

// run executes one command and returns its trimmed output, failing the
// test on any error.
func run(t *testing.T, r *cmdlang.Runner, out *bytes.Buffer, line string) string {
	t.Helper()
	out.Reset()
	quit, err := r.Execute(line, 1)
	require.NoError(t, err, "command %q", line)
	require.False(t, quit)
	return strings.TrimSpace(out.String())
}

// TestEndToEnd runs the translator both directions on the canonical
// scenarios, language c++17.
func TestEndToEnd(t *testing.T) {
	testcases := []struct {
		command  string
		expected string
	}{
		{
			command:  "explain int (*f)(char)",
			expected: "declare f as pointer to function (char) returning int",
		},
		{
			command:  "explain int (*(*x)[3])[5]",
			expected: "declare x as pointer to array 3 of pointer to array 5 of int",
		},
		{
			command:  "declare p as pointer to array 3 of pointer to function (int) returning int",
			expected: "int (*(*p)[3])(int)",
		},
		{
			command:  "explain static int f(void)",
			expected: "declare f as static function (void) returning int",
		},
		{
			command:  "cast x into pointer to function returning void",
			expected: "(void (*)())x",
		},
		{
			command:  "declare x as int",
			expected: "int x",
		},
		{
			command:  "explain int x",
			expected: "declare x as int",
		},
		{
			command:  "declare a as array 3 of pointer to int",
			expected: "int *a[3]",
		},
		{
			command:  "explain int *a[3]",
			expected: "declare a as array 3 of pointer to int",
		},
		{
			command:  "explain int (*x)[3]",
			expected: "declare x as pointer to array 3 of int",
		},
		{
			command:  "declare x as pointer to array 3 of int",
			expected: "int (*x)[3]",
		},
		{
			command:  "explain char **argv",
			expected: "declare argv as pointer to pointer to char",
		},
		{
			command:  "explain const char *s",
			expected: "declare s as pointer to const char",
		},
		{
			command:  "explain (int*)x",
			expected: "cast x into pointer to int",
		},
		{
			command:  "declare f as function (c as char, n as int) returning void",
			expected: "void f(char c, int n)",
		},
		{
			command:  "explain void f(int, ...)",
			expected: "declare f as function (int, ...) returning void",
		},
		{
			command:  "explain int (*f[3])(char)",
			expected: "declare f as array 3 of pointer to function (char) returning int",
		},
		{
			command:  "explain int (*(*f)(char))(int)",
			expected: "declare f as pointer to function (char) returning pointer to function (int) returning int",
		},
		{
			command:  "declare x as struct foo",
			expected: "struct foo x",
		},
		{
			command:  "explain struct foo x",
			expected: "declare x as struct foo",
		},
	}

	for _, tt := range testcases {
		tt := tt
		t.Run(tt.command, func(t *testing.T) {
			r, out := newRunner(t, langver.CPP17)
			assert.Equal(t, tt.expected, run(t, r, out, tt.command))
		})
	}
}

// TestReferenceQualifierError covers the "int& const x" scenario: the
// qualifier on the reference itself is an error located at the qualifier.
func TestReferenceQualifierError(t *testing.T) {
	r, _ := newRunner(t, langver.CPP17)
	_, err := r.Execute("explain int& const x", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reference is always const")
	assert.Contains(t, err.Error(), `"const" not allowed on reference`)
}

// TestGibberishRoundTrip re-parses each gibberish rendering and checks the
// second rendering is identical: parse . render must be idempotent.
func TestGibberishRoundTrip(t *testing.T) {
	decls := []string{
		"int x",
		"int *a[3]",
		"int (*x)[3]",
		"int (*f)(char)",
		"int (*(*x)[3])[5]",
		"void f(int, ...)",
		"char **argv",
	}
	for _, d := range decls {
		d := d
		t.Run(d, func(t *testing.T) {
			r, out := newRunner(t, langver.CPP17)
			english := run(t, r, out, "explain "+d)

			phrase := strings.TrimPrefix(english, "declare ")
			name, typePhrase, ok := strings.Cut(phrase, " as ")
			require.True(t, ok, "unexpected english %q", english)

			rendered := run(t, r, out, "declare "+name+" as "+typePhrase)
			assert.Equal(t, d, rendered)
		})
	}
}

func TestTypedefCommands(t *testing.T) {
	r, out := newRunner(t, langver.C11)

	run(t, r, out, "typedef unsigned long ulong")
	assert.Equal(t, "ulong x", run(t, r, out, "declare x as ulong"))
	assert.Equal(t, "declare x as ulong", run(t, r, out, "explain ulong x"))

	run(t, r, out, "define byte as unsigned char")
	assert.Equal(t, "byte b", run(t, r, out, "declare b as byte"))

	// Identical redefinition is a no-op; a different one is an error.
	run(t, r, out, "define byte as unsigned char")
	_, err := r.Execute("define byte as signed char", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already defined")

	show := run(t, r, out, "show")
	assert.Contains(t, show, "define ulong as unsigned long")
	assert.Contains(t, show, "define byte as unsigned char")
	assert.Contains(t, show, "define size_t as")
}

func TestSetCommands(t *testing.T) {
	r, out := newRunner(t, langver.CPP17)

	run(t, r, out, "set east-const")
	assert.Equal(t, "char const *s", run(t, r, out, "declare s as pointer to const char"))

	run(t, r, out, "set no-east-const")
	assert.Equal(t, "const char *s", run(t, r, out, "declare s as pointer to const char"))

	// Switching to C89 makes C++-only kinds illegal.
	run(t, r, out, "set c89")
	_, err := r.Execute("explain int& x", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported in C")
}

// TestDebugDump: "set debug" prefixes every result with the tree's
// structured dump.
func TestDebugDump(t *testing.T) {
	r, out := newRunner(t, langver.CPP17)
	run(t, r, out, "set debug")
	output := run(t, r, out, "explain int x")
	assert.Contains(t, output, `kind: "builtin"`)
	assert.Contains(t, output, "declare x as int")
}

func TestQuitAndComments(t *testing.T) {
	r, out := newRunner(t, langver.C17)

	quit, err := r.Execute("quit", 1)
	require.NoError(t, err)
	assert.True(t, quit)

	quit, err = r.Execute("# just a comment", 1)
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Empty(t, out.String())

	quit, err = r.Execute("   ", 1)
	require.NoError(t, err)
	assert.False(t, quit)
}

// TestImplicitExplain covers raw gibberish typed with no command word.
func TestImplicitExplain(t *testing.T) {
	r, out := newRunner(t, langver.CPP17)
	assert.Equal(t, "declare f as pointer to function (char) returning int",
		run(t, r, out, "int (*f)(char)"))
}

func TestDeepNesting(t *testing.T) {
	// A single-spine declarator at least 32 levels deep must be accepted.
	d := strings.Repeat("pointer to ", 32) + "int"
	r, out := newRunner(t, langver.CPP17)
	rendered := run(t, r, out, "declare x as "+d)
	assert.Equal(t, "int "+strings.Repeat("*", 32)+"x", rendered)

	english := run(t, r, out, "explain "+rendered)
	assert.Equal(t, "declare x as "+d+"", english)
}

func TestSemicolonTerminator(t *testing.T) {
	r, out := newRunner(t, langver.CPP17)
	assert.Equal(t, "declare x as int", run(t, r, out, "explain int x;"))
}
