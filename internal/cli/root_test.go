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

package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdecl-go/cdecl/internal/cli"
)

func execute(t *testing.T, args []string, stdin string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := cli.NewRootCmd(false)
	out := &bytes.Buffer{}
	errw := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errw)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errw.String(), err
}

func TestPipeMode(t *testing.T) {
	out, _, err := execute(t,
		[]string{"--no-config", "--language", "c++17"},
		"explain int (*f)(char)\n")
	require.NoError(t, err)
	assert.Equal(t, "declare f as pointer to function (char) returning int\n", out)
}

func TestFileArgument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.cdecl")
	require.NoError(t, os.WriteFile(path, []byte("declare x as pointer to int\n"), 0o600))

	out, _, err := execute(t, []string{"--no-config", "-l", "c11", path}, "")
	require.NoError(t, err)
	assert.Equal(t, "int *x\n", out)
}

func TestMissingInputFile(t *testing.T) {
	_, _, err := execute(t,
		[]string{"--no-config", filepath.Join(t.TempDir(), "absent.cdecl")}, "")
	require.Error(t, err)
	assert.Equal(t, cli.ExitNoInput, cli.ExitCode(err))
}

func TestUnknownLanguage(t *testing.T) {
	_, _, err := execute(t, []string{"--no-config", "--language", "cobol"}, "")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestBatchSemanticErrorExitsData(t *testing.T) {
	_, stderr, err := execute(t,
		[]string{"--no-config", "-l", "c++17"},
		"explain int& const x\n")
	require.Error(t, err)
	assert.Equal(t, cli.ExitData, cli.ExitCode(err))
	assert.Contains(t, stderr, "reference is always const")
}

func TestEastConstFlag(t *testing.T) {
	out, _, err := execute(t,
		[]string{"--no-config", "--east-const", "-l", "c++17"},
		"declare s as pointer to const char\n")
	require.NoError(t, err)
	assert.Equal(t, "char const *s\n", out)
}

func TestDefaultLanguageForCPPInvocation(t *testing.T) {
	cmd := cli.NewRootCmd(true)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("explain int& r\n"))
	cmd.SetArgs([]string{"--no-config"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "declare r as reference to int\n", out.String())
}
