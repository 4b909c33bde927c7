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

package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdecl-go/cdecl/internal/config"
	"github.com/cdecl-go/cdecl/internal/langver"
	"github.com/cdecl-go/cdecl/internal/session"
	"github.com/cdecl-go/cdecl/internal/sname"
)

func TestLoadAppliesSetAndDefine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cdeclrc")
	require.NoError(t, os.WriteFile(path, []byte(
		"set east-const\ndefine ulong as unsigned long\n"), 0o600))

	sess := session.New(langver.C17)
	var errw bytes.Buffer
	require.NoError(t, config.Load(sess, path, &errw))

	assert.True(t, sess.Options.EastConst)
	assert.NotNil(t, sess.Typedefs.Lookup(sname.New("ulong")))
	assert.Empty(t, errw.String())
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	sess := session.New(langver.C17)
	var errw bytes.Buffer
	assert.NoError(t, config.Load(sess, filepath.Join(t.TempDir(), "absent"), &errw))
}

// TestLoadContinuesPastBadCommands: config errors are diagnostics, not
// fatal; later commands still apply, matching batch-mode behavior.
func TestLoadContinuesPastBadCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cdeclrc")
	require.NoError(t, os.WriteFile(path, []byte(
		"set no-such-option\nset east-const\n"), 0o600))

	sess := session.New(langver.C17)
	var errw bytes.Buffer
	require.NoError(t, config.Load(sess, path, &errw))

	assert.True(t, sess.Options.EastConst)
	assert.Contains(t, errw.String(), "no-such-option")
}

func TestDefaultPathRespectsEnv(t *testing.T) {
	t.Setenv(config.EnvVar, "/tmp/custom-cdeclrc")
	assert.Equal(t, "/tmp/custom-cdeclrc", config.DefaultPath())
}
