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

// cdecl translates between English descriptions of C/C++ declarations and
// the corresponding source syntax. When invoked as cppdecl or cxxdecl the
// default language is C++.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cdecl-go/cdecl/internal/cli"
)

func main() {
	// An invariant violation anywhere in the core panics; map it to the
	// internal-error exit code instead of a bare Go traceback.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "cdecl: internal error: %v\n", r)
			os.Exit(cli.ExitInternal)
		}
	}()

	root := cli.NewRootCmd(invokedAsCPP())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cdecl: %s\n", err)
		os.Exit(cli.ExitCode(err))
	}
}

// invokedAsCPP reports whether the program name selects C++ as the default
// language, e.g. via a cppdecl or cxxdecl symlink.
func invokedAsCPP() bool {
	name := strings.TrimSuffix(filepath.Base(os.Args[0]), ".exe")
	switch name {
	case "cppdecl", "cxxdecl", "c++decl":
		return true
	}
	return false
}
