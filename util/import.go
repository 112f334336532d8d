/*
 * cflow
 *
 * Copyright 2026 The cflow Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
)

// SourceLocator implementations
// ==============================

/*
SourceLocator resolves a named source file into its text.
*/
type SourceLocator interface {

	/*
		Resolve a given source path into its full text.
	*/
	Resolve(path string) (string, error)
}

/*
MemorySourceLocator holds a given set of sources in memory, useful for
tests that feed the core without touching disk.
*/
type MemorySourceLocator struct {
	Files map[string]string
}

/*
Resolve a given source path into its full text.
*/
func (sl *MemorySourceLocator) Resolve(path string) (string, error) {
	res, ok := sl.Files[path]

	if !ok {
		return "", fmt.Errorf("could not find source path: %v", path)
	}

	return res, nil
}

/*
FileSourceLocator locates files on disk relative to a root directory.
Resolve refuses any path that would escape the root.
*/
type FileSourceLocator struct {
	Root string // Relative root path
}

/*
Resolve a given source path into its full text.
*/
func (sl *FileSourceLocator) Resolve(path string) (string, error) {
	var res string

	sourcePath := filepath.Clean(filepath.Join(sl.Root, path))

	ok, err := isSubpath(sl.Root, sourcePath)

	if err == nil && !ok {
		err = fmt.Errorf("source path is outside of root: %v", path)
	}

	if err == nil {
		var b []byte
		if b, err = ioutil.ReadFile(sourcePath); err != nil {
			err = fmt.Errorf("could not read source %v: %v", path, err)
		} else {
			res = string(b)
		}
	}

	return res, err
}

/*
isSubpath checks if the given sub path is a child path of root.
*/
func isSubpath(root, sub string) (bool, error) {
	rel, err := filepath.Rel(root, sub)
	return err == nil &&
		!strings.HasPrefix(rel, fmt.Sprintf("..%v", string(os.PathSeparator))) &&
		rel != "..", err
}
