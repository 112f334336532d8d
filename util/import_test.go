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
	"testing"

	"github.com/krotik/common/errorutil"
	"github.com/krotik/common/fileutil"
)

const sourceTestDir = "sourcetest"

func TestFileSourceLocator(t *testing.T) {
	if res, _ := fileutil.PathExists(sourceTestDir); res {
		os.RemoveAll(sourceTestDir)
	}

	err := os.Mkdir(sourceTestDir, 0770)
	if err != nil {
		t.Error("Could not create test dir:", err)
		return
	}

	defer func() {

		// Teardown

		if err := os.RemoveAll(sourceTestDir); err != nil {
			t.Error("Could not remove test dir:", err)
			return
		}
	}()

	err = os.Mkdir(filepath.Join(sourceTestDir, "test1"), 0770)
	if err != nil {
		t.Error("Could not create test dir:", err)
		return
	}

	codecontent := "\nwhile (x) { foo(); }\n"

	ioutil.WriteFile(filepath.Join(sourceTestDir, "test1", "myfile.c"),
		[]byte(codecontent), 0770)

	fsl := &FileSourceLocator{sourceTestDir}

	res, err := fsl.Resolve(filepath.Join("..", "t"))

	expectedError := fmt.Sprintf("source path is outside of root: ..%vt",
		string(os.PathSeparator))

	if res != "" || err.Error() != expectedError {
		t.Error("Unexpected result:", res, err)
		return
	}

	res, err = fsl.Resolve(filepath.Join("..", sourceTestDir, "x"))

	if res != "" || !strings.HasPrefix(err.Error(), "could not read source") {
		t.Error("Unexpected result:", res, err)
		return
	}

	res, err = fsl.Resolve(filepath.Join("test1", "myfile.c"))
	errorutil.AssertOk(err)

	if res != codecontent {
		t.Error("Unexpected result:", res, err)
		return
	}

	msl := &MemorySourceLocator{make(map[string]string)}

	msl.Files["foo"] = "bar"
	msl.Files["test"] = "test1"

	_, err = msl.Resolve("xxx")

	if err.Error() != "could not find source path: xxx" {
		t.Error("Unexpected result:", res, err)
		return
	}

	res, err = msl.Resolve("foo")
	errorutil.AssertOk(err)

	if res != "bar" {
		t.Error("Unexpected result:", res, err)
		return
	}

	res, err = msl.Resolve("test")
	errorutil.AssertOk(err)

	if res != "test1" {
		t.Error("Unexpected result:", res, err)
		return
	}
}
