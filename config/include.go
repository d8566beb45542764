// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"cogentcore.org/xform/base/errors"
	"cogentcore.org/xform/base/iox/tomlx"
)

// Includer is a config object that can include other config files.
type Includer interface {

	// IncludesPtr returns a pointer to the list of files to
	// include before the file that names them.
	IncludesPtr() *[]string
}

// FindFileOnPaths returns the paths of the files with the given name
// in each of the given directories, in order. A name that exists
// as given, or that is absolute, is returned alone.
func FindFileOnPaths(paths []string, file string) []string {
	if filepath.IsAbs(file) {
		return []string{file}
	}
	if _, err := os.Stat(file); err == nil {
		return []string{file}
	}
	var res []string
	for _, p := range paths {
		fn := filepath.Join(p, file)
		if _, err := os.Stat(fn); err == nil {
			res = append(res, fn)
		}
	}
	return res
}

// Open reads cfg from the given TOML file, looked up on paths.
// If cfg is an [Includer], its included files are read first, in an
// order in which every file overrides the files it includes.
// Open returns an error if any file cannot be found or read.
func Open(cfg any, file string, paths []string) error {
	files := FindFileOnPaths(paths, file)
	if len(files) == 0 {
		return fmt.Errorf("config.Open: no files found for %q", file)
	}
	if err := tomlx.OpenFiles(cfg, files...); err != nil {
		return err
	}
	incfg, ok := cfg.(Includer)
	if !ok {
		return nil
	}
	incs, err := IncludeStack(paths, incfg)
	if err != nil {
		return err
	}
	if len(incs) == 0 {
		return nil
	}
	for i := len(incs) - 1; i >= 0; i-- {
		if err := tomlx.OpenFiles(cfg, FindFileOnPaths(paths, incs[i])...); err != nil {
			return err
		}
	}
	// reopen the original so that it takes precedence
	if err := tomlx.OpenFiles(cfg, files...); err != nil {
		return err
	}
	*incfg.IncludesPtr() = incs
	return nil
}

// IncludeStack returns the stack of files included by cfg, directly
// or through other included files, in the order in which they are
// encountered. They should be read in reverse order. It does not change cfg.
func IncludeStack(paths []string, cfg Includer) ([]string, error) {
	clone := reflect.New(reflect.TypeOf(cfg).Elem()).Interface().(Includer)
	*clone.IncludesPtr() = *cfg.IncludesPtr()
	return includeStack(paths, clone, nil, 0)
}

// maxIncludeDepth bounds include cycles.
const maxIncludeDepth = 10

func includeStack(paths []string, clone Includer, includes []string, depth int) ([]string, error) {
	incs := *clone.IncludesPtr()
	if len(incs) == 0 {
		return includes, nil
	}
	if depth >= maxIncludeDepth {
		return includes, fmt.Errorf("config: includes nested more than %d deep: %v", maxIncludeDepth, incs)
	}
	for i := len(incs) - 1; i >= 0; i-- {
		includes = append(includes, incs[i])
	}
	var errs []error
	for _, inc := range incs {
		*clone.IncludesPtr() = nil
		files := FindFileOnPaths(paths, inc)
		if len(files) == 0 {
			errs = append(errs, fmt.Errorf("config: include file %q not found", inc))
			continue
		}
		if err := tomlx.OpenFiles(clone, files...); err != nil {
			errs = append(errs, err)
			continue
		}
		var err error
		includes, err = includeStack(paths, clone, includes, depth+1)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return includes, errors.Join(errs...)
}
