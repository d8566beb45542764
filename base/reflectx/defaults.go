// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides the reflection helpers used to fill
// configuration structs from their struct field tags.
package reflectx

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// SetFromDefaultTags sets the values of fields in the given struct
// pointer from their `default:` struct field tags. Nested structs
// without a tag are processed recursively. Errors for individual
// fields are joined and returned, and the other fields are still set.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	pv := reflect.ValueOf(obj)
	if pv.Kind() != reflect.Pointer {
		return fmt.Errorf("SetFromDefaultTags: %T must be passed by pointer", obj)
	}
	if pv.IsNil() {
		return nil
	}
	val := pv.Elem()
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("SetFromDefaultTags: expected a struct, not %v", val.Type())
	}
	typ := val.Type()
	var errs []error
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if def == "" && isStruct(f.Type) {
			sub := fv
			switch {
			case fv.Kind() == reflect.Struct:
				sub = fv.Addr()
			case fv.IsNil():
				continue
			}
			if err := SetFromDefaultTags(sub.Interface()); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		if !ok {
			continue
		}
		if err := SetString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("SetFromDefaultTags: field %s of %s: %w", f.Name, typ.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// isStruct returns whether typ is a struct or a pointer to one.
func isStruct(typ reflect.Type) bool {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ.Kind() == reflect.Struct
}

// SetString sets the given settable value from its string representation.
// Slices are given as comma separated lists of elements.
func SetString(v reflect.Value, s string) error {
	if v.CanAddr() {
		if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return tu.UnmarshalText([]byte(s))
		}
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Slice:
		if s == "" {
			v.Set(reflect.MakeSlice(v.Type(), 0, 0))
			return nil
		}
		parts := strings.Split(s, ",")
		sv := reflect.MakeSlice(v.Type(), len(parts), len(parts))
		for i, p := range parts {
			if err := SetString(sv.Index(i), strings.TrimSpace(p)); err != nil {
				return err
			}
		}
		v.Set(sv)
	case reflect.Pointer:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return SetString(v.Elem(), s)
	default:
		return fmt.Errorf("cannot set value of kind %v from string %q", v.Kind(), s)
	}
	return nil
}
