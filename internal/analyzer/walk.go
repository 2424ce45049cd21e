package analyzer

import (
	"reflect"

	"github.com/dop251/goja/ast"
)

// nodeVisitor receives every node of a syntax tree in depth-first order.
type nodeVisitor interface {
	enter(n ast.Node)
}

// walk traverses a goja syntax tree depth-first, calling enter on every
// node before descending into it. The goja ast package exposes the node
// types but no traversal, so children are discovered structurally: any
// exported field, slice element or pointer holding an ast.Node is a child.
func walk(v nodeVisitor, n ast.Node) {
	if n == nil {
		return
	}

	rv := reflect.ValueOf(n)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return
		}
		rv = rv.Elem()
	}

	v.enter(n)

	if rv.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < rv.NumField(); i++ {
		// DeclarationList fields hold bindings that already appear in
		// the statement body; walking both would visit those subtrees
		// twice.
		if rv.Type().Field(i).Name == "DeclarationList" {
			continue
		}
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		walkValue(v, f)
	}
}

// walkValue descends into a field value looking for child nodes.
func walkValue(v nodeVisitor, val reflect.Value) {
	switch val.Kind() {
	case reflect.Interface, reflect.Ptr:
		if val.IsNil() {
			return
		}
		if n, ok := val.Interface().(ast.Node); ok {
			walk(v, n)
			return
		}
		walkValue(v, val.Elem())
	case reflect.Struct:
		if val.CanAddr() {
			if n, ok := val.Addr().Interface().(ast.Node); ok {
				walk(v, n)
				return
			}
		}
		for i := 0; i < val.NumField(); i++ {
			f := val.Field(i)
			if !f.CanInterface() {
				continue
			}
			walkValue(v, f)
		}
	case reflect.Slice:
		for i := 0; i < val.Len(); i++ {
			walkValue(v, val.Index(i))
		}
	}
}
