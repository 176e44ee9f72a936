package tree

import "reflect"

// Snapshot returns a deep copy of the nested node structure. Nothing from the
// index leaks into it and later mutations of the tree do not reach it.
func (t *Tree) Snapshot() Node {
	return cloneNode(t.root)
}

func cloneNode(n Node) Node {
	if n == nil {
		return nil
	}
	out := make(Node, len(n))
	for k, v := range n {
		out[k] = cloneValue(v)
	}
	return out
}

// cloneValue copies the container shapes decoders and callers produce. Other
// maps, slices and arrays are copied element by element through reflection.
// Scalars, pointers and structs are returned as is.
func cloneValue(v any) any {
	switch v := v.(type) {
	case Node:
		return cloneNode(v)
	case map[string]any:
		return map[string]any(cloneNode(v))
	case []Node:
		out := make([]Node, len(v))
		for i, n := range v {
			out[i] = cloneNode(n)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(v))
		for i, m := range v {
			out[i] = map[string]any(cloneNode(m))
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = cloneValue(elem)
		}
		return out
	case []string:
		return append([]string(nil), v...)
	case []byte:
		return append([]byte(nil), v...)
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Map, reflect.Slice, reflect.Array:
			return cloneReflect(rv).Interface()
		}
		return v
	}
}

func cloneReflect(rv reflect.Value) reflect.Value {
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), cloneReflect(iter.Value()))
		}
		return out
	case reflect.Slice:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i, n := 0, rv.Len(); i < n; i++ {
			out.Index(i).Set(cloneReflect(rv.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for i, n := 0, rv.Len(); i < n; i++ {
			out.Index(i).Set(cloneReflect(rv.Index(i)))
		}
		return out
	case reflect.Interface:
		if rv.IsNil() {
			return rv
		}
		out := reflect.New(rv.Type()).Elem()
		out.Set(reflect.ValueOf(cloneValue(rv.Elem().Interface())))
		return out
	}
	return rv
}
