// Package pprint fournit un pretty-printer structurel générique et déterministe.
//
// Les maps sont rendues avec des clés triées, les slices sont découpées
// (un élément par ligne) dès que la forme à plat dépasse la largeur.
// La sortie ne dépend que de la valeur.
package pprint

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

const (
	DefaultWidth  = 80
	DefaultIndent = 1
)

// Printer porte la configuration de rendu. La valeur zéro n'est pas utilisable, voir New.
type Printer struct {
	width  int
	indent int
}

func New(width, indent int) Printer {
	if width <= 0 {
		width = DefaultWidth
	}
	if indent < 0 {
		indent = DefaultIndent
	}
	return Printer{width: width, indent: indent}
}

// Format rend v avec la largeur et l'indentation par défaut.
func Format(v any) string {
	return New(DefaultWidth, DefaultIndent).Format(v)
}

func (p Printer) Format(v any) string {
	var b strings.Builder
	p.format(&b, reflect.ValueOf(v), 0, 0)
	return b.String()
}

// format écrit v à la colonne `col`. allowance = nb de caractères qui suivront
// sur la même ligne (séparateurs, fermetures).
func (p Printer) format(b *strings.Builder, v reflect.Value, col, allowance int) {
	flat := repr(v)
	if len(flat) <= p.width-col-allowance {
		b.WriteString(flat)
		return
	}

	v = unwrap(v)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			b.WriteString(flat)
			return
		}
		p.formatSeq(b, v, col, allowance)
	case reflect.Map:
		if v.Len() == 0 {
			b.WriteString(flat)
			return
		}
		p.formatMap(b, v, col, allowance)
	case reflect.Struct:
		p.formatStruct(b, v, col, allowance)
	default:
		// scalaires : pas de découpe possible
		b.WriteString(flat)
	}
}

func (p Printer) formatSeq(b *strings.Builder, v reflect.Value, col, allowance int) {
	b.WriteString("[")
	if p.indent > 1 {
		b.WriteString(strings.Repeat(" ", p.indent-1))
	}
	inner := col + p.indent
	n := v.Len()
	for i := 0; i < n; i++ {
		last := i == n-1
		a := 1
		if last {
			a = allowance + 1
		}
		p.format(b, v.Index(i), inner, a)
		if !last {
			b.WriteString(",\n")
			b.WriteString(strings.Repeat(" ", inner))
		}
	}
	b.WriteString("]")
}

func (p Printer) formatMap(b *strings.Builder, v reflect.Value, col, allowance int) {
	b.WriteString("{")
	if p.indent > 1 {
		b.WriteString(strings.Repeat(" ", p.indent-1))
	}
	inner := col + p.indent
	keys := sortedKeys(v)
	for i, k := range keys {
		last := i == len(keys)-1
		kr := repr(k)
		b.WriteString(kr)
		b.WriteString(": ")
		a := 1
		if last {
			a = allowance + 1
		}
		p.format(b, v.MapIndex(k), inner+len(kr)+2, a)
		if !last {
			b.WriteString(",\n")
			b.WriteString(strings.Repeat(" ", inner))
		}
	}
	b.WriteString("}")
}

func (p Printer) formatStruct(b *strings.Builder, v reflect.Value, col, allowance int) {
	fields := exportedFields(v)
	if len(fields) == 0 {
		b.WriteString(repr(v))
		return
	}
	name := v.Type().Name()
	b.WriteString(name)
	b.WriteString("{")
	inner := col + len(name) + 1
	for i, f := range fields {
		last := i == len(fields)-1
		b.WriteString(f.name)
		b.WriteString(": ")
		a := 1
		if last {
			a = allowance + 1
		}
		p.format(b, f.value, inner+len(f.name)+2, a)
		if !last {
			b.WriteString(",\n")
			b.WriteString(strings.Repeat(" ", inner))
		}
	}
	b.WriteString("}")
}

// repr retourne la forme à plat (une seule ligne) de v.
func repr(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}
	if (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && v.IsNil() {
		return "nil"
	}
	v = unwrap(v)

	switch v.Kind() {
	case reflect.String:
		return strconv.Quote(v.String())
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return formatFloat(v.Float(), 32)
	case reflect.Float64:
		return formatFloat(v.Float(), 64)
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return "[]"
		}
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = repr(v.Index(i))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Map:
		keys := sortedKeys(v)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, repr(k)+": "+repr(v.MapIndex(k)))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case reflect.Struct:
		fields := exportedFields(v)
		parts := make([]string, 0, len(fields))
		for _, f := range fields {
			parts = append(parts, f.name+": "+repr(f.value))
		}
		return v.Type().Name() + "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprint(v.Interface())
	}
}

// formatFloat : plus courte représentation exacte ; les entiers gardent ".0"
// pour que le type numérique reste lisible.
func formatFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if strings.ContainsAny(s, ".eEnN") {
		return s
	}
	return s + ".0"
}

func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

func sortedKeys(v reflect.Value) []reflect.Value {
	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return repr(keys[i]) < repr(keys[j])
	})
	return keys
}

type field struct {
	name  string
	value reflect.Value
}

func exportedFields(v reflect.Value) []field {
	t := v.Type()
	out := make([]field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		out = append(out, field{name: sf.Name, value: v.Field(i)})
	}
	return out
}
