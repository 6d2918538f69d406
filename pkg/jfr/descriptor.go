package jfr

import "strings"

var primitiveTypes = map[byte]string{
	'B': "byte",
	'C': "char",
	'D': "double",
	'F': "float",
	'I': "int",
	'J': "long",
	'S': "short",
	'Z': "boolean",
	'V': "void",
}

// ParseDescriptor decodes a JVM method descriptor such as
// "(Ljava/lang/String;I)V" into argument and return type names. It reports
// ok=false for anything that does not parse as a full descriptor; callers
// then fall back to an argument-less signature.
func ParseDescriptor(desc string) (args []string, ret string, ok bool) {
	if len(desc) < 3 || desc[0] != '(' {
		return nil, "", false
	}
	i := 1
	for i < len(desc) && desc[i] != ')' {
		name, n := parseFieldType(desc[i:])
		if n == 0 {
			return nil, "", false
		}
		args = append(args, name)
		i += n
	}
	if i >= len(desc) {
		return nil, "", false
	}
	i++
	name, n := parseFieldType(desc[i:])
	if n == 0 || i+n != len(desc) {
		return nil, "", false
	}
	return args, name, true
}

// parseFieldType consumes one type from the front of s, returning its Java
// name and the number of descriptor bytes consumed (0 on malformed input).
func parseFieldType(s string) (string, int) {
	if s == "" {
		return "", 0
	}
	dims := 0
	for dims < len(s) && s[dims] == '[' {
		dims++
	}
	if dims >= len(s) {
		return "", 0
	}
	var name string
	var n int
	switch c := s[dims]; c {
	case 'L':
		end := strings.IndexByte(s[dims:], ';')
		if end < 0 {
			return "", 0
		}
		name = strings.ReplaceAll(s[dims+1:dims+end], "/", ".")
		n = dims + end + 1
	default:
		prim, known := primitiveTypes[c]
		if !known {
			return "", 0
		}
		name = prim
		n = dims + 1
	}
	return name + strings.Repeat("[]", dims), n
}
