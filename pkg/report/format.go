package report

import "strings"

// CompactSignature shortens a fully qualified method signature for display.
// The class-and-method part keeps its last three dot segments; each argument
// type keeps only the text after its last dot. Signatures that are not of
// the "name(args)" shape come back unchanged.
func CompactSignature(sig string) string {
	open := strings.IndexByte(sig, '(')
	if open < 0 || !strings.HasSuffix(sig, ")") {
		return sig
	}
	name := sig[:open]
	args := sig[open+1 : len(sig)-1]

	if parts := strings.Split(name, "."); len(parts) > 3 {
		name = strings.Join(parts[len(parts)-3:], ".")
	}
	if args != "" {
		list := strings.Split(args, ", ")
		for i, arg := range list {
			if dot := strings.LastIndexByte(arg, '.'); dot >= 0 {
				list[i] = arg[dot+1:]
			}
		}
		args = strings.Join(list, ", ")
	}
	return name + "(" + args + ")"
}
