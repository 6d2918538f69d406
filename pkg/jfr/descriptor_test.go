package jfr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDescriptor(t *testing.T) {
	cases := map[string]struct {
		desc string
		args []string
		ret  string
	}{
		"object and primitive args": {
			desc: "(Ljava/lang/String;I)V",
			args: []string{"java.lang.String", "int"},
			ret:  "void",
		},
		"no args": {
			desc: "()Ljava/util/List;",
			args: nil,
			ret:  "java.util.List",
		},
		"primitive array": {
			desc: "([B)V",
			args: []string{"byte[]"},
			ret:  "void",
		},
		"nested object array": {
			desc: "([[Ljava/lang/Object;)Ljava/lang/String;",
			args: []string{"java.lang.Object[][]"},
			ret:  "java.lang.String",
		},
		"all primitives": {
			desc: "(ZBCSIJFD)V",
			args: []string{"boolean", "byte", "char", "short", "int", "long", "float", "double"},
			ret:  "void",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			args, ret, ok := ParseDescriptor(tc.desc)
			require.True(t, ok)
			require.Equal(t, tc.args, args)
			require.Equal(t, tc.ret, ret)
		})
	}
}

func TestParseDescriptorMalformed(t *testing.T) {
	for _, desc := range []string{
		"",
		"()",
		"V",
		"(V",
		"(Ljava/lang/String)V", // missing semicolon
		"(I)Vx",                // trailing garbage
		"(Q)V",                 // unknown primitive
		"([)V",
	} {
		_, _, ok := ParseDescriptor(desc)
		require.False(t, ok, "descriptor %q should not parse", desc)
	}
}
