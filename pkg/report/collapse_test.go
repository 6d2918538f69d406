package report

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollapserCountsIdenticalSignaturesTogether(t *testing.T) {
	c := NewCollapser(mustConfig(t, Options{}))
	c.Add([]string{"a.B.c()", "d.E.f()"})
	c.Add([]string{"a.B.c()", "d.E.f()"})
	c.Add([]string{"a.B.c()"})

	stacks := c.Stacks()
	require.Equal(t, 2, stacks.Len())
	require.Equal(t, 2, stacks.Count("a.B.c();d.E.f()"))
	require.Equal(t, 1, stacks.Count("a.B.c()"))
}

func TestCollapserAppliesCompaction(t *testing.T) {
	c := NewCollapser(mustConfig(t, Options{Compact: true}))
	c.Add([]string{"com.example.app.Main.main()", "com.example.app.Svc.go(java.lang.String)"})
	require.Equal(t, 1, c.Stacks().Count("app.Main.main();app.Svc.go(String)"))
}

func TestCollapserCountingIsOrderIndependent(t *testing.T) {
	traces := [][]string{
		{"a.A.a()", "b.B.b()"},
		{"a.A.a()", "b.B.b()"},
		{"a.A.a()", "c.C.c()"},
		{"x.X.x()"},
		{"a.A.a()", "b.B.b()"},
	}

	counts := func(order []int) map[string]int {
		c := NewCollapser(mustConfig(t, Options{}))
		for _, i := range order {
			c.Add(traces[i])
		}
		got := make(map[string]int)
		c.Stacks().Each(func(sig string, n int) { got[sig] = n })
		return got
	}

	base := counts([]int{0, 1, 2, 3, 4})
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 10; trial++ {
		order := rng.Perm(len(traces))
		require.Equal(t, base, counts(order))
	}
}

func TestStacksFirstSeenOrder(t *testing.T) {
	s := NewStacks()
	s.Add("b")
	s.Add("a")
	s.Add("b")
	s.Add("c")
	require.Equal(t, []string{"b", "a", "c"}, s.Signatures())
}
