package flamegraph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feng-tao/jfr-report-tool/pkg/report"
)

func TestWriteSVG(t *testing.T) {
	stacks := report.NewStacks()
	for i := 0; i < 3; i++ {
		stacks.Add("Main.main();Svc.handle()")
	}
	stacks.Add("Main.main();Repo.save()")

	var buf strings.Builder
	err := WriteSVG(&buf, stacks, SVGOptions{Title: "cpu <samples>", Width: 800})
	require.NoError(t, err)

	svg := buf.String()
	require.Contains(t, svg, "<svg version=\"1.1\" width=\"800\"")
	require.Contains(t, svg, "(4 samples)")
	// Title is escaped for markup safety.
	require.Contains(t, svg, "cpu &lt;samples&gt;")
	require.Contains(t, svg, "Main.main()")
	require.Contains(t, svg, "</svg>")
}

func TestWriteSVGRejectsEmptyStacks(t *testing.T) {
	var buf strings.Builder
	err := WriteSVG(&buf, report.NewStacks(), SVGOptions{})
	require.Error(t, err)
}

func TestSchemeForEventClass(t *testing.T) {
	require.Equal(t, "hot", SchemeForEventClass("cpu"))
	require.Equal(t, "hot", SchemeForEventClass("wall"))
	require.Equal(t, "mem", SchemeForEventClass("alloc"))
	require.Equal(t, "cold", SchemeForEventClass("lock"))
}
