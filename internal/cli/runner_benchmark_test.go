package cli

import (
	"fmt"
	"strings"
	"testing"
)

func BenchmarkRunnerRun_EndToEnd(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 16; i++ {
		fmt.Fprintf(&sb, "type Model%d struct {\n", i)
		for j := 0; j < 12; j++ {
			fmt.Fprintf(&sb, "\tField%d string `json:\"field_%d\"`\n", j, j)
		}
		sb.WriteString("}\n\n")
	}

	dst := &mockWriter{}
	runner := NewRunner(newTransformer(), &mockReader{text: sb.String()}, dst)
	cfg := &Config{}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := runner.Run(b.Context(), cfg); err != nil {
			b.Fatal(err)
		}
	}
}
