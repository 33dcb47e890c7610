package xcfg

import (
	"testing"
)

func BenchmarkValue(b *testing.B) {
	f, err := LoadBytes[appConfig]([]byte(testYAMLContent), FormatYAML)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = f.Value()
	}
}

func BenchmarkLoadBytes(b *testing.B) {
	data := []byte(testYAMLContent)

	b.ReportAllocs()
	for b.Loop() {
		if _, err := LoadBytes[appConfig](data, FormatYAML); err != nil {
			b.Fatal(err)
		}
	}
}
