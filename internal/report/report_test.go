package report

import (
	"bytes"
	"testing"

	"github.com/jpalmerr/bpdiag"
)

func run(t *testing.T, lines []string, opts ...bpdiag.Option) bpdiag.Result {
	t.Helper()
	p, err := bpdiag.New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	res, err := p.RunLines(lines)
	if err != nil {
		t.Fatalf("RunLines() error = %v", err)
	}
	return res
}

func TestWrite(t *testing.T) {
	res := run(t, []string{"144/83/99, 127/74/60, 137/80/66"})

	var buf bytes.Buffer
	Write(&buf, res)

	want := "Statistics (min, max, avg):\n" +
		":: SYS...: 127, 144, 136.0\n" +
		":: DIA...:  74,  83, 79.0\n" +
		":: PULSE.:  60,  99, 75.0\n"
	if buf.String() != want {
		t.Errorf("Write() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWrite_NoData(t *testing.T) {
	res := run(t, nil)

	var buf bytes.Buffer
	Write(&buf, res)

	want := "Statistics (min, max, avg):\n" +
		":: SYS...: no data\n" +
		":: DIA...: no data\n" +
		":: PULSE.: no data\n"
	if buf.String() != want {
		t.Errorf("Write() =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWrite_Classification(t *testing.T) {
	res := run(t, []string{"120/80/60, 135/88/95, 145/92/105"},
		bpdiag.WithThresholds(bpdiag.DefaultThresholds()))

	var buf bytes.Buffer
	Write(&buf, res)

	want := "Statistics (min, max, avg):\n" +
		":: SYS...: 120, 145, 133.3\n" +
		":: DIA...:  80,  92, 86.7\n" +
		":: PULSE.:  60, 105, 86.7\n" +
		"Classification (normal, high, very-high):\n" +
		":: SYS...:   1,   1,   1\n" +
		":: DIA...:   1,   1,   1\n" +
		":: PULSE.:   1,   1,   1\n"
	if buf.String() != want {
		t.Errorf("Write() =\n%s\nwant\n%s", buf.String(), want)
	}
}
