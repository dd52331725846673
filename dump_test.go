package huffcode

import (
	"strings"
	"testing"
)

// All frequencies and merge sums in "abbcccc" are distinct (1, 2, 3, 4, 7),
// so the pop order and therefore the exact bit strings are deterministic.
func TestDump(t *testing.T) {
	tree, err := Build(CountRunes("abbcccc"))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\t'a': \"00\"\n",
		"\t'b': \"01\"\n",
		"\t'c': \"1\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestDumpDegenerate(t *testing.T) {
	type testRow struct {
		name string
		text string
		dump string
	}

	testData := [...]testRow{
		{name: "empty", text: "", dump: "Tree{\n}\n"},
		{name: "single", text: "aaaa", dump: "Tree{\n\t'a': \"\"\n}\n"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			tree, err := Build(CountRunes(row.text))
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			var buf strings.Builder
			_, _ = tree.Dump(&buf)
			if actual := buf.String(); actual != row.dump {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.dump, actual)
			}
		})
	}
}
