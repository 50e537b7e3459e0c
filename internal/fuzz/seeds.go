package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"syntek/internal/project"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB - ограничение для тестового корпуса
)

// builtinSeeds покрывают конструкции, которые легко сломать при восстановлении.
var builtinSeeds = []string{
	"",
	"x = 1\n",
	"Number[] xs = [1, 2, 3]\n",
	"if a\n    b = 1\nelse if c\n    b = 2\nelse\n    b = 3\n",
	"try\n    f()\ncatch e\n    g(e)\n",
	"switch v\n    case 1, 2\n        fallthrough\n    case 3\n        break\n",
	"class A extends B, C\n    static function f(a, Number b)\n        return a is not b\n",
	"f(\n    1,\n    2\n)\n",
	"x = {a: [1, {b: 2}], c: new D(e).f}\n",
	"if\n", "else\n", "catch\n", "x = )\n", "\tx = 1\n  y = 2\n",
	"import a.b.c as d\nrepeat n times\n    async g()\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все исходники
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != project.SourceExt {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
