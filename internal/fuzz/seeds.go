package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB - ограничение для тестового корпуса
)

var builtinSeeds = []string{
	"",
	"fn main() {}",
	"/// doc\n//! inner\n/** block */ /*! inner block */ struct S;",
	"#![deny(missing_docs,)] #[warn(missing_docs, unused)] fn f() {}",
	"let x = a - -1 + &&b || !c >>= 2;",
	"r#type 'a 'b' b'c' 1.e3 1. .. 0x1f_u8 2.0f32",
	"x = r##\"raw \"# text\"##; y = br\"z\"; c\"cstr\";",
	"a<-b a< -b a.0.1 (1.).max(2.) 1..=2",
	"macro_rules! m { ($($t:tt)*) => { $($t)* }; }",
	"fn f( { ] }",
	"\"open",
	"/* nested /* comment */",
	"#!/bin/sh\nfn main(){}",
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
	// проходим по дереву testdata, добавляем все *.rs файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".rs" {
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
