package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestScanPrintsStats(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.py")
	if err := os.WriteFile(src, []byte("import os\n\n# note\nclass A:\n    pass\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	viper.Set("scan_ext", []string{".py"})
	t.Cleanup(func() { viper.Set("scan_ext", []string{".go"}) })

	var out bytes.Buffer
	scanCmd.SetOut(&out)
	t.Cleanup(func() { scanCmd.SetOut(nil) })

	if err := scanCmd.RunE(scanCmd, []string{dir}); err != nil {
		t.Fatalf("scan: %v", err)
	}

	got := out.String()
	for _, want := range []string{src, "Overall Stats", "total_files", "total_classes", "Detailed Stats", "code_lines", "py"} {
		if !strings.Contains(got, want) {
			t.Errorf("output lacks %q:\n%s", want, got)
		}
	}
}
