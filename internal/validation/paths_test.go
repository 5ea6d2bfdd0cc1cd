package validation

import "testing"

func TestValidateFilename(t *testing.T) {
	valid := []string{
		"image.png",
		"archive.tar.gz",
		"data..v2.csv",
		"foo..bar.txt",
		"no-extension",
	}
	for _, name := range valid {
		if err := ValidateFilename(name); err != nil {
			t.Errorf("expected %q to be valid, got %v", name, err)
		}
	}

	invalid := []string{
		"",
		"..",
		"a/b.txt",
		"..\\windows.txt",
		"nul\x00byte.bin",
		"/absolute.txt",
	}
	for _, name := range invalid {
		if err := ValidateFilename(name); err == nil {
			t.Errorf("expected %q to be rejected", name)
		}
	}
}
