package ocr

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

type Engine interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}

type Tesseract struct {
	Binary string
	Lang   string
}

func NewTesseract(binary, lang string) *Tesseract {
	if binary == "" {
		binary = "tesseract"
	}
	if lang == "" {
		lang = "eng"
	}
	return &Tesseract{Binary: binary, Lang: lang}
}

func (t *Tesseract) Recognize(ctx context.Context, image []byte) (string, error) {
	dir, err := os.MkdirTemp("", "vdat-ocr-*")
	if err != nil {
		return "", err
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "scan")
	if err := os.WriteFile(path, image, 0o644); err != nil {
		return "", err
	}

	cmd := exec.CommandContext(ctx, t.Binary, path, "stdout", "-l", t.Lang)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return string(out), nil
}
