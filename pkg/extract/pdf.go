package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFExtractor pulls page text out of PDFs with pdfcpu. Content is
// extracted into per-page files under a temp dir and stitched back in
// page order. When the whole-document pass fails or comes back empty,
// pages are retried one by one so a single damaged page does not sink
// the document.
type PDFExtractor struct {
	tempDir string
}

func NewPDFExtractor() *PDFExtractor {
	tempDir := filepath.Join(os.TempDir(), "edubot-pdf")
	os.MkdirAll(tempDir, 0755)
	return &PDFExtractor{tempDir: tempDir}
}

func (e *PDFExtractor) Extract(ctx context.Context, path string) (string, error) {
	conf := model.NewDefaultConfiguration()

	pdfCtx, err := api.ReadContextFile(path)
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}
	pageCount := pdfCtx.PageCount

	text, err := e.extractPages(path, nil, conf)
	if err != nil || text == "" {
		text = e.extractPageByPage(path, pageCount, conf)
	}

	if text == "" {
		return "", fmt.Errorf("no extractable text in %d pages", pageCount)
	}
	return text, nil
}

// extractPages runs one ExtractContentFile pass for the given page
// selection (nil means all pages) and stitches the per-page output
// files in page order.
func (e *PDFExtractor) extractPages(path string, pages []string, conf *model.Configuration) (string, error) {
	outDir, err := os.MkdirTemp(e.tempDir, "pages_")
	if err != nil {
		return "", fmt.Errorf("create extraction dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	if err := api.ExtractContentFile(path, outDir, pages, conf); err != nil {
		return "", fmt.Errorf("extract pdf content: %w", err)
	}

	pageTexts := make(map[int]string)
	files, _ := os.ReadDir(outDir)
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		content, err := os.ReadFile(filepath.Join(outDir, file.Name()))
		if err != nil {
			continue
		}
		var pageNum int
		if _, err := fmt.Sscanf(file.Name(), "page_%d", &pageNum); err == nil {
			pageTexts[pageNum] = string(content)
			continue
		}
		if _, err := fmt.Sscanf(file.Name(), "Content_page_%d", &pageNum); err == nil {
			pageTexts[pageNum] = string(content)
		}
	}

	pageNums := make([]int, 0, len(pageTexts))
	for n := range pageTexts {
		pageNums = append(pageNums, n)
	}
	sort.Ints(pageNums)

	var builder strings.Builder
	for _, n := range pageNums {
		text := strings.TrimSpace(pageTexts[n])
		if text == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString("\n\n")
		}
		builder.WriteString(text)
	}
	return builder.String(), nil
}

// extractPageByPage salvages what it can, skipping pages that fail.
func (e *PDFExtractor) extractPageByPage(path string, pageCount int, conf *model.Configuration) string {
	var builder strings.Builder
	for n := 1; n <= pageCount; n++ {
		text, err := e.extractPages(path, []string{strconv.Itoa(n)}, conf)
		if err != nil || text == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString("\n\n")
		}
		builder.WriteString(text)
	}
	return builder.String()
}
