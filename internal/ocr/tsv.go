package ocr

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/scanworks/scanvault/internal/entity"
	"github.com/scanworks/scanvault/internal/imaging"
)

// tesseract TSV columns:
// level page_num block_num par_num line_num word_num left top width height conf text
const (
	colLevel = 0
	colBlock = 2
	colPar   = 3
	colLine  = 4
	colLeft  = 6
	colTop   = 7
	colWidth = 8
	colHgt   = 9
	colConf  = 10
	colText  = 11

	wordLevel = 5
)

type lineKey struct {
	block, par, line int
}

// tesseractTSV runs tesseract in TSV mode and folds the word rows into
// line-level blocks: text joined by spaces, box = union of word boxes,
// confidence = mean of word confidences (tesseract reports -1 for
// non-word rows; those are skipped).
func (e *Engine) tesseractTSV(ctx context.Context, path string) ([]entity.TextBlock, error) {
	args := []string{path, "stdout", "-l", e.cfg.Lang}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	args = append(args, "tsv")

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, imaging.Truncate(string(errb), 512))
	}
	return parseTSV(string(out)), nil
}

func parseTSV(out string) []entity.TextBlock {
	var blocks []entity.TextBlock
	var cur *tsvLine
	var curKey lineKey

	flush := func() {
		if cur != nil && len(cur.words) > 0 {
			blocks = append(blocks, cur.toBlock())
		}
		cur = nil
	}

	for i, ln := range strings.Split(out, "\n") {
		if i == 0 || len(ln) == 0 {
			continue // skip header
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue
		}
		if atoi(cols[colLevel]) != wordLevel {
			continue
		}
		text := strings.TrimSpace(cols[colText])
		if text == "" {
			continue
		}
		conf, err := strconv.ParseFloat(cols[colConf], 64)
		if err != nil || conf < 0 {
			continue
		}

		key := lineKey{atoi(cols[colBlock]), atoi(cols[colPar]), atoi(cols[colLine])}
		if cur == nil || key != curKey {
			flush()
			cur = &tsvLine{x1: 1 << 30, y1: 1 << 30}
			curKey = key
		}
		cur.add(text, atoi(cols[colLeft]), atoi(cols[colTop]), atoi(cols[colWidth]), atoi(cols[colHgt]), conf)
	}
	flush()
	return blocks
}

type tsvLine struct {
	words          []string
	x1, y1, x2, y2 int
	confSum        float64
}

func (l *tsvLine) add(text string, left, top, width, height int, conf float64) {
	l.words = append(l.words, text)
	if left < l.x1 {
		l.x1 = left
	}
	if top < l.y1 {
		l.y1 = top
	}
	if left+width > l.x2 {
		l.x2 = left + width
	}
	if top+height > l.y2 {
		l.y2 = top + height
	}
	l.confSum += conf
}

func (l *tsvLine) toBlock() entity.TextBlock {
	return entity.TextBlock{
		Text:       strings.Join(l.words, " "),
		X1:         l.x1,
		Y1:         l.y1,
		X2:         l.x2,
		Y2:         l.y2,
		Confidence: float32(l.confSum / float64(len(l.words)) / 100.0),
	}
}

func joinBlockText(blocks []entity.TextBlock) string {
	texts := make([]string, len(blocks))
	for i, b := range blocks {
		texts[i] = b.Text
	}
	return strings.Join(texts, "\n")
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
