package ocr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tsvHeader = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext"

// word renders one level-5 TSV row the way tesseract emits them.
func word(block, par, line, left, top, w, h int, conf float64, text string) string {
	return fmt.Sprintf("5\t1\t%d\t%d\t%d\t1\t%d\t%d\t%d\t%d\t%.2f\t%s",
		block, par, line, left, top, w, h, conf, text)
}

func TestParseTSVFoldsWordsIntoLines(t *testing.T) {
	out := strings.Join([]string{
		tsvHeader,
		"1\t1\t0\t0\t0\t0\t0\t0\t640\t480\t-1\t",
		"4\t1\t1\t1\t1\t0\t10\t10\t200\t14\t-1\t",
		word(1, 1, 1, 10, 10, 60, 14, 96.5, "REPUBLIC"),
		word(1, 1, 1, 74, 10, 30, 14, 91.2, "OF"),
		word(1, 1, 1, 110, 11, 70, 13, 88.0, "UTOPIA"),
		word(1, 1, 2, 10, 30, 120, 14, 95.0, "PASSPORT"),
		"",
	}, "\n")

	blocks := parseTSV(out)
	require.Len(t, blocks, 2)

	line := blocks[0]
	assert.Equal(t, "REPUBLIC OF UTOPIA", line.Text)
	assert.Equal(t, 10, line.X1)
	assert.Equal(t, 10, line.Y1)
	assert.Equal(t, 180, line.X2)
	assert.Equal(t, 24, line.Y2)
	assert.InDelta(t, 0.919, line.Confidence, 1e-4)

	assert.Equal(t, "PASSPORT", blocks[1].Text)
	assert.InDelta(t, 0.95, blocks[1].Confidence, 1e-4)
}

func TestParseTSVSkipsJunkRows(t *testing.T) {
	out := strings.Join([]string{
		tsvHeader,
		word(1, 1, 1, 10, 10, 60, 14, -1, "GHOST"), // negative conf
		word(1, 1, 1, 74, 10, 30, 14, 90.0, ""),    // empty text
		"5\t1\t1",                                  // truncated row
		word(1, 1, 1, 110, 11, 70, 13, 80.0, "KEPT"),
	}, "\n")

	blocks := parseTSV(out)
	require.Len(t, blocks, 1)
	assert.Equal(t, "KEPT", blocks[0].Text)
	assert.InDelta(t, 0.80, blocks[0].Confidence, 1e-4)
}

func TestParseTSVSplitsOnBlockBoundary(t *testing.T) {
	out := strings.Join([]string{
		tsvHeader,
		word(1, 1, 1, 10, 10, 60, 14, 90, "ONE"),
		word(2, 1, 1, 10, 40, 60, 14, 90, "TWO"),
	}, "\n")

	blocks := parseTSV(out)
	require.Len(t, blocks, 2)
	assert.Equal(t, "ONE", blocks[0].Text)
	assert.Equal(t, "TWO", blocks[1].Text)
}

func TestParseTSVEmptyOutput(t *testing.T) {
	assert.Empty(t, parseTSV(tsvHeader+"\n"))
	assert.Empty(t, parseTSV(""))
}

type fakeRunner struct {
	name string
	args []string
	out  string
	errb string
	err  error
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	r.name = name
	r.args = args
	if r.err != nil {
		return nil, []byte(r.errb), r.err
	}
	return []byte(r.out), nil, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExtractPageBuildsCommandAndFoldsOutput(t *testing.T) {
	runner := &fakeRunner{out: strings.Join([]string{
		tsvHeader,
		word(1, 1, 1, 10, 10, 60, 14, 90, "FIRST"),
		word(1, 1, 2, 10, 30, 60, 14, 70, "SECOND"),
	}, "\n")}

	eng := NewEngine(Config{PSM: 6, OEM: 1, TessdataDir: "/usr/share/tessdata"}, runner, quietLogger())
	res, err := eng.ExtractPage(context.Background(), "/tmp/page-1.png")
	require.NoError(t, err)

	assert.Equal(t, "tesseract", runner.name)
	assert.Equal(t, []string{
		"/tmp/page-1.png", "stdout", "-l", "eng",
		"--psm", "6", "--oem", "1",
		"--tessdata-dir", "/usr/share/tessdata", "tsv",
	}, runner.args)

	assert.Equal(t, "FIRST\nSECOND", res.Text)
	assert.Equal(t, "eng", res.Language)
	require.Len(t, res.Blocks, 2)
	assert.InDelta(t, 0.80, res.Confidence, 1e-4)
}

func TestExtractPageWrapsRunnerError(t *testing.T) {
	boom := errors.New("exit status 1")
	runner := &fakeRunner{err: boom, errb: "Error opening data file"}

	eng := NewEngine(Config{}, runner, quietLogger())
	_, err := eng.ExtractPage(context.Background(), "/tmp/page-1.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "tesseract:")
	assert.Contains(t, err.Error(), "Error opening data file")
}
