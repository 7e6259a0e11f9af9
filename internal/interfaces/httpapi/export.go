package httpapi

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"
)

const exportTimestampLayout = "20060102150405"

func exportFileName(kind string, at time.Time, ext string) string {
	return fmt.Sprintf("%s_%s.%s", kind, at.UTC().Format(exportTimestampLayout), ext)
}

func (h *Handler) writeJSONFile(w http.ResponseWriter, kind string, items any) error {
	payload, err := sonic.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s export: %w", kind, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFileName(kind, h.clock.Now(), "json")))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
	return nil
}

// writeCSVFile renders header and rows into a pooled buffer before anything is
// sent, so an encoding failure can still produce an error response.
func (h *Handler) writeCSVFile(w http.ResponseWriter, kind string, header []string, rows [][]string) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	cw := csv.NewWriter(buf)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write %s csv header: %w", kind, err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s csv rows: %w", kind, err)
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFileName(kind, h.clock.Now(), "csv")))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.B)
	return nil
}

func formatInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
