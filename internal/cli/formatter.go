package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/idelchi/rtree/internal/rtree"
)

const (
	// minSizeWidth is the minimum width of the size column.
	minSizeWidth = 4
	// typeWidth is the width of the type column.
	typeWidth = 4
	// columnGap separates the table columns.
	columnGap = "  "
	// pathRuleWidth is the length of the separator drawn under the path header.
	pathRuleWidth = 40
)

// jsonItem is the JSON form of a ScanItem.
type jsonItem struct {
	Path      string `json:"path"`
	Size      uint64 `json:"size"`
	SizeHuman string `json:"size_human"`
	IsDir     bool   `json:"is_dir"`
}

// jsonReport is the JSON form of a Result.
type jsonReport struct {
	Target     string     `json:"target"`
	Sort       string     `json:"sort"`
	TotalBytes uint64     `json:"total_bytes"`
	TotalHuman string     `json:"total_human"`
	Files      int64      `json:"files"`
	Warnings   int64      `json:"warnings"`
	Elapsed    string     `json:"elapsed"`
	Items      []jsonItem `json:"items"`
}

// PrintJSON outputs the result in JSON format.
func PrintJSON(result *rtree.Result, writer io.Writer) error {
	report := jsonReport{
		Target:     result.Target,
		Sort:       result.Sort.String(),
		TotalBytes: result.Total,
		TotalHuman: rtree.FormatSize(result.Total),
		Files:      result.Files,
		Warnings:   result.Warnings,
		Elapsed:    result.Elapsed.String(),
		Items:      make([]jsonItem, 0, len(result.Items)),
	}

	for _, item := range result.Items {
		report.Items = append(report.Items, jsonItem{
			Path:      item.Path,
			Size:      item.Size,
			SizeHuman: rtree.FormatSize(item.Size),
			IsDir:     item.IsDir,
		})
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the result as a fixed-width table.
// The size column is as wide as the widest formatted size, but at least 4.
func PrintTable(result *rtree.Result, writer io.Writer) error {
	if len(result.Items) == 0 {
		_, err := fmt.Fprintln(writer, "No items found.")

		return err
	}

	sizes := make([]string, len(result.Items))
	sizeWidth := minSizeWidth

	for i, item := range result.Items {
		sizes[i] = rtree.FormatSize(item.Size)
		sizeWidth = max(sizeWidth, len(sizes[i]))
	}

	var b strings.Builder

	row := func(size, kind, path string) {
		fmt.Fprintf(&b, "%-*s%s%-*s%s%s\n", sizeWidth, size, columnGap, typeWidth, kind, columnGap, path)
	}

	row("Size", "Type", "Path")
	b.WriteString(strings.Repeat("-", sizeWidth+len(columnGap)+typeWidth+len(columnGap)+pathRuleWidth))
	b.WriteString("\n")

	for i, item := range result.Items {
		kind := "FILE"
		if item.IsDir {
			kind = "DIR"
		}

		row(sizes[i], kind, item.Path)
	}

	_, err := io.WriteString(writer, b.String())

	return err
}
