// Package catalog loads catalog records and media assets from CSV
// exports. Columns are resolved by header name so exports can carry
// extra columns or reorder them without breaking the loaders.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"artlink/internal/match"
)

// Record column headers. Optional columns may be absent.
const (
	colRecordID   = "id"
	colTitle      = "title"
	colCreator    = "creator_name"
	colYear       = "year"
	colCaptionEN  = "caption_en"
	colCaptionDE  = "caption_de"
	colLinkedItem = "asset_id"
)

// Asset column headers.
const (
	colAssetID  = "id"
	colFilename = "filename"
	colSize     = "size_bytes"
	colUsed     = "used"
)

type columnIndex map[string]int

func readHeader(reader *csv.Reader) (columnIndex, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	index := make(columnIndex, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return index, nil
}

func (c columnIndex) require(names ...string) error {
	for _, name := range names {
		if _, ok := c[name]; !ok {
			return fmt.Errorf("missing required column %q", name)
		}
	}
	return nil
}

func (c columnIndex) value(row []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// LoadRecords reads catalog records from a CSV file.
func LoadRecords(path string) ([]match.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open records file: %w", err)
	}
	defer file.Close()

	records, err := ReadRecords(file)
	if err != nil {
		return nil, fmt.Errorf("read records from %s: %w", path, err)
	}
	return records, nil
}

// ReadRecords parses catalog records from CSV content.
func ReadRecords(r io.Reader) ([]match.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	index, err := readHeader(reader)
	if err != nil {
		return nil, err
	}
	if err := index.require(colRecordID, colCreator); err != nil {
		return nil, err
	}

	var records []match.Record
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++

		record := match.Record{
			ID:          index.value(row, colRecordID),
			Title:       index.value(row, colTitle),
			CreatorName: index.value(row, colCreator),
			Year:        index.value(row, colYear),
			CaptionEN:   index.value(row, colCaptionEN),
			CaptionDE:   index.value(row, colCaptionDE),
			AssetID:     index.value(row, colLinkedItem),
		}
		if record.ID == "" {
			return nil, fmt.Errorf("line %d: record id is empty", line)
		}
		records = append(records, record)
	}
	return records, nil
}

// LoadAssets reads media assets from a CSV file.
func LoadAssets(path string) ([]match.Asset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open assets file: %w", err)
	}
	defer file.Close()

	assets, err := ReadAssets(file)
	if err != nil {
		return nil, fmt.Errorf("read assets from %s: %w", path, err)
	}
	return assets, nil
}

// ReadAssets parses media assets from CSV content.
func ReadAssets(r io.Reader) ([]match.Asset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	index, err := readHeader(reader)
	if err != nil {
		return nil, err
	}
	if err := index.require(colAssetID, colFilename); err != nil {
		return nil, err
	}

	var assets []match.Asset
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++

		asset := match.Asset{
			ID:       index.value(row, colAssetID),
			Filename: index.value(row, colFilename),
		}
		if asset.ID == "" {
			return nil, fmt.Errorf("line %d: asset id is empty", line)
		}
		if raw := index.value(row, colSize); raw != "" {
			size, parseErr := strconv.ParseInt(raw, 10, 64)
			if parseErr != nil {
				return nil, fmt.Errorf("line %d: size_bytes %q: %w", line, raw, parseErr)
			}
			asset.SizeBytes = size
		}
		if raw := index.value(row, colUsed); raw != "" {
			used, parseErr := strconv.ParseBool(raw)
			if parseErr != nil {
				return nil, fmt.Errorf("line %d: used %q: %w", line, raw, parseErr)
			}
			asset.Used = used
		}
		assets = append(assets, asset)
	}
	return assets, nil
}
