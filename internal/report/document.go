// Package report builds printable documents from a category's asset list
// and renders them through an injected DocumentRenderer.
package report

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/wyhuang/stocktake/internal/imaging"
	"github.com/wyhuang/stocktake/internal/logging"
	"github.com/wyhuang/stocktake/internal/model"
	"github.com/wyhuang/stocktake/internal/validate"
)

// MaxPhotosPerRow is how many photos a report row shows, laid out in a
// two-column grid.
const MaxPhotosPerRow = 4

// Photo is a verified, ready-to-render image payload. Construction
// decodes the image header, so a renderer never receives a payload that
// cannot be drawn.
type Photo struct {
	JPEG   []byte
	Width  int
	Height int
}

// Row is one asset in the report.
type Row struct {
	Index        int
	Name         string
	AssetID      string
	SerialNumber string
	Location     string
	Note         string
	Photos       []Photo
}

// Document is the full printable representation of one category.
type Document struct {
	CategoryName string
	ExportDate   time.Time
	Rows         []Row
	Total        int
}

// Build assembles a Document from the category and its full, unfiltered
// asset list. Every photo is decoded up front; an undecodable photo is
// dropped from the report rather than failing the whole export.
func Build(category *model.Category, assets []*model.Asset) *Document {
	doc := &Document{
		CategoryName: category.Name,
		ExportDate:   time.Now(),
		Total:        len(assets),
	}

	for i, a := range assets {
		row := Row{
			Index:        i + 1,
			Name:         a.Name,
			AssetID:      a.AssetID,
			SerialNumber: a.SerialNumber,
			Location:     a.Location,
			Note:         a.Note,
		}

		for j, payload := range a.Photos {
			if j >= MaxPhotosPerRow {
				break
			}
			w, h, err := imaging.Dimensions(payload)
			if err != nil {
				logging.Get().Warn("skipping undecodable photo",
					slog.String("asset", a.ID),
					slog.Int("photo", j),
					logging.PhotoAttr("payload", payload))
				continue
			}
			row.Photos = append(row.Photos, Photo{JPEG: payload, Width: w, Height: h})
		}

		doc.Rows = append(doc.Rows, row)
	}

	return doc
}

// Filename derives the export filename from the category name and date.
func Filename(categoryName string, date time.Time, ext string) string {
	name := validate.SafeFilename(categoryName)
	if name == "" {
		name = "asset_report"
	}
	return fmt.Sprintf("%s_%s.%s", name, date.Format("2006-01-02"), ext)
}
