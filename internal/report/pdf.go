package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Page geometry in millimeters (A4 portrait).
const (
	pageMargin   = 10.0
	contentWidth = 190.0

	photoCellW  = 38.0
	photoCellH  = 28.0
	photoGutter = 2.0
	// Two-column photo grid on the left of each row.
	photoBlockW = photoCellW*2 + photoGutter

	rowPadding = 3.0
	minRowH    = 24.0
	breakAtY   = 270.0
)

// PDFRenderer renders a Document as an A4 portrait PDF with JPEG photos.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDF renderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Ext returns "pdf".
func (r *PDFRenderer) Ext() string {
	return "pdf"
}

// Render produces the PDF bytes.
func (r *PDFRenderer) Render(doc *Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.AddPage()

	r.renderHeader(pdf, doc)

	for i := range doc.Rows {
		r.renderRow(pdf, i, &doc.Rows[i])
	}

	r.renderFooter(pdf, doc)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFRenderer) renderHeader(pdf *fpdf.Fpdf, doc *Document) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentWidth, 10, doc.CategoryName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(contentWidth, 5, "Exported "+doc.ExportDate.Format("2006-01-02"), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)
}

func (r *PDFRenderer) renderFooter(pdf *fpdf.Fpdf, doc *Document) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(contentWidth, 5, fmt.Sprintf("Total: %d assets", doc.Total), "T", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func (r *PDFRenderer) renderRow(pdf *fpdf.Fpdf, idx int, row *Row) {
	rowH := r.rowHeight(row)
	if pdf.GetY()+rowH > breakAtY {
		pdf.AddPage()
	}

	x0 := pageMargin
	y0 := pdf.GetY()

	// Row border
	pdf.Rect(x0, y0, contentWidth, rowH, "D")

	// Index
	pdf.SetXY(x0+1, y0+rowPadding)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(8, 5, fmt.Sprintf("%d", row.Index), "", 0, "L", false, 0, "")

	// Photo grid, two columns
	gridX := x0 + 10
	for i, photo := range row.Photos {
		col := i % 2
		line := i / 2
		px := gridX + float64(col)*(photoCellW+photoGutter)
		py := y0 + rowPadding + float64(line)*(photoCellH+photoGutter)
		r.placePhoto(pdf, idx, i, photo, px, py)
	}

	// Details
	textX := gridX + photoBlockW + 4
	textW := contentWidth - (textX - x0) - rowPadding
	pdf.SetXY(textX, y0+rowPadding)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(textW, 5, row.Name, "", 2, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	if row.AssetID != "" {
		pdf.CellFormat(textW, 4.5, "Code: "+row.AssetID, "", 2, "L", false, 0, "")
	}
	if row.SerialNumber != "" {
		pdf.CellFormat(textW, 4.5, "SN: "+row.SerialNumber, "", 2, "L", false, 0, "")
	}
	if row.Location != "" {
		pdf.CellFormat(textW, 4.5, "Location: "+row.Location, "", 2, "L", false, 0, "")
	}
	if row.Note != "" {
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(textW, 4.5, row.Note, "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.SetXY(x0, y0+rowH+2)
}

// rowHeight sizes a row to fit its photo grid and a rough estimate of the
// text block.
func (r *PDFRenderer) rowHeight(row *Row) float64 {
	lines := (len(row.Photos) + 1) / 2
	photoH := float64(lines)*(photoCellH+photoGutter) + rowPadding
	textH := minRowH + float64(len(row.Note))/40*4.5
	if photoH > textH {
		return photoH + rowPadding
	}
	return textH + rowPadding
}

// placePhoto registers a JPEG payload and draws it fitted into its grid
// cell, preserving aspect ratio.
func (r *PDFRenderer) placePhoto(pdf *fpdf.Fpdf, rowIdx, photoIdx int, photo Photo, x, y float64) {
	name := fmt.Sprintf("row%dphoto%d", rowIdx, photoIdx)
	opts := fpdf.ImageOptions{ImageType: "JPG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(photo.JPEG))

	w, h := fitBox(photo.Width, photo.Height, photoCellW, photoCellH)
	// Center inside the cell.
	x += (photoCellW - w) / 2
	y += (photoCellH - h) / 2
	pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

// fitBox scales pixel dimensions into a box, preserving aspect ratio.
func fitBox(pw, ph int, maxW, maxH float64) (float64, float64) {
	if pw <= 0 || ph <= 0 {
		return maxW, maxH
	}
	scale := maxW / float64(pw)
	if s := maxH / float64(ph); s < scale {
		scale = s
	}
	return float64(pw) * scale, float64(ph) * scale
}
