package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/analytics"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/config"
	"github.com/MorsyAdham/Assembly-Production-Monitoring-System/internal/entity"
	"github.com/jung-kurt/gofpdf"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ExportService renders snapshot data to xlsx and pdf. Generated files
// are also archived to object storage when a MinIO endpoint is
// configured.
type ExportService struct {
	snapshot    *SnapshotService
	minioClient *minio.Client
	bucket      string
	logger      *zap.Logger
}

func NewExportService(snapshot *SnapshotService, cfg config.MinIOConfig, logger *zap.Logger) *ExportService {
	s := &ExportService{snapshot: snapshot, bucket: cfg.Bucket, logger: logger}
	if cfg.Endpoint == "" {
		return s
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		logger.Warn("minio client init failed, export archiving disabled", zap.Error(err))
		return s
	}
	s.minioClient = client
	return s
}

var requestExportHeaders = []string{
	"Vehicle Type", "Vehicle Number", "Station", "Request Type",
	"Part Number", "Qty", "Fastener", "Status", "Requested By",
	"Request Date", "Delivery Date",
}

// Workbook builds a three sheet xlsx: Requests, Vehicles and
// Production Status
func (s *ExportService) Workbook(ctx context.Context, actor Actor, filter analytics.RequestFilter) (*excelize.File, string, error) {
	snap := s.snapshot.Load(ctx, actor)
	requests := filter.Apply(snap.Requests)

	f := excelize.NewFile()

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	sheet := "Requests"
	f.SetSheetName("Sheet1", sheet)
	for i, h := range requestExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}
	for rowIdx, r := range requests {
		row := rowIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.VehicleType)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.VehicleNumber)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.StationCode)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.RequestType)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.PartNumber)
		if r.Qty != nil {
			f.SetCellValue(sheet, fmt.Sprintf("F%d", row), *r.Qty)
		}
		fastener := "no"
		if r.FastenerSet() {
			fastener = "yes"
		}
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), fastener)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), r.Status)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), r.RequestedBy)
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), r.RequestDate.Format("2006-01-02 15:04"))
		if r.DeliveryDate != nil {
			f.SetCellValue(sheet, fmt.Sprintf("K%d", row), r.DeliveryDate.Format("2006-01-02 15:04"))
		}
	}
	colWidths := []float64{12, 16, 10, 12, 20, 6, 10, 10, 14, 18, 18}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	s.writeVehicleSheet(f, boldStyle, snap)
	s.writeProductionSheet(f, boldStyle, snap)

	filename := fmt.Sprintf("production_export_%s.xlsx", time.Now().Format("20060102_150405"))

	if buf, err := f.WriteToBuffer(); err == nil {
		s.archive(filename, buf.Bytes(), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	}

	return f, filename, nil
}

func (s *ExportService) writeVehicleSheet(f *excelize.File, headerStyle int, snap *Snapshot) {
	sheet := "Vehicles"
	f.NewSheet(sheet)
	headers := []string{"Vehicle Type", "Vehicle Number", "Stations", "Completed", "Progress %"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}
	for rowIdx, v := range analytics.SortVehicles(snap.Vehicles) {
		row := rowIdx + 2
		p := analytics.VehicleProgress(v.VehicleNumber, snap.Production)
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), v.VehicleType)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), v.VehicleNumber)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.Total)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.Completed)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), p.Percent)
	}
}

func (s *ExportService) writeProductionSheet(f *excelize.File, headerStyle int, snap *Snapshot) {
	sheet := "Production Status"
	f.NewSheet(sheet)
	headers := []string{"Vehicle Number", "Station", "Status", "Updated"}
	for i, h := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}
	for rowIdx, row := range snap.Production {
		n := rowIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", n), row.VehicleNumber)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", n), row.StationCode)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", n), row.Status)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", n), row.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

// RequestsPDF renders the current request list as an A4 landscape table
func (s *ExportService) RequestsPDF(ctx context.Context, actor Actor, filter analytics.RequestFilter) ([]byte, string, error) {
	snap := s.snapshot.Load(ctx, actor)
	requests := filter.Apply(snap.Requests)

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Requests Report", false)
	addPageNumbers(pdf)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Requests Report", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s by %s", time.Now().Format("2006-01-02 15:04"), actor.Username), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Filters: "+filter.Describe(), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	widths := []float64{20, 26, 18, 22, 48, 12, 18, 20, 28, 32, 32}
	pdf.SetFont("Arial", "B", 8)
	for i, h := range requestExportHeaders {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, r := range requests {
		qty := ""
		if r.Qty != nil {
			qty = fmt.Sprintf("%d", *r.Qty)
		}
		fastener := "no"
		if r.FastenerSet() {
			fastener = "yes"
		}
		delivery := ""
		if r.DeliveryDate != nil {
			delivery = r.DeliveryDate.Format("2006-01-02 15:04")
		}
		cells := []string{
			r.VehicleType, r.VehicleNumber, r.StationCode, r.RequestType,
			r.PartNumber, qty, fastener, r.Status, r.RequestedBy,
			r.RequestDate.Format("2006-01-02 15:04"), delivery,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, "", fmt.Errorf("render pdf: %w", err)
	}

	filename := fmt.Sprintf("requests_report_%s.pdf", time.Now().Format("20060102_150405"))
	s.archive(filename, out.Bytes(), "application/pdf")
	return out.Bytes(), filename, nil
}

// AnalyticsPDF renders the summary counts, per type station breakdown
// and request type counts as a one page report
func (s *ExportService) AnalyticsPDF(ctx context.Context, actor Actor) ([]byte, string, error) {
	snap := s.snapshot.Load(ctx, actor)
	summary := analytics.SummaryCounts(snap.Vehicles, snap.Production, snap.Requests)
	groups := analytics.GroupByType(snap.Vehicles, snap.Production, entity.VehicleTypes)
	typeCounts := analytics.RequestTypeBreakdown(snap.Requests)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Production Analytics", false)
	addPageNumbers(pdf)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Production Analytics", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated %s by %s", time.Now().Format("2006-01-02 15:04"), actor.Username), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total vehicles: %d", summary.TotalVehicles), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Completed stations: %d", summary.CompletedStations), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Pending stations: %d", summary.PendingStations), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Open requests: %d", summary.OpenRequests), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, "Stations by Vehicle Type", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 9)
	for _, h := range []string{"Type", "Completed", "In Progress", "Pending"} {
		pdf.CellFormat(35, 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, g := range groups {
		pdf.CellFormat(35, 6, g.VehicleType, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%d", g.Completed), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%d", g.InProgress), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("%d", g.Pending), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, "Requests by Type", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Station requests: %d", typeCounts.Station), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Part requests: %d", typeCounts.Part), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Fastener requests: %d", typeCounts.Fastener), "", 1, "L", false, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, "", fmt.Errorf("render pdf: %w", err)
	}

	filename := fmt.Sprintf("analytics_report_%s.pdf", time.Now().Format("20060102_150405"))
	s.archive(filename, out.Bytes(), "application/pdf")
	return out.Bytes(), filename, nil
}

func addPageNumbers(pdf *gofpdf.Fpdf) {
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Arial", "", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
}

// archive uploads a generated export in the background. Failures only
// log, exports are still returned to the caller.
func (s *ExportService) archive(objectName string, data []byte, contentType string) {
	if s.minioClient == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		object := fmt.Sprintf("exports/%s/%s", time.Now().Format("2006/01/02"), objectName)
		_, err := s.minioClient.PutObject(ctx, s.bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: contentType,
		})
		if err != nil {
			s.logger.Warn("export archive failed", zap.String("object", object), zap.Error(err))
		}
	}()
}
