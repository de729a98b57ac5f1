package renderer

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

var (
	pdfRendererInstance contracts.DocumentRenderer
	oncePdfRenderer     sync.Once
)

type pdfRenderer struct {
	Storage contracts.Storage
	Log     *zap.Logger
}

func NewPDFRenderer(storage contracts.Storage, logger *zap.Logger) contracts.DocumentRenderer {
	oncePdfRenderer.Do(func() {
		pdfRendererInstance = &pdfRenderer{
			Storage: storage,
			Log:     logger,
		}
	})
	return pdfRendererInstance
}

func (r *pdfRenderer) RenderPrescription(ctx context.Context, input *contracts.RenderPrescriptionInput) (string, error) {
	requestID := utils.GetRequestID(ctx)
	prescription := input.Prescription

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Medical Prescription", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 7, fmt.Sprintf("Prescription ID: %s", prescription.ID), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "Consultation", "1", 1, "C", false, 0, "")
	addDetail(pdf, "Doctor", input.DoctorName, true)
	if input.Profile != nil {
		addDetail(pdf, "Specialization", input.Profile.Specialization, false)
		addDetail(pdf, "Qualification", input.Profile.Qualification, false)
		addDetail(pdf, "Clinic", input.Profile.ClinicAddress, false)
	}
	addDetail(pdf, "Patient", input.PatientName, true)
	addDetail(pdf, "Date", prescription.CreatedAt.Format("2006-01-02"), false)
	addDetail(pdf, "Diagnosis", prescription.Diagnosis, true)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 10, "Medicines", "1", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(60, 8, "Name", "1", 0, "", true, 0, "")
	pdf.CellFormat(40, 8, "Dosage", "1", 0, "", true, 0, "")
	pdf.CellFormat(45, 8, "Duration", "1", 0, "", true, 0, "")
	pdf.CellFormat(45, 8, "Timing", "1", 1, "", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, medicine := range prescription.Medicines {
		pdf.CellFormat(60, 8, medicine.Name, "1", 0, "", false, 0, "")
		pdf.CellFormat(40, 8, medicine.Dosage, "1", 0, "", false, 0, "")
		pdf.CellFormat(45, 8, medicine.Duration, "1", 0, "", false, 0, "")
		pdf.CellFormat(45, 8, medicine.Timing, "1", 1, "", false, 0, "")
	}

	if prescription.Instructions != "" {
		pdf.Ln(3)
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 8, "Instructions", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, prescription.Instructions, "", "L", false)
	}

	if prescription.FollowUpDate != nil {
		pdf.Ln(2)
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 7, fmt.Sprintf("Follow up on: %s", prescription.FollowUpDate.Format("2006-01-02")), "", 1, "L", false, 0, "")
	}

	pdf.Ln(3)
	pdf.SetFont("Arial", "B", 11)
	addDetail(pdf, "Consultation Fee", fmt.Sprintf("%.2f", prescription.ConsultationFee), true)
	addDetail(pdf, "Payment Status", prescription.PaymentStatus, false)

	if input.Profile != nil {
		embedImage(pdf, input.Profile.PaymentQR, "payment_qr", 40)
		embedImage(pdf, input.Profile.Signature, "signature", 30)
	}

	pdf.SetY(pdf.GetY() + 10)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 10, "This is a computer generated prescription", "", 1, "R", false, 0, "")

	var pdfBuffer bytes.Buffer
	if err := pdf.Output(&pdfBuffer); err != nil {
		return "", exceptions.ErrRenderDocument(err)
	}

	objectName := fmt.Sprintf(constvars.PrescriptionDocumentObjectFormat, prescription.ID)
	location, err := r.Storage.UploadObject(ctx, objectName, pdfBuffer.Bytes(), constvars.MIMEApplicationPDF)
	if err != nil {
		return "", err
	}

	r.Log.Info("pdfRenderer.RenderPrescription stored document",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, prescription.ID),
		zap.String(constvars.LoggingDocumentKey, location),
	)
	return location, nil
}

func addDetail(pdf *gofpdf.Fpdf, label, value string, isHeader bool) {
	if isHeader {
		pdf.SetFont("Arial", "B", 11)
		pdf.SetFillColor(255, 255, 255)
	} else {
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
	}
	pdf.CellFormat(45, 8, label, "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 8, value, "1", 1, "", false, 0, "")
}

// embedImage decodes a base64 data URI stored on the profile and draws it at
// the current position. Unsupported or empty payloads are skipped quietly.
func embedImage(pdf *gofpdf.Fpdf, encoded, name string, width float64) {
	if encoded == "" {
		return
	}

	imageType := "PNG"
	if idx := strings.Index(encoded, ";base64,"); idx != -1 {
		header := encoded[:idx]
		if strings.Contains(header, "jpeg") || strings.Contains(header, "jpg") {
			imageType = "JPG"
		}
		encoded = encoded[idx+len(";base64,"):]
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return
	}

	options := gofpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader(name, options, bytes.NewReader(raw))
	pdf.Ln(4)
	pdf.ImageOptions(name, pdf.GetX(), pdf.GetY(), width, 0, true, options, 0, "")
}
